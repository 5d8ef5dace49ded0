package commands

import (
	"context"
	"fmt"
	"strings"

	"invoicing/internal/core/domain/model/invoice"
	"invoicing/internal/core/ports"
)

// SendInvoiceCommandHandler orchestrates the send transition.
//
// Steps:
//  1. Load the aggregate; a missing id propagates as not-found.
//  2. MarkAsSending; a domain rejection propagates unmodified to the caller.
//  3. Dispatch the notification to the customer, then persist the sending
//     aggregate. If persistence fails the notification has already gone out;
//     there is no compensating logic here.
type SendInvoiceCommandHandler struct {
	uowFactory         InvoiceUoWFactory
	notificationFacade ports.NotificationFacade
}

// NewSendInvoiceCommandHandler creates a handler for sending invoices.
func NewSendInvoiceCommandHandler(
	uowFactory InvoiceUoWFactory,
	notificationFacade ports.NotificationFacade,
) SendInvoiceCommandHandler {
	return SendInvoiceCommandHandler{
		uowFactory:         uowFactory,
		notificationFacade: notificationFacade,
	}
}

// Handle processes the send command and returns the transitioned aggregate.
func (h SendInvoiceCommandHandler) Handle(ctx context.Context, cmd SendInvoiceCommand) (*invoice.Invoice, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.InvoiceRepository()

	inv, err := repo.Get(ctx, cmd.InvoiceID())
	if err != nil {
		return nil, err
	}

	sending, err := inv.MarkAsSending()
	if err != nil {
		return nil, err
	}

	subject := fmt.Sprintf("Invoice #%s", sending.ID())
	if err = h.notificationFacade.Notify(
		ctx,
		sending.ID(),
		sending.Customer().Email().String(),
		subject,
		buildInvoiceMessage(sending),
	); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, sending); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return sending, nil
}

// buildInvoiceMessage renders the notification body: every line with name,
// quantity, unit price and line total, followed by the grand total.
func buildInvoiceMessage(inv *invoice.Invoice) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Dear %s,\n\n", inv.Customer().Name())
	b.WriteString("Please find your invoice details below:\n\n")
	fmt.Fprintf(&b, "Invoice ID: %s\n", inv.ID())
	fmt.Fprintf(&b, "Status: %s\n\n", inv.Status())
	b.WriteString("Product Lines:\n")

	for _, line := range inv.Lines() {
		fmt.Fprintf(&b, "- %s: %d x %d = %d\n", line.Name(), line.Quantity(), line.UnitPrice(), line.TotalPrice())
	}

	fmt.Fprintf(&b, "\nTotal: %d\n", inv.TotalPrice())

	return b.String()
}
