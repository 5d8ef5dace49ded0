package commands

import (
	"context"

	"invoicing/internal/core/domain/model/invoice"
)

// CreateInvoiceCommandHandler handles invoice creation.
// Builds the aggregate in draft status and persists it transactionally.
// There is no failure path beyond what aggregate construction raises.
type CreateInvoiceCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

// NewCreateInvoiceCommandHandler creates a handler for invoice creation.
// Requires an InvoiceUoWFactory for transactional persistence.
func NewCreateInvoiceCommandHandler(uowFactory InvoiceUoWFactory) CreateInvoiceCommandHandler {
	return CreateInvoiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the invoice creation command and returns the created
// aggregate so the caller can render it.
func (h CreateInvoiceCommandHandler) Handle(ctx context.Context, cmd CreateInvoiceCommand) (*invoice.Invoice, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	inv, err := invoice.NewInvoice(cmd.InvoiceID(), cmd.Customer(), cmd.Lines())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.InvoiceRepository().Add(ctx, inv); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return inv, nil
}
