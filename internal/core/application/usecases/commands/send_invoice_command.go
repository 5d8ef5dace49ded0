package commands

import (
	"errors"

	"invoicing/internal/core/domain/model/kernel"
	"invoicing/internal/pkg/guard"
)

var (
	ErrSendInvoiceCommandIsNotConstructed = errors.New(
		"SendInvoiceCommand must be created via NewSendInvoiceCommand constructor",
	)
)

// SendInvoiceCommand represents a caller-initiated request to send an
// invoice to its customer.
type SendInvoiceCommand struct { //nolint:recvcheck //using for validation
	invoiceID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSendInvoiceCommand creates a command to send the invoice with the given id.
func NewSendInvoiceCommand(invoiceID kernel.UUID) (SendInvoiceCommand, error) {
	cmd := SendInvoiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setInvoiceID(invoiceID); err != nil {
		return SendInvoiceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SendInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrSendInvoiceCommandIsNotConstructed)
}

// InvoiceID returns the id of the invoice to send.
func (c SendInvoiceCommand) InvoiceID() kernel.UUID {
	return c.invoiceID
}

func (c *SendInvoiceCommand) setInvoiceID(invoiceID kernel.UUID) error {
	if err := invoiceID.Validate(); err != nil {
		return err
	}
	c.invoiceID = invoiceID
	return nil
}
