package commands

import (
	"errors"

	"invoicing/internal/core/domain/model/kernel"
	"invoicing/internal/pkg/guard"
)

var (
	ErrMarkInvoiceDeliveredCommandIsNotConstructed = errors.New(
		"MarkInvoiceDeliveredCommand must be created via NewMarkInvoiceDeliveredCommand constructor",
	)
)

// MarkInvoiceDeliveredCommand represents an inbound delivery confirmation
// for a resource id. The id may reference an invoice in any state, or no
// invoice at all: the confirmation channel is shared and at-least-once.
type MarkInvoiceDeliveredCommand struct { //nolint:recvcheck //using for validation
	invoiceID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkInvoiceDeliveredCommand creates a delivery confirmation command.
func NewMarkInvoiceDeliveredCommand(invoiceID kernel.UUID) (MarkInvoiceDeliveredCommand, error) {
	cmd := MarkInvoiceDeliveredCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setInvoiceID(invoiceID); err != nil {
		return MarkInvoiceDeliveredCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkInvoiceDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkInvoiceDeliveredCommandIsNotConstructed)
}

// InvoiceID returns the confirmed resource id.
func (c MarkInvoiceDeliveredCommand) InvoiceID() kernel.UUID {
	return c.invoiceID
}

func (c *MarkInvoiceDeliveredCommand) setInvoiceID(invoiceID kernel.UUID) error {
	if err := invoiceID.Validate(); err != nil {
		return err
	}
	c.invoiceID = invoiceID
	return nil
}
