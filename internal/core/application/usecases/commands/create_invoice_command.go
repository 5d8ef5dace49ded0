package commands

import (
	"errors"

	"invoicing/internal/core/domain/model/invoice"
	"invoicing/internal/core/domain/model/kernel"
	"invoicing/internal/pkg/guard"
)

var (
	ErrCreateInvoiceCommandIsNotConstructed = errors.New(
		"CreateInvoiceCommand must be created via NewCreateInvoiceCommand constructor",
	)
)

// CreateInvoiceCommand represents a request to create a new invoice in draft
// status. The customer and every line were already validated at value-object
// construction, so the command carries them as-is.
//
// Example:
//
//	invoiceID := kernel.NewUUID()
//	cmd, err := NewCreateInvoiceCommand(invoiceID, customer, lines)
//	if err != nil {
//	    return fmt.Errorf("invalid invoice data: %w", err)
//	}
//
//	handler := NewCreateInvoiceCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateInvoiceCommand struct { //nolint:recvcheck //using for validation
	invoiceID kernel.UUID
	customer  invoice.Customer
	lines     []invoice.InvoiceLine

	guard guard.ConstructorGuard
}

// NewCreateInvoiceCommand creates a command to register a new invoice.
// Validates the id, the customer and every carried line; an empty line list
// is legal.
func NewCreateInvoiceCommand(
	invoiceID kernel.UUID,
	customer invoice.Customer,
	lines []invoice.InvoiceLine,
) (CreateInvoiceCommand, error) {
	cmd := CreateInvoiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setInvoiceID(invoiceID),
		cmd.setCustomer(customer),
		cmd.setLines(lines),
	); err != nil {
		return CreateInvoiceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrCreateInvoiceCommandIsNotConstructed)
}

// InvoiceID returns the unique identifier for the invoice.
func (c CreateInvoiceCommand) InvoiceID() kernel.UUID {
	return c.invoiceID
}

// Customer returns the invoice recipient.
func (c CreateInvoiceCommand) Customer() invoice.Customer {
	return c.customer
}

// Lines returns the invoice lines carried by the command.
func (c CreateInvoiceCommand) Lines() []invoice.InvoiceLine {
	return c.lines
}

func (c *CreateInvoiceCommand) setInvoiceID(invoiceID kernel.UUID) error {
	if err := invoiceID.Validate(); err != nil {
		return err
	}
	c.invoiceID = invoiceID
	return nil
}

func (c *CreateInvoiceCommand) setCustomer(customer invoice.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	c.customer = customer
	return nil
}

func (c *CreateInvoiceCommand) setLines(lines []invoice.InvoiceLine) error {
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	c.lines = lines
	return nil
}
