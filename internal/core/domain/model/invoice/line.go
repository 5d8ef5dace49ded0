package invoice

import (
	"errors"
	"fmt"

	"invoicing/internal/core/domain/model/kernel"
	"invoicing/internal/pkg/errs"
)

// ErrInvoiceLineIsNotConstructed is returned when an InvoiceLine was not
// created through the NewInvoiceLine factory method.
var ErrInvoiceLineIsNotConstructed = errors.New("InvoiceLine must be created via NewInvoiceLine constructor")

// InvoiceLine is a value object describing a single billed position.
//
// Invariants, enforced at construction and never bypassed:
//   - quantity > 0
//   - unitPrice > 0 (integer minor-unit amount, not floating point)
//
// A line violating either invariant cannot exist in memory.
type InvoiceLine struct {
	id        kernel.UUID
	name      string
	quantity  int
	unitPrice int

	isConstructed bool
}

// NewInvoiceLine creates an InvoiceLine with validation.
// Fails fast with a validation error identifying the invalid field.
func NewInvoiceLine(id kernel.UUID, name string, quantity int, unitPrice int) (InvoiceLine, error) {
	line := InvoiceLine{
		isConstructed: true,
	}

	if err := errors.Join(
		line.setID(id),
		line.setName(name),
		line.setQuantity(quantity),
		line.setUnitPrice(unitPrice),
	); err != nil {
		return InvoiceLine{}, err
	}

	return line, nil
}

// ID returns the line's unique identifier.
func (l InvoiceLine) ID() kernel.UUID {
	return l.id
}

// Name returns the line's display name.
func (l InvoiceLine) Name() string {
	return l.name
}

// Quantity returns the billed quantity.
func (l InvoiceLine) Quantity() int {
	return l.quantity
}

// UnitPrice returns the price per unit in minor currency units.
func (l InvoiceLine) UnitPrice() int {
	return l.unitPrice
}

// TotalPrice returns quantity × unitPrice. Pure, no failure mode.
func (l InvoiceLine) TotalPrice() int {
	return l.quantity * l.unitPrice
}

// Validate ensures the line was created via NewInvoiceLine.
func (l InvoiceLine) Validate() error {
	if !l.isConstructed {
		return ErrInvoiceLineIsNotConstructed
	}
	return nil
}

func (l *InvoiceLine) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *InvoiceLine) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("line name")
	}
	l.name = name
	return nil
}

func (l *InvoiceLine) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}

func (l *InvoiceLine) setUnitPrice(unitPrice int) error {
	if unitPrice <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("unit price", fmt.Errorf("%d is not greater than 0", unitPrice))
	}
	l.unitPrice = unitPrice
	return nil
}
