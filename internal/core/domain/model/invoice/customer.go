package invoice

import (
	"errors"

	"invoicing/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer was not created
// through the NewCustomer factory method.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is a value object holding the invoice recipient: a non-empty
// display name and a validated email address.
type Customer struct {
	name  string
	email Email

	isConstructed bool
}

// NewCustomer creates a Customer value object.
// The name must be non-empty and the email must be a constructed Email.
func NewCustomer(name string, email Email) (Customer, error) {
	if name == "" {
		return Customer{}, errs.NewValueIsRequiredError("customer name")
	}
	if err := email.Validate(); err != nil {
		return Customer{}, err
	}

	return Customer{
		name:          name,
		email:         email,
		isConstructed: true,
	}, nil
}

// Name returns the customer display name.
func (c Customer) Name() string {
	return c.name
}

// Email returns the customer email address.
func (c Customer) Email() Email {
	return c.email
}

// IsEqual compares two customers by value.
func (c Customer) IsEqual(other Customer) bool {
	return c.name == other.name && c.email.IsEqual(other.email)
}

// Validate ensures the Customer was created via NewCustomer.
func (c Customer) Validate() error {
	if !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}
