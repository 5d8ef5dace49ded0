package invoice

import (
	"fmt"
	"net/mail"
	"strings"

	"invoicing/internal/pkg/errs"
)

// Email is a value object wrapping a validated email address.
// The zero value is invalid; construct via NewEmail. Equality is value based.
type Email struct {
	value string
}

// NewEmail validates the given string against the standard address grammar
// and returns an Email value object. The address must be a plain address
// (no display name, no surrounding whitespace). Invalid input fails
// construction immediately; no invalid Email can ever exist in memory.
func NewEmail(value string) (Email, error) {
	if value == "" {
		return Email{}, errs.NewValueIsRequiredError("email")
	}

	if strings.ContainsAny(value, " \t") {
		return Email{}, newInvalidEmailError(value)
	}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return Email{}, newInvalidEmailError(value)
	}

	return Email{value: value}, nil
}

func newInvalidEmailError(value string) error {
	return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not a valid email address", value))
}

// String returns the address as it was given.
func (e Email) String() string {
	return e.value
}

// IsEqual compares two emails by value.
func (e Email) IsEqual(other Email) bool {
	return e.value == other.value
}

// Validate checks the Email was built via NewEmail.
func (e Email) Validate() error {
	if e.value == "" {
		return errs.NewValueIsRequiredError("email must be created via NewEmail")
	}
	return nil
}
