// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"invoicing/internal/core/domain/model/kernel"
	"invoicing/internal/pkg/guard"
)

var (
	ErrGetInvoiceQueryIsNotConstructed = errors.New(
		"GetInvoiceQuery must be created via NewGetInvoiceQuery constructor",
	)
)

// GetInvoiceQuery retrieves a single invoice view by id.
type GetInvoiceQuery struct {
	invoiceID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetInvoiceQuery creates a query for the invoice with the given id.
func NewGetInvoiceQuery(invoiceID kernel.UUID) (GetInvoiceQuery, error) {
	if err := invoiceID.Validate(); err != nil {
		return GetInvoiceQuery{}, err
	}

	return GetInvoiceQuery{
		invoiceID: invoiceID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetInvoiceQuery) Validate() error {
	return q.guard.Validate(ErrGetInvoiceQueryIsNotConstructed)
}

// InvoiceID returns the id to look up.
func (q GetInvoiceQuery) InvoiceID() kernel.UUID {
	return q.invoiceID
}

// InvoiceResponse is the invoice read model served to the HTTP layer.
type InvoiceResponse struct {
	ID            kernel.UUID
	Status        string
	CustomerName  string
	CustomerEmail string
	Lines         []InvoiceLineResponse
	TotalPrice    int
}

// InvoiceLineResponse is one billed position within an InvoiceResponse.
type InvoiceLineResponse struct {
	ID         kernel.UUID
	Name       string
	Quantity   int
	UnitPrice  int
	TotalPrice int
}
