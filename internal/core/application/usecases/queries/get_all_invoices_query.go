package queries

import (
	"errors"

	"invoicing/internal/pkg/guard"
)

var (
	ErrGetAllInvoicesQueryIsNotConstructed = errors.New(
		"GetAllInvoicesQuery must be created via NewGetAllInvoicesQuery constructor",
	)
)

// GetAllInvoicesQuery retrieves every invoice view. Full scan, no
// pagination; this is a low-volume business workflow.
type GetAllInvoicesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllInvoicesQuery creates a query for the complete invoice list.
func NewGetAllInvoicesQuery() GetAllInvoicesQuery {
	return GetAllInvoicesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllInvoicesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllInvoicesQueryIsNotConstructed)
}
