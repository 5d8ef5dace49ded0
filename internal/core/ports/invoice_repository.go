// Package ports defines the contracts the core depends on. Implementations
// live in the adapters layer; the core never imports them.
package ports

import (
	"context"

	"invoicing/internal/core/domain/model/invoice"
	"invoicing/internal/core/domain/model/kernel"
)

// InvoiceRepository defines the persistence contract for invoice aggregates.
// The repository owns the durable snapshot of an aggregate; its save path is
// the serialization point for concurrent commands on the same id.
type InvoiceRepository interface {
	// Add persists a new invoice aggregate to storage.
	// The invoice must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *invoice.Invoice) error

	// Update persists changes to an existing invoice aggregate.
	// The full current snapshot replaces the stored one; the line set is
	// replaced wholesale, never partially updated.
	Update(ctx context.Context, aggregate *invoice.Invoice) error

	// Get retrieves an invoice aggregate by its unique identifier.
	// A missing id yields an errs.ObjectNotFoundError, not a nil aggregate.
	Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error)

	// GetAll retrieves every stored invoice. Full scan, no pagination.
	GetAll(ctx context.Context) ([]*invoice.Invoice, error)
}
