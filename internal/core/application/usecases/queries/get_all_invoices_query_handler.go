package queries

import (
	"context"

	"invoicing/internal/core/domain/model/invoice"
	"invoicing/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllInvoicesQueryHandler retrieves all invoice read models.
type GetAllInvoicesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllInvoicesQueryHandler creates a handler for invoice list queries.
func NewGetAllInvoicesQueryHandler(db *gorm.DB) GetAllInvoicesQueryHandler {
	return GetAllInvoicesQueryHandler{db: db}
}

// Handle executes the query and returns every invoice with its lines.
func (h GetAllInvoicesQueryHandler) Handle(
	ctx context.Context,
	query GetAllInvoicesQuery,
) ([]InvoiceResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	invoices := make([]InvoiceResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_name,
			customer_email,
			status
		FROM invoices
		ORDER BY customer_name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lineLoader := GetInvoiceQueryHandler{db: h.db}

	for rows.Next() {
		var (
			id       uuid.UUID
			response InvoiceResponse
			status   int
		)

		if err = rows.Scan(&id, &response.CustomerName, &response.CustomerEmail, &status); err != nil {
			return nil, err
		}

		invoiceID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = invoiceID
		response.Status = invoice.Status(status).String()

		invoices = append(invoices, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	// Line rows are fetched after the invoice cursor is drained; gorm
	// shares one connection and nested cursors would collide on it.
	for i := range invoices {
		lines, total, linesErr := lineLoader.loadLines(ctx, invoices[i].ID)
		if linesErr != nil {
			return nil, linesErr
		}
		invoices[i].Lines = lines
		invoices[i].TotalPrice = total
	}

	return invoices, nil
}
