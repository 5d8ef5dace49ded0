package queries

import (
	"context"
	"database/sql"
	"errors"

	"invoicing/internal/core/domain/model/invoice"
	"invoicing/internal/core/domain/model/kernel"
	"invoicing/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetInvoiceQueryHandler retrieves a single invoice read model.
// Uses direct SQL for the read side of the CQRS split.
type GetInvoiceQueryHandler struct {
	db *gorm.DB
}

// NewGetInvoiceQueryHandler creates a handler for single-invoice lookups.
func NewGetInvoiceQueryHandler(db *gorm.DB) GetInvoiceQueryHandler {
	return GetInvoiceQueryHandler{db: db}
}

// Handle executes the lookup. A missing id yields errs.ObjectNotFoundError.
func (h GetInvoiceQueryHandler) Handle(ctx context.Context, query GetInvoiceQuery) (InvoiceResponse, error) {
	if err := query.Validate(); err != nil {
		return InvoiceResponse{}, err
	}

	var (
		id            uuid.UUID
		customerName  string
		customerEmail string
		status        int
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_name,
			customer_email,
			status
		FROM invoices
		WHERE id = ?
	`, query.InvoiceID().Bytes()).Row()

	if err := row.Scan(&id, &customerName, &customerEmail, &status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, sql.ErrNoRows) {
			return InvoiceResponse{}, errs.NewObjectNotFoundError("invoice", query.InvoiceID().String())
		}
		return InvoiceResponse{}, err
	}

	invoiceID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return InvoiceResponse{}, err
	}

	lines, total, err := h.loadLines(ctx, invoiceID)
	if err != nil {
		return InvoiceResponse{}, err
	}

	return InvoiceResponse{
		ID:            invoiceID,
		Status:        invoice.Status(status).String(),
		CustomerName:  customerName,
		CustomerEmail: customerEmail,
		Lines:         lines,
		TotalPrice:    total,
	}, nil
}

// loadLines reads the line rows for one invoice in stored order and returns
// them together with the grand total.
func (h GetInvoiceQueryHandler) loadLines(
	ctx context.Context,
	invoiceID kernel.UUID,
) ([]InvoiceLineResponse, int, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			quantity,
			price
		FROM invoice_lines
		WHERE invoice_id = ?
		ORDER BY position
	`, invoiceID.Bytes()).Rows()
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	lines := make([]InvoiceLineResponse, 0)
	total := 0

	for rows.Next() {
		var (
			id   uuid.UUID
			line InvoiceLineResponse
		)

		if err = rows.Scan(&id, &line.Name, &line.Quantity, &line.UnitPrice); err != nil {
			return nil, 0, err
		}

		lineID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, 0, idErr
		}
		line.ID = lineID
		line.TotalPrice = line.Quantity * line.UnitPrice
		total += line.TotalPrice

		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return lines, total, nil
}
