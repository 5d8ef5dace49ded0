// Package invoicerepo provides data transfer objects and mapping functions
// for invoice persistence. It implements the repository pattern for the
// invoice aggregate, handling the conversion between domain entities and
// database representations.
package invoicerepo

import (
	"invoicing/internal/core/domain/model/invoice"
	"invoicing/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// InvoiceDTO represents the database structure for persisting invoice
// aggregates: one invoice row plus a child line table replaced wholesale on
// every update.
type InvoiceDTO struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey"`
	CustomerName  string           `gorm:"type:varchar(255)"`
	CustomerEmail string           `gorm:"type:varchar(255)"`
	Status        int              `gorm:"index"`
	Lines         []InvoiceLineDTO `gorm:"foreignKey:InvoiceID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for invoice entities.
func (InvoiceDTO) TableName() string {
	return "invoices"
}

// InvoiceLineDTO represents one billed position belonging to an invoice.
// Position preserves the aggregate's line ordering across rehydrations.
type InvoiceLineDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	InvoiceID uuid.UUID `gorm:"type:uuid;index"`
	Name      string    `gorm:"type:varchar(255)"`
	Price     int
	Quantity  int
	Position  int
}

// TableName specifies the database table name for invoice lines.
func (InvoiceLineDTO) TableName() string {
	return "invoice_lines"
}

// fromDomain converts an invoice aggregate to its database representation.
func fromDomain(inv *invoice.Invoice) InvoiceDTO {
	lines := inv.Lines()
	lineDTOs := make([]InvoiceLineDTO, 0, len(lines))
	for i, line := range lines {
		lineDTOs = append(lineDTOs, InvoiceLineDTO{
			ID:        line.ID().Bytes(),
			InvoiceID: inv.ID().Bytes(),
			Name:      line.Name(),
			Price:     line.UnitPrice(),
			Quantity:  line.Quantity(),
			Position:  i,
		})
	}

	return InvoiceDTO{
		ID:            inv.ID().Bytes(),
		CustomerName:  inv.Customer().Name(),
		CustomerEmail: inv.Customer().Email().String(),
		Status:        int(inv.Status()),
		Lines:         lineDTOs,
	}
}

// toDomain converts a database DTO to an invoice aggregate using
// RestoreInvoice, re-running every value-object validation on the way in.
func toDomain(dto InvoiceDTO) (*invoice.Invoice, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	email, err := invoice.NewEmail(dto.CustomerEmail)
	if err != nil {
		return nil, err
	}

	customer, err := invoice.NewCustomer(dto.CustomerName, email)
	if err != nil {
		return nil, err
	}

	lines := make([]invoice.InvoiceLine, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		lineID, lineErr := kernel.UUIDFromBytes(lineDTO.ID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		line, lineErr := invoice.NewInvoiceLine(lineID, lineDTO.Name, lineDTO.Quantity, lineDTO.Price)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return invoice.RestoreInvoice(id, customer, lines, invoice.Status(dto.Status))
}
