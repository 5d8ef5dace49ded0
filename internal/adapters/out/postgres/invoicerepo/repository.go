package invoicerepo

import (
	"context"
	"errors"

	"invoicing/internal/core/domain/model/invoice"
	"invoicing/internal/core/domain/model/kernel"
	"invoicing/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormInvoiceRepository implements ports.InvoiceRepository using GORM.
type GormInvoiceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormInvoiceRepository creates a new GORM invoice repository.
func NewGormInvoiceRepository(db *gorm.DB, tracker aggregateTracker) *GormInvoiceRepository {
	return &GormInvoiceRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new invoice and its lines to the database.
func (r *GormInvoiceRepository) Add(ctx context.Context, aggregate *invoice.Invoice) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing invoice. The stored line set is replaced
// wholesale with the aggregate's current snapshot; partial line updates do
// not exist. Runs the delete-and-recreate inside the caller's transaction
// when the repository was obtained from a unit of work.
func (r *GormInvoiceRepository) Update(ctx context.Context, aggregate *invoice.Invoice) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Model(&InvoiceDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"customer_name":  dto.CustomerName,
		"customer_email": dto.CustomerEmail,
		"status":         dto.Status,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.db.WithContext(ctx).Where("invoice_id = ?", dto.ID).Delete(&InvoiceLineDTO{}).Error; err != nil {
		return err
	}

	if len(dto.Lines) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Lines).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an invoice by ID with its lines in stored order.
func (r *GormInvoiceRepository) Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto InvoiceDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("invoice", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every stored invoice with its lines.
func (r *GormInvoiceRepository) GetAll(ctx context.Context) ([]*invoice.Invoice, error) {
	var dtos []InvoiceDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	invoices := make([]*invoice.Invoice, 0, len(dtos))
	for _, dto := range dtos {
		inv, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		invoices = append(invoices, inv)
	}

	return invoices, nil
}
