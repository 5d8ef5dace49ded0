package commands

import (
	"context"
	"errors"

	"invoicing/internal/core/domain/model/invoice"
	"invoicing/internal/pkg/errs"
)

// MarkInvoiceDeliveredCommandHandler is the idempotency boundary for the
// at-least-once delivery confirmation signal.
//
// It distinguishes only "did something" (returns the transitioned aggregate)
// from "did nothing" (returns nil, nil). Business-rule failures never
// surface:
//   - unknown id: the shared confirmation channel may reference resources
//     outside this domain, so absence is absorbed as a no-op
//   - invoice not in sending (still draft, or already sent-to-client from a
//     prior duplicate): absorbed as a no-op, never an error, never a mutation
//
// Infrastructure failures (storage unavailable) still propagate.
type MarkInvoiceDeliveredCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

// NewMarkInvoiceDeliveredCommandHandler creates a handler for delivery
// confirmations.
func NewMarkInvoiceDeliveredCommandHandler(uowFactory InvoiceUoWFactory) MarkInvoiceDeliveredCommandHandler {
	return MarkInvoiceDeliveredCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes a delivery confirmation. Returns the transitioned
// aggregate when exactly this call performed the transition, or (nil, nil)
// when the confirmation was absorbed.
func (h MarkInvoiceDeliveredCommandHandler) Handle(
	ctx context.Context,
	cmd MarkInvoiceDeliveredCommand,
) (*invoice.Invoice, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.InvoiceRepository()

	inv, err := repo.Get(ctx, cmd.InvoiceID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	delivered, err := inv.MarkAsSentToClient()
	if errors.Is(err, invoice.ErrCannotMarkAsDelivered) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, delivered); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return delivered, nil
}
