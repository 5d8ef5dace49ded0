// Package listeners adapts inbound integration events into commands.
// Listeners perform no business logic: every rule lives in the aggregate and
// its policy, a listener only translates signal to command.
package listeners

import (
	"context"
	"log/slog"

	"invoicing/internal/core/application/usecases/commands"
	"invoicing/internal/core/domain/model/kernel"
)

// ResourceDeliveredEvent signals that the notification subsystem confirmed
// delivery of a resource. The channel is shared and at-least-once: the same
// event may arrive multiple times, out of order, or for a resource that is
// not an invoice at all.
type ResourceDeliveredEvent struct {
	ResourceID kernel.UUID
}

// MarkInvoiceDeliveredListener translates ResourceDeliveredEvent into the
// MarkInvoiceDelivered command.
type MarkInvoiceDeliveredListener struct {
	handler commands.MarkInvoiceDeliveredCommandHandler
	logger  *slog.Logger
}

// NewMarkInvoiceDeliveredListener creates the listener for delivery
// confirmations.
func NewMarkInvoiceDeliveredListener(
	handler commands.MarkInvoiceDeliveredCommandHandler,
	logger *slog.Logger,
) MarkInvoiceDeliveredListener {
	return MarkInvoiceDeliveredListener{
		handler: handler,
		logger:  logger.With("component", "mark_invoice_delivered_listener"),
	}
}

// Handle forwards the event to the command handler. Absorbed confirmations
// (unknown id, invoice not in sending) are logged at debug level and are not
// errors; only infrastructure failures return a non-nil error.
func (l MarkInvoiceDeliveredListener) Handle(ctx context.Context, event ResourceDeliveredEvent) error {
	cmd, err := commands.NewMarkInvoiceDeliveredCommand(event.ResourceID)
	if err != nil {
		return err
	}

	delivered, err := l.handler.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	if delivered == nil {
		l.logger.DebugContext(ctx, "delivery confirmation absorbed", "resource_id", event.ResourceID.String())
		return nil
	}

	l.logger.InfoContext(ctx, "invoice marked as sent-to-client", "invoice_id", delivered.ID().String())
	return nil
}
