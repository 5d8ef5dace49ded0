// Package notifications implements the outbound notification facade the
// core depends on. Notify enqueues; a background job drains the queue
// through a Driver and raises ResourceDeliveredEvent once the driver
// confirms. The queue is what makes delivery confirmation genuinely
// asynchronous and at-least-once from the core's point of view.
package notifications

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"invoicing/internal/core/application/usecases/listeners"
	"invoicing/internal/core/domain/model/kernel"
)

// DeliveredHandler consumes delivery confirmations raised by the dispatcher.
type DeliveredHandler interface {
	Handle(ctx context.Context, event listeners.ResourceDeliveredEvent) error
}

type pendingNotification struct {
	resourceID kernel.UUID
	toEmail    string
	subject    string
	message    string
}

// Dispatcher implements ports.NotificationFacade with an in-memory pending
// queue. The queue is shared between request goroutines (Notify) and the
// cron goroutine (DispatchPending), so access is mutex guarded.
type Dispatcher struct {
	driver    Driver
	delivered DeliveredHandler
	logger    *slog.Logger

	mu      sync.Mutex
	pending []pendingNotification
}

// NewDispatcher creates a dispatcher sending through the given driver and
// raising confirmations to the given handler.
func NewDispatcher(driver Driver, delivered DeliveredHandler, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		driver:    driver,
		delivered: delivered,
		logger:    logger.With("component", "notification_dispatcher"),
	}
}

// Notify enqueues a notification for dispatch. Fire-and-forget for the
// caller: delivery happens later on the dispatch path.
func (d *Dispatcher) Notify(ctx context.Context, resourceID kernel.UUID, toEmail, subject, message string) error {
	if err := resourceID.Validate(); err != nil {
		return err
	}

	d.mu.Lock()
	d.pending = append(d.pending, pendingNotification{
		resourceID: resourceID,
		toEmail:    toEmail,
		subject:    subject,
		message:    message,
	})
	d.mu.Unlock()

	d.logger.InfoContext(ctx, "notification queued", "resource_id", resourceID.String(), "to", toEmail)
	return nil
}

// DispatchPending drains the queue: each notification goes through the
// driver and, once the driver confirms, the delivery confirmation is raised.
// A notification whose send fails is re-queued, so a later run retries it
// (duplicate confirmations are the consumer's problem, which is why the
// MarkDelivered path is idempotent).
func (d *Dispatcher) DispatchPending(ctx context.Context) error {
	d.mu.Lock()
	batch := d.pending
	d.pending = nil
	d.mu.Unlock()

	var failures []error
	for _, n := range batch {
		if err := d.driver.Send(ctx, n.toEmail, n.subject, n.message, n.resourceID.String()); err != nil {
			d.mu.Lock()
			d.pending = append(d.pending, n)
			d.mu.Unlock()
			failures = append(failures, err)
			continue
		}

		if err := d.delivered.Handle(ctx, listeners.ResourceDeliveredEvent{ResourceID: n.resourceID}); err != nil {
			failures = append(failures, err)
		}
	}

	return errors.Join(failures...)
}

// PendingCount reports the number of queued notifications.
func (d *Dispatcher) PendingCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}
