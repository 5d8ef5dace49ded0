package ports

import (
	"context"

	"invoicing/internal/core/domain/model/kernel"
)

// NotificationFacade is the outbound-notify contract the core depends on.
// Dispatch is fire-and-forget from the core's perspective: the facade may
// queue or retry internally, and delivery confirmation arrives later through
// a separate inbound signal. The core never observes delivery synchronously.
type NotificationFacade interface {
	// Notify requests dispatch of a notification about the given resource
	// to the customer's email address.
	Notify(ctx context.Context, resourceID kernel.UUID, toEmail string, subject string, message string) error
}
