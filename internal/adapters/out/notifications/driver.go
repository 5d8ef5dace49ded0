package notifications

import (
	"context"
	"log/slog"
)

// Driver delivers a single notification through an external channel.
// The reference travels with the notification and comes back in the
// delivery confirmation.
type Driver interface {
	Send(ctx context.Context, toEmail string, subject string, message string, reference string) error
}

// DummyDriver simulates successful delivery. It stands in for a real
// provider integration and always reports success.
type DummyDriver struct {
	logger *slog.Logger
}

// NewDummyDriver creates a driver that logs instead of sending.
func NewDummyDriver(logger *slog.Logger) *DummyDriver {
	return &DummyDriver{
		logger: logger.With("component", "dummy_notification_driver"),
	}
}

// Send logs the notification and reports success.
func (d *DummyDriver) Send(ctx context.Context, toEmail, subject, _ string, reference string) error {
	d.logger.InfoContext(ctx, "notification sent",
		"to", toEmail,
		"subject", subject,
		"reference", reference,
	)
	return nil
}
