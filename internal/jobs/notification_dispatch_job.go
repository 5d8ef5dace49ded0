package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// notificationDispatcher drains the pending notification queue.
type notificationDispatcher interface {
	DispatchPending(ctx context.Context) error
}

// NotificationDispatchJob periodically flushes the notification outbox.
// Runs every second so queued invoice notifications leave the process
// promptly and their delivery confirmations flow back into the core.
type NotificationDispatchJob struct {
	dispatcher notificationDispatcher
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewNotificationDispatchJob creates the dispatch job for the given
// dispatcher.
func NewNotificationDispatchJob(dispatcher notificationDispatcher, logger *slog.Logger) *NotificationDispatchJob {
	return &NotificationDispatchJob{
		dispatcher: dispatcher,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "notification_dispatch_job"),
	}
}

// Start begins the dispatch job to run every second.
func (j *NotificationDispatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()

		if err := j.dispatcher.DispatchPending(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Notification dispatch job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification dispatch job started (running every second)")
	return nil
}

// Stop stops the dispatch job.
func (j *NotificationDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification dispatch job stopped")
}
