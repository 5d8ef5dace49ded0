// Package jobs provides scheduled background jobs for the invoicing system.
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to drive processes that must run continuously without user interaction.
//
// The notification dispatch job drains the notification outbox every second,
// pushing queued invoice notifications through the configured driver and
// feeding the resulting delivery confirmations back into the core.
package jobs
