package notifications_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"invoicing/internal/adapters/out/notifications"
	"invoicing/internal/core/application/usecases/listeners"
	"invoicing/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDriver struct {
	sent    []string
	sendErr error
}

func (d *recordingDriver) Send(_ context.Context, toEmail, _, _, _ string) error {
	if d.sendErr != nil {
		return d.sendErr
	}
	d.sent = append(d.sent, toEmail)
	return nil
}

type recordingDelivered struct {
	events    []listeners.ResourceDeliveredEvent
	handleErr error
}

func (h *recordingDelivered) Handle(_ context.Context, event listeners.ResourceDeliveredEvent) error {
	h.events = append(h.events, event)
	return h.handleErr
}

func TestDispatcher_Notify_Enqueues(t *testing.T) {
	dispatcher := notifications.NewDispatcher(&recordingDriver{}, &recordingDelivered{}, slog.Default())
	id := kernel.NewUUID()

	err := dispatcher.Notify(t.Context(), id, "jane@example.com", "subject", "message")

	require.NoError(t, err)
	assert.Equal(t, 1, dispatcher.PendingCount())
}

func TestDispatcher_Notify_RejectsUnconstructedID(t *testing.T) {
	dispatcher := notifications.NewDispatcher(&recordingDriver{}, &recordingDelivered{}, slog.Default())

	err := dispatcher.Notify(t.Context(), kernel.UUID{}, "jane@example.com", "subject", "message")

	require.Error(t, err)
	assert.Equal(t, 0, dispatcher.PendingCount())
}

func TestDispatcher_DispatchPending_SendsAndConfirms(t *testing.T) {
	ctx := t.Context()
	driver := &recordingDriver{}
	delivered := &recordingDelivered{}
	dispatcher := notifications.NewDispatcher(driver, delivered, slog.Default())

	first := kernel.NewUUID()
	second := kernel.NewUUID()
	require.NoError(t, dispatcher.Notify(ctx, first, "a@example.com", "s", "m"))
	require.NoError(t, dispatcher.Notify(ctx, second, "b@example.com", "s", "m"))

	err := dispatcher.DispatchPending(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, driver.sent)
	require.Len(t, delivered.events, 2)
	assert.True(t, delivered.events[0].ResourceID.IsEqual(first))
	assert.True(t, delivered.events[1].ResourceID.IsEqual(second))
	assert.Equal(t, 0, dispatcher.PendingCount())
}

func TestDispatcher_DispatchPending_RequeuesOnSendFailure(t *testing.T) {
	ctx := t.Context()
	driver := &recordingDriver{sendErr: errors.New("provider down")}
	delivered := &recordingDelivered{}
	dispatcher := notifications.NewDispatcher(driver, delivered, slog.Default())

	require.NoError(t, dispatcher.Notify(ctx, kernel.NewUUID(), "a@example.com", "s", "m"))

	err := dispatcher.DispatchPending(ctx)

	require.Error(t, err)
	assert.Empty(t, delivered.events)
	assert.Equal(t, 1, dispatcher.PendingCount())

	// Once the provider recovers, the retried notification goes through.
	driver.sendErr = nil
	require.NoError(t, dispatcher.DispatchPending(ctx))
	assert.Len(t, delivered.events, 1)
	assert.Equal(t, 0, dispatcher.PendingCount())
}

func TestDispatcher_DispatchPending_ConfirmationErrorPropagates(t *testing.T) {
	ctx := t.Context()
	delivered := &recordingDelivered{handleErr: errors.New("storage unavailable")}
	dispatcher := notifications.NewDispatcher(&recordingDriver{}, delivered, slog.Default())

	require.NoError(t, dispatcher.Notify(ctx, kernel.NewUUID(), "a@example.com", "s", "m"))

	err := dispatcher.DispatchPending(ctx)

	require.Error(t, err)
	// The send itself succeeded, so the notification is not re-queued.
	assert.Equal(t, 0, dispatcher.PendingCount())
}

func TestDispatcher_DispatchPending_EmptyQueue(t *testing.T) {
	dispatcher := notifications.NewDispatcher(&recordingDriver{}, &recordingDelivered{}, slog.Default())

	require.NoError(t, dispatcher.DispatchPending(t.Context()))
}

func TestDummyDriver_Send_AlwaysSucceeds(t *testing.T) {
	driver := notifications.NewDummyDriver(slog.Default())

	err := driver.Send(t.Context(), "jane@example.com", "subject", "message", kernel.NewUUID().String())

	require.NoError(t, err)
}
