package commands_test

import (
	"context"
	"testing"

	"invoicing/internal/core/application/usecases/commands"
	"invoicing/internal/core/domain/model/invoice"
	"invoicing/internal/core/domain/model/kernel"
	"invoicing/internal/core/ports"
	"invoicing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeInvoiceStore is an in-memory ports.InvoiceRepository shared across
// unit of work instances, so the whole lifecycle can be driven through the
// real handlers without a database.
type fakeInvoiceStore struct {
	invoices map[string]*invoice.Invoice
}

func newFakeInvoiceStore() *fakeInvoiceStore {
	return &fakeInvoiceStore{invoices: make(map[string]*invoice.Invoice)}
}

func (s *fakeInvoiceStore) Add(_ context.Context, inv *invoice.Invoice) error {
	s.invoices[inv.ID().String()] = inv
	return nil
}

func (s *fakeInvoiceStore) Update(_ context.Context, inv *invoice.Invoice) error {
	if _, ok := s.invoices[inv.ID().String()]; !ok {
		return errs.NewObjectNotFoundError("invoice", inv.ID())
	}
	s.invoices[inv.ID().String()] = inv
	return nil
}

func (s *fakeInvoiceStore) Get(_ context.Context, id kernel.UUID) (*invoice.Invoice, error) {
	inv, ok := s.invoices[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("invoice", id)
	}
	return inv, nil
}

func (s *fakeInvoiceStore) GetAll(_ context.Context) ([]*invoice.Invoice, error) {
	all := make([]*invoice.Invoice, 0, len(s.invoices))
	for _, inv := range s.invoices {
		all = append(all, inv)
	}
	return all, nil
}

type fakeInvoiceUoW struct {
	store *fakeInvoiceStore
}

func (u fakeInvoiceUoW) Begin(_ context.Context) error              { return nil }
func (u fakeInvoiceUoW) Commit(_ context.Context) error             { return nil }
func (u fakeInvoiceUoW) Rollback(_ context.Context) error           { return nil }
func (u fakeInvoiceUoW) InvoiceRepository() ports.InvoiceRepository { return u.store }

type fakeInvoiceUoWFactory struct {
	store *fakeInvoiceStore
}

func (f fakeInvoiceUoWFactory) Create() commands.InvoiceUoW {
	return fakeInvoiceUoW{store: f.store}
}

type recordingFacade struct {
	notified []kernel.UUID
}

func (r *recordingFacade) Notify(
	_ context.Context,
	resourceID kernel.UUID,
	_, _, _ string,
) error {
	r.notified = append(r.notified, resourceID)
	return nil
}

func TestInvoiceLifecycle_CreateSendDeliver(t *testing.T) {
	ctx := t.Context()
	store := newFakeInvoiceStore()
	factory := fakeInvoiceUoWFactory{store: store}
	facade := &recordingFacade{}

	createHandler := commands.NewCreateInvoiceCommandHandler(factory)
	sendHandler := commands.NewSendInvoiceCommandHandler(factory, facade)
	deliverHandler := commands.NewMarkInvoiceDeliveredCommandHandler(factory)

	createCmd, err := commands.NewCreateInvoiceCommand(kernel.NewUUID(), testCustomer(t),
		[]invoice.InvoiceLine{testLine(t, "Widget", 3, 250), testLine(t, "Gadget", 2, 100)})
	require.NoError(t, err)

	created, err := createHandler.Handle(ctx, createCmd)
	require.NoError(t, err)
	assert.Equal(t, invoice.Draft, created.Status())
	assert.Equal(t, 950, created.TotalPrice())

	sendCmd, err := commands.NewSendInvoiceCommand(created.ID())
	require.NoError(t, err)

	sent, err := sendHandler.Handle(ctx, sendCmd)
	require.NoError(t, err)
	assert.Equal(t, invoice.Sending, sent.Status())
	require.Len(t, facade.notified, 1)
	assert.True(t, facade.notified[0].IsEqual(created.ID()))

	// A second send is rejected: the invoice left draft.
	_, err = sendHandler.Handle(ctx, sendCmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, invoice.ErrCannotSendInvoice)
	assert.Len(t, facade.notified, 1)

	deliverCmd, err := commands.NewMarkInvoiceDeliveredCommand(created.ID())
	require.NoError(t, err)

	delivered, err := deliverHandler.Handle(ctx, deliverCmd)
	require.NoError(t, err)
	require.NotNil(t, delivered)
	assert.Equal(t, invoice.SentToClient, delivered.Status())

	persisted, err := store.Get(ctx, created.ID())
	require.NoError(t, err)
	assert.Equal(t, invoice.SentToClient, persisted.Status())
}

func TestInvoiceLifecycle_ReplayedConfirmationsAreAbsorbed(t *testing.T) {
	ctx := t.Context()
	store := newFakeInvoiceStore()
	factory := fakeInvoiceUoWFactory{store: store}

	createHandler := commands.NewCreateInvoiceCommandHandler(factory)
	sendHandler := commands.NewSendInvoiceCommandHandler(factory, &recordingFacade{})
	deliverHandler := commands.NewMarkInvoiceDeliveredCommandHandler(factory)

	createCmd, err := commands.NewCreateInvoiceCommand(kernel.NewUUID(), testCustomer(t),
		[]invoice.InvoiceLine{testLine(t, "Widget", 1, 100)})
	require.NoError(t, err)
	created, err := createHandler.Handle(ctx, createCmd)
	require.NoError(t, err)

	sendCmd, err := commands.NewSendInvoiceCommand(created.ID())
	require.NoError(t, err)
	_, err = sendHandler.Handle(ctx, sendCmd)
	require.NoError(t, err)

	deliverCmd, err := commands.NewMarkInvoiceDeliveredCommand(created.ID())
	require.NoError(t, err)

	delivered, err := deliverHandler.Handle(ctx, deliverCmd)
	require.NoError(t, err)
	require.NotNil(t, delivered)

	// At-least-once delivery means the confirmation can arrive any number
	// of additional times. Every replay is a silent no-op.
	for range 5 {
		replayed, replayErr := deliverHandler.Handle(ctx, deliverCmd)
		require.NoError(t, replayErr)
		assert.Nil(t, replayed)
	}

	persisted, err := store.Get(ctx, created.ID())
	require.NoError(t, err)
	assert.Equal(t, invoice.SentToClient, persisted.Status())
}

func TestInvoiceLifecycle_ConfirmBeforeSendIsAbsorbed(t *testing.T) {
	ctx := t.Context()
	store := newFakeInvoiceStore()
	factory := fakeInvoiceUoWFactory{store: store}

	createHandler := commands.NewCreateInvoiceCommandHandler(factory)
	deliverHandler := commands.NewMarkInvoiceDeliveredCommandHandler(factory)

	createCmd, err := commands.NewCreateInvoiceCommand(kernel.NewUUID(), testCustomer(t),
		[]invoice.InvoiceLine{testLine(t, "Widget", 1, 100)})
	require.NoError(t, err)
	created, err := createHandler.Handle(ctx, createCmd)
	require.NoError(t, err)

	deliverCmd, err := commands.NewMarkInvoiceDeliveredCommand(created.ID())
	require.NoError(t, err)

	delivered, err := deliverHandler.Handle(ctx, deliverCmd)
	require.NoError(t, err)
	assert.Nil(t, delivered)

	persisted, err := store.Get(ctx, created.ID())
	require.NoError(t, err)
	assert.Equal(t, invoice.Draft, persisted.Status())
}
