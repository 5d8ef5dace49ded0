package queries_test

import (
	"testing"

	"invoicing/internal/core/application/usecases/queries"
	"invoicing/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetInvoiceQuery_ValidInput(t *testing.T) {
	id := kernel.NewUUID()

	query, err := queries.NewGetInvoiceQuery(id)

	require.NoError(t, err)
	assert.True(t, query.InvoiceID().IsEqual(id))
	require.NoError(t, query.Validate())
}

func TestNewGetInvoiceQuery_InvalidInvoiceID(t *testing.T) {
	_, err := queries.NewGetInvoiceQuery(kernel.UUID{})

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetInvoiceQuery_Validate_ZeroValue(t *testing.T) {
	query := queries.GetInvoiceQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetInvoiceQueryIsNotConstructed)
}
