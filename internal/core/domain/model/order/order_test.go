package order_test

import (
	"testing"
	"time"

	"orderwizard/internal/core/domain/model/form"
	"orderwizard/internal/core/domain/model/kernel"
	"orderwizard/internal/core/domain/model/order"
	"orderwizard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	id := kernel.NewUUID()
	var state form.State
	require.NoError(t, state.Set(form.Name, "Ana"))
	receivedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.FixedZone("CST", -6*3600))

	o, err := order.NewOrder(id, state, receivedAt)

	require.NoError(t, err)
	require.NoError(t, o.Validate())
	assert.True(t, id.IsEqual(o.ID()))
	assert.Equal(t, "Ana", o.Form().Get(form.Name))
	assert.Equal(t, time.UTC, o.ReceivedAt().Location())
	assert.True(t, receivedAt.Equal(o.ReceivedAt()))
}

func TestNewOrder_StoresIncompleteFormsAsSent(t *testing.T) {
	o, err := order.NewOrder(kernel.NewUUID(), form.State{}, time.Now())

	require.NoError(t, err)
	assert.Equal(t, form.State{}, o.Form())
}

func TestNewOrder_Invalid(t *testing.T) {
	t.Run("zero id", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, form.State{}, time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero time", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), form.State{}, time.Time{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "receivedAt")
	})

	t.Run("both collected", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, form.State{}, time.Time{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID")
		assert.Contains(t, err.Error(), "receivedAt")
	})
}

func TestOrder_Validate(t *testing.T) {
	var literal order.Order
	require.ErrorIs(t, literal.Validate(), order.ErrOrderIsNotConstructed)

	var nilOrder *order.Order
	require.ErrorIs(t, nilOrder.Validate(), order.ErrOrderIsNotConstructed)
}
