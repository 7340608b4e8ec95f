package order_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("valid item", func(t *testing.T) {
		item, err := order.NewItem(kernel.NewUUID(), "Margherita", 12.5, 2)

		require.NoError(t, err)
		assert.Equal(t, "Margherita", item.Name())
		assert.InDelta(t, 12.5, item.Price(), 0.0001)
		assert.Equal(t, 2, item.Quantity())
		assert.InDelta(t, 25.0, item.LineTotal(), 0.0001)
	})

	t.Run("quantity has no upper bound", func(t *testing.T) {
		item, err := order.NewItem(kernel.NewUUID(), "Water Bottle", 1, 500)

		require.NoError(t, err)
		assert.Equal(t, 500, item.Quantity())
	})

	t.Run("zero quantity rejected", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), "Margherita", 12.5, 0)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("negative quantity rejected", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), "Margherita", 12.5, -1)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), "", 12.5, 1)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("negative price rejected", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), "Margherita", -1, 1)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
