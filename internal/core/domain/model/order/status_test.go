package order_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_CanTransition(t *testing.T) {
	allowed := []struct {
		from, to order.Status
	}{
		{order.StatusPlaced, order.StatusConfirmed},
		{order.StatusPlaced, order.StatusCancelled},
		{order.StatusConfirmed, order.StatusPreparing},
		{order.StatusConfirmed, order.StatusCancelled},
		{order.StatusConfirmed, order.StatusOutForDelivery},
		{order.StatusPreparing, order.StatusOutForDelivery},
		{order.StatusPreparing, order.StatusCancelled},
		{order.StatusOutForDelivery, order.StatusDelivered},
		{order.StatusOutForDelivery, order.StatusCancelled},
	}
	for _, tc := range allowed {
		assert.True(t, tc.from.CanTransition(tc.to), "%s -> %s should be allowed", tc.from, tc.to)
	}

	denied := []struct {
		from, to order.Status
	}{
		{order.StatusPlaced, order.StatusPreparing},
		{order.StatusPlaced, order.StatusOutForDelivery},
		{order.StatusPlaced, order.StatusDelivered},
		{order.StatusConfirmed, order.StatusDelivered},
		{order.StatusPreparing, order.StatusConfirmed},
		{order.StatusOutForDelivery, order.StatusPreparing},
		{order.StatusDelivered, order.StatusCancelled},
		{order.StatusCancelled, order.StatusPlaced},
	}
	for _, tc := range denied {
		assert.False(t, tc.from.CanTransition(tc.to), "%s -> %s should be denied", tc.from, tc.to)
	}
}

func TestStatus_TerminalStatesNeverTransition(t *testing.T) {
	all := []order.Status{
		order.StatusPlaced, order.StatusConfirmed, order.StatusPreparing,
		order.StatusOutForDelivery, order.StatusDelivered, order.StatusCancelled,
	}
	for _, terminal := range []order.Status{order.StatusDelivered, order.StatusCancelled} {
		assert.True(t, terminal.IsTerminal())
		for _, target := range all {
			assert.False(t, terminal.CanTransition(target))
		}
	}
}

func TestStatus_UnknownFailsClosed(t *testing.T) {
	unknown := order.Status("refunded")
	require.Error(t, unknown.Validate())
	assert.False(t, unknown.CanTransition(order.StatusCancelled))
	assert.False(t, order.StatusPlaced.CanTransition(unknown))
}

func TestStatusFromString(t *testing.T) {
	status, err := order.StatusFromString("out_for_delivery")
	require.NoError(t, err)
	assert.Equal(t, order.StatusOutForDelivery, status)

	_, err = order.StatusFromString("OUT_FOR_DELIVERY")
	require.Error(t, err)
}
