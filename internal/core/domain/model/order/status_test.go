package order_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	valid := []order.Status{
		order.Pending, order.Processing, order.OutForDelivery, order.Delivered, order.Cancelled,
	}
	for _, s := range valid {
		require.NoError(t, s.Validate(), s.String())
	}

	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(42).Validate())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", order.Pending.String())
	assert.Equal(t, "OutForDelivery", order.OutForDelivery.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestStatus_CanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    order.Status
		to      order.Status
		allowed bool
	}{
		{"pending to processing", order.Pending, order.Processing, true},
		{"processing to out for delivery", order.Processing, order.OutForDelivery, true},
		{"out for delivery to delivered", order.OutForDelivery, order.Delivered, true},
		{"forward jump pending to delivered", order.Pending, order.Delivered, true},
		{"cancel from pending", order.Pending, order.Cancelled, true},
		{"cancel from out for delivery", order.OutForDelivery, order.Cancelled, true},
		{"same status is idempotent", order.Processing, order.Processing, true},

		{"no regression", order.Processing, order.Pending, false},
		{"no regression from delivered", order.Delivered, order.OutForDelivery, false},
		{"cancel after delivered rejected", order.Delivered, order.Cancelled, false},
		{"no exit from cancelled", order.Cancelled, order.Processing, false},
		{"unknown source rejected", order.Unknown, order.Pending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransition(tt.to))
		})
	}
}

func TestStatus_Transition(t *testing.T) {
	t.Run("legal transition returns target", func(t *testing.T) {
		got, err := order.Pending.Transition(order.Processing)

		require.NoError(t, err)
		assert.Equal(t, order.Processing, got)
	})

	t.Run("illegal transition returns InvalidStateError", func(t *testing.T) {
		_, err := order.Delivered.Transition(order.Cancelled)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestStatusFromString(t *testing.T) {
	s, err := order.StatusFromString("OutForDelivery")
	require.NoError(t, err)
	assert.Equal(t, order.OutForDelivery, s)

	_, err = order.StatusFromString("out_for_delivery")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
