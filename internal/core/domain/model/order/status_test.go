package order_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in   string
		want order.Status
	}{
		{in: "PLACED", want: order.Placed},
		{in: "Placed", want: order.Placed},
		{in: " placed ", want: order.Placed},
		{in: "OUT_FOR_DELIVERY", want: order.OutForDelivery},
		{in: "Out for delivery", want: order.OutForDelivery},
		{in: "out-for-delivery", want: order.OutForDelivery},
		{in: "Delivered", want: order.Delivered},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := order.ParseStatus(tc.in)

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("rejects unknown names", func(t *testing.T) {
		for _, in := range []string{"", "UNKNOWN", "CANCELLED", "placedd"} {
			_, err := order.ParseStatus(in)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, in)
		}
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "PLACED", order.Placed.String())
	assert.Equal(t, "OUT_FOR_DELIVERY", order.OutForDelivery.String())
	assert.Equal(t, "DELIVERED", order.Delivered.String())
	assert.Equal(t, "UNKNOWN", order.Status(42).String())
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range []order.Status{order.Placed, order.OutForDelivery, order.Delivered} {
		assert.NoError(t, s.Validate(), s.String())
	}
	assert.ErrorIs(t, order.Unknown.Validate(), errs.ErrValueIsInvalid)
	assert.ErrorIs(t, order.Status(-1).Validate(), errs.ErrValueIsInvalid)
}

func TestStatus_Dispatch(t *testing.T) {
	next, err := order.Placed.Dispatch()
	require.NoError(t, err)
	assert.Equal(t, order.OutForDelivery, next)

	for _, s := range []order.Status{order.Unknown, order.OutForDelivery, order.Delivered} {
		_, err := s.Dispatch()

		require.ErrorIs(t, err, order.ErrOrderNotPlaced, s.String())
		require.ErrorIs(t, err, errs.ErrRuleViolation)
	}
}

func TestStatus_Deliver(t *testing.T) {
	for _, s := range []order.Status{order.Placed, order.OutForDelivery, order.Delivered} {
		assert.Equal(t, order.Delivered, s.Deliver())
	}
	assert.True(t, order.Delivered.IsTerminal())
	assert.False(t, order.OutForDelivery.IsTerminal())
}

func TestStatus_ValidateCanHaveAgent(t *testing.T) {
	tests := []struct {
		status   order.Status
		hasAgent bool
		wantErr  bool
	}{
		{order.Placed, false, false},
		{order.Placed, true, true},
		{order.OutForDelivery, true, false},
		{order.OutForDelivery, false, true},
		{order.Delivered, true, false},
		{order.Delivered, false, false},
	}

	for _, tc := range tests {
		err := tc.status.ValidateCanHaveAgent(tc.hasAgent)
		if tc.wantErr {
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid, "%s agent=%v", tc.status, tc.hasAgent)
		} else {
			assert.NoError(t, err, "%s agent=%v", tc.status, tc.hasAgent)
		}
	}
}
