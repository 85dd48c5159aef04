package kernel_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("accepts zero and positive amounts", func(t *testing.T) {
		zero, err := kernel.NewMoney(decimal.Zero)
		require.NoError(t, err)
		assert.True(t, zero.IsZero())

		m, err := kernel.MoneyFromFloat(20.5)
		require.NoError(t, err)
		assert.Equal(t, "20.50", m.String())
	})

	t.Run("rounds sub-cent digits half-up", func(t *testing.T) {
		for in, want := range map[string]string{
			"100.334": "100.33",
			"100.335": "100.34",
			"0.004":   "0",
			"15.0495": "15.05",
		} {
			m, err := kernel.NewMoney(decimal.RequireFromString(in))
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(want).Equal(m.Decimal()), "%s became %s", in, m.Decimal())
		}

		assert.True(t, kernel.MustMoney(100.334).Equal(kernel.MustMoney(100.33)))
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		_, err := kernel.MoneyFromFloat(-0.01)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("line totals are exact", func(t *testing.T) {
		total := kernel.MustMoney(50.0).Times(1).Add(kernel.MustMoney(20.0).Times(3))

		assert.Equal(t, "110.00", total.String())
	})

	t.Run("no float drift when summing cents", func(t *testing.T) {
		total := kernel.ZeroMoney()
		for range 10 {
			total = total.Add(kernel.MustMoney(0.1))
		}

		assert.True(t, total.Equal(kernel.MustMoney(1)))
	})
}

func TestMoney_Share(t *testing.T) {
	rate := decimal.RequireFromString("0.15")

	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{name: "half cent rounds up", amount: 100.33, want: "15.05"},
		{name: "exact", amount: 200, want: "30.00"},
		{name: "below half rounds down", amount: 10.01, want: "1.50"},
		{name: "zero", amount: 0, want: "0.00"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := kernel.MustMoney(tc.amount).Share(rate)

			assert.Equal(t, tc.want, got.String())
		})
	}
}
