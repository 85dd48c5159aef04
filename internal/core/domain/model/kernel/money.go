package kernel

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of decimal places amounts are rounded to.
const MoneyScale = 2

// ErrMoneyIsNegative is returned when an amount below zero is supplied.
var ErrMoneyIsNegative = errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("must not be negative"))

// Money is a non-negative currency amount backed by an exact decimal, so
// totals and commissions never pick up binary floating point drift.
// The zero value is a valid zero amount.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns an amount of zero.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney wraps a decimal amount, rejecting negatives. Sub-cent digits are
// rounded half-up to MoneyScale, the same way a numeric(12,2) column stores
// them, so an amount reads the same before and after persistence.
//
// Example:
//
//	m, _ := NewMoney(decimal.RequireFromString("100.335"))
//	m.String() // "100.34"
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, ErrMoneyIsNegative
	}
	return Money{amount: amount.Round(MoneyScale)}, nil
}

// MoneyFromFloat converts a float amount such as 100.33 using its shortest
// decimal representation.
func MoneyFromFloat(amount float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount))
}

// MustMoney is MoneyFromFloat for literals known to be valid.
func MustMoney(amount float64) Money {
	m, err := MoneyFromFloat(amount)
	if err != nil {
		panic(err)
	}
	return m
}

// Decimal exposes the exact amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 returns the nearest float, for transport only.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Times multiplies by a non-negative quantity.
func (m Money) Times(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// Share returns amount*rate rounded half-up to cents: 100.33 at 0.15 is
// 15.0495 before rounding and 15.05 after.
func (m Money) Share(rate decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(rate).Round(MoneyScale)}
}

func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// String renders the amount with two decimals.
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}
