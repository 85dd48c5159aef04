package services

import (
	"time"

	"fooddelivery/internal/core/domain/model/agent"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// CommissionRate is the share of an order total credited to the agent.
var CommissionRate = decimal.RequireFromString("0.15")

// EarningsSettler closes out a delivery.
type EarningsSettler struct {
	rate decimal.Decimal
}

func NewEarningsSettler() EarningsSettler {
	return EarningsSettler{rate: CommissionRate}
}

// Commission is round(total × rate, 2) with half-up rounding on the cent, so
// 100.33 yields 15.05.
func (s EarningsSettler) Commission(total kernel.Money) kernel.Money {
	return total.Share(s.rate)
}

// Settle marks the order delivered at the given time. When a is not nil it
// must be the order's agent; it is credited the commission and released.
// The returned commission is zero when no agent is settled.
func (s EarningsSettler) Settle(o *order.Order, a *agent.Agent, at time.Time) (kernel.Money, error) {
	if err := o.Validate(); err != nil {
		return kernel.Money{}, err
	}

	o.MarkDelivered(at)
	if a == nil {
		return kernel.ZeroMoney(), nil
	}
	if err := a.Validate(); err != nil {
		return kernel.Money{}, err
	}

	commission := s.Commission(o.TotalAmount())
	a.CompleteDelivery(commission)

	return commission, nil
}
