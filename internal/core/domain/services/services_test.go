package services_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/agent"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placedOrder(t *testing.T, total float64) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), "Thali", kernel.MustMoney(total), 1, "")
	require.NoError(t, err)
	o, err := order.NewOrder(order.Placement{
		ID:              kernel.NewUUID(),
		CustomerID:      kernel.NewUUID(),
		RestaurantID:    kernel.NewUUID(),
		Items:           []*order.Item{item},
		TotalAmount:     kernel.MustMoney(total),
		DeliveryAddress: "1 Main Rd",
		PlacedAt:        time.Now(),
		DeliveryWindow:  45 * time.Minute,
	})
	require.NoError(t, err)
	return o
}

func availableAgent(t *testing.T) *agent.Agent {
	t.Helper()
	a, err := agent.NewAgent(kernel.NewUUID(), "AG-7", "Kiran", "", "")
	require.NoError(t, err)
	return a
}

func TestAgentAssigner_Assign(t *testing.T) {
	assigner := services.NewAgentAssigner()

	t.Run("placed order and available agent", func(t *testing.T) {
		o, a := placedOrder(t, 100), availableAgent(t)

		require.NoError(t, assigner.Assign(o, a))

		assert.Equal(t, order.OutForDelivery, o.Status())
		assert.True(t, o.AgentID().IsEqual(a.ID()))
		assert.Equal(t, agent.Busy, a.Status())
	})

	t.Run("busy agent leaves order untouched", func(t *testing.T) {
		a := availableAgent(t)
		require.NoError(t, assigner.Assign(placedOrder(t, 10), a))
		second := placedOrder(t, 20)

		err := assigner.Assign(second, a)

		require.ErrorIs(t, err, agent.ErrAgentNotAvailable)
		assert.Equal(t, order.Placed, second.Status())
		assert.Nil(t, second.AgentID())
	})

	t.Run("order not placed leaves agent untouched", func(t *testing.T) {
		o := placedOrder(t, 10)
		o.MarkDelivered(time.Now())
		a := availableAgent(t)

		err := assigner.Assign(o, a)

		require.ErrorIs(t, err, order.ErrOrderNotPlaced)
		assert.Equal(t, agent.Available, a.Status())
	})

	t.Run("unconstructed aggregates", func(t *testing.T) {
		require.ErrorIs(t, assigner.Assign(&order.Order{}, availableAgent(t)), order.ErrOrderIsNotConstructed)
		require.ErrorIs(t, assigner.Assign(placedOrder(t, 1), &agent.Agent{}), agent.ErrAgentIsNotConstructed)
	})
}

func TestEarningsSettler_Commission(t *testing.T) {
	settler := services.NewEarningsSettler()

	tests := map[float64]string{
		100.33: "15.05",
		100:    "15.00",
		0.03:   "0.00",
		0.04:   "0.01",
		999.99: "150.00",
	}
	for total, want := range tests {
		assert.Equal(t, want, settler.Commission(kernel.MustMoney(total)).String(), "total %v", total)
	}
}

func TestEarningsSettler_Settle(t *testing.T) {
	settler := services.NewEarningsSettler()
	deliveredAt := time.Date(2026, 5, 1, 19, 30, 0, 0, time.UTC)

	t.Run("credits the agent", func(t *testing.T) {
		o := placedOrder(t, 100.33)
		a := agent.RestoreAgent(agent.Snapshot{
			ID:            kernel.NewUUID(),
			Name:          "Kiran",
			Status:        agent.Available,
			TotalEarnings: kernel.MustMoney(50),
			TodaysEarning: kernel.ZeroMoney(),
		})
		require.NoError(t, services.NewAgentAssigner().Assign(o, a))

		commission, err := settler.Settle(o, a, deliveredAt)

		require.NoError(t, err)
		assert.Equal(t, "15.05", commission.String())
		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, deliveredAt, *o.DeliveredAt())
		assert.Equal(t, "65.05", a.TotalEarnings().String())
		assert.Equal(t, "15.05", a.TodaysEarning().String())
		assert.Equal(t, 1, a.TotalDeliveries())
		assert.Equal(t, agent.Available, a.Status())
	})

	t.Run("no agent linked", func(t *testing.T) {
		o := placedOrder(t, 40)

		commission, err := settler.Settle(o, nil, deliveredAt)

		require.NoError(t, err)
		assert.True(t, commission.IsZero())
		assert.Equal(t, order.Delivered, o.Status())
	})
}
