package agent_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/agent"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAgent(t *testing.T) *agent.Agent {
	t.Helper()
	a, err := agent.NewAgent(kernel.NewUUID(), "AG-0001", "Ravi", "555-0101", "ravi@example.com")
	require.NoError(t, err)
	return a
}

func TestNewAgent(t *testing.T) {
	t.Run("starts available with no earnings", func(t *testing.T) {
		a := newAgent(t)

		assert.Equal(t, agent.Available, a.Status())
		assert.True(t, a.IsAvailable())
		assert.Zero(t, a.TotalDeliveries())
		assert.True(t, a.TotalEarnings().IsZero())
		assert.True(t, a.TodaysEarning().IsZero())
		assert.NoError(t, a.Validate())
	})

	t.Run("required fields", func(t *testing.T) {
		_, err := agent.NewAgent(kernel.UUID{}, " ", "", "", "")

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, agent.ErrCodeIsRequired)
		require.ErrorIs(t, err, agent.ErrNameIsRequired)
	})
}

func TestAgent_TakeOrder(t *testing.T) {
	a := newAgent(t)

	require.NoError(t, a.TakeOrder())
	assert.Equal(t, agent.Busy, a.Status())

	err := a.TakeOrder()
	require.ErrorIs(t, err, agent.ErrAgentNotAvailable)
	require.ErrorIs(t, err, errs.ErrRuleViolation)
	assert.ErrorIs(t, err, order.ErrOrderNotPlaced, "both are invalid assignments")
	assert.Equal(t, agent.Busy, a.Status())
}

func TestAgent_CompleteDelivery(t *testing.T) {
	a := agent.RestoreAgent(agent.Snapshot{
		ID:              kernel.NewUUID(),
		Code:            "AG-0002",
		Name:            "Meena",
		Status:          agent.Busy,
		TotalDeliveries: 7,
		TotalEarnings:   kernel.MustMoney(50),
		TodaysEarning:   kernel.ZeroMoney(),
		Version:         3,
	})

	a.CompleteDelivery(kernel.MustMoney(15.05))

	assert.Equal(t, agent.Available, a.Status())
	assert.Equal(t, 8, a.TotalDeliveries())
	assert.Equal(t, "65.05", a.TotalEarnings().String())
	assert.Equal(t, "15.05", a.TodaysEarning().String())
	assert.Equal(t, int64(3), a.Version())

	a.ResetTodaysEarning()
	assert.True(t, a.TodaysEarning().IsZero())
	assert.Equal(t, "65.05", a.TotalEarnings().String())
}

func TestValidateRating(t *testing.T) {
	for _, ok := range []float64{0, 3.7, agent.MaxRating} {
		assert.NoError(t, agent.ValidateRating(ok), "%v", ok)
	}
	for _, bad := range []float64{-0.5, 5.1} {
		assert.ErrorIs(t, agent.ValidateRating(bad), errs.ErrValueIsOutOfRange, "%v", bad)
	}
}

func TestParseStatus(t *testing.T) {
	for in, want := range map[string]agent.Status{
		"AVAILABLE": agent.Available,
		"available": agent.Available,
		" Busy ":    agent.Busy,
	} {
		got, err := agent.ParseStatus(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := agent.ParseStatus("OFFLINE")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.ErrorIs(t, agent.Unknown.Validate(), errs.ErrValueIsInvalid)
	assert.Equal(t, "BUSY", agent.Busy.String())
}
