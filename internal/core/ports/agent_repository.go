package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/agent"
	"fooddelivery/internal/core/domain/model/kernel"
)

// AgentRepository defines the persistence contract for delivery agents.
type AgentRepository interface {
	// Add persists a new agent.
	Add(ctx context.Context, aggregate *agent.Agent) error

	// Update writes the agent if its stored version still equals
	// aggregate.Version() and bumps the version. A moved row yields
	// errs.ErrConcurrentUpdate.
	Update(ctx context.Context, aggregate *agent.Agent) error

	// Get retrieves an agent by identifier.
	Get(ctx context.Context, id kernel.UUID) (*agent.Agent, error)

	// GetForUpdate is Get plus a row lock on the agent.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*agent.Agent, error)

	// ResetTodaysEarnings zeroes today's earning of every agent and returns
	// the number of rows changed.
	ResetTodaysEarnings(ctx context.Context) (int64, error)
}
