package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order together with its item snapshots.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the mutable fields: status, agent and delivery time.
	// Item snapshots and amounts are never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate is Get plus a row lock on the order.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// FindActiveForAgent returns the agent's OUT_FOR_DELIVERY order, or nil
	// when the agent has none.
	FindActiveForAgent(ctx context.Context, agentID kernel.UUID) (*order.Order, error)
}
