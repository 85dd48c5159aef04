package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrDeliverOrderCommandIsNotConstructed = errors.New(
	"DeliverOrderCommand must be created via NewDeliverOrderCommand constructor",
)

// DeliverOrderCommand completes a delivery. The agent credited is always the
// one linked to the order; agentID, when set, is only cross-checked.
type DeliverOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	agentID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeliverOrderCommand builds the command. agentID may be nil.
func NewDeliverOrderCommand(orderID kernel.UUID, agentID *kernel.UUID) (DeliverOrderCommand, error) {
	cmd := DeliverOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	var agentErr error
	if agentID != nil {
		id := *agentID
		if agentErr = id.Validate(); agentErr == nil {
			cmd.agentID = &id
		}
	}

	if err := errors.Join(
		setID(&cmd.orderID, orderID),
		agentErr,
	); err != nil {
		return DeliverOrderCommand{}, err
	}

	return cmd, nil
}

func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}

func (c DeliverOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c DeliverOrderCommand) AgentID() *kernel.UUID {
	return c.agentID
}
