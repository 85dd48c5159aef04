package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/agent"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/go-faster/errors"
)

// AssignAgentCommandHandler moves an order to OUT_FOR_DELIVERY and its agent
// to BUSY in one transaction.
//
// The order row and then the agent row are locked before either is checked,
// and the agent write is a compare-and-set on its version, so of two callers
// racing for one agent exactly one sees it AVAILABLE. The loser gets
// agent.ErrAgentNotAvailable. An agent still linked to an OUT_FOR_DELIVERY
// order is refused the same way, whatever its stored status says.
type AssignAgentCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	assigner   services.AgentAssigner
}

func NewAssignAgentCommandHandler(uowFactory FulfillmentUoWFactory) AssignAgentCommandHandler {
	return AssignAgentCommandHandler{
		uowFactory: uowFactory,
		assigner:   services.NewAgentAssigner(),
	}
}

// Handle returns the updated order.
//
// Failures: errs.ErrObjectNotFound for an unknown order or agent;
// order.ErrOrderNotPlaced or agent.ErrAgentNotAvailable (both an invalid
// assignment) when either side is in the wrong state.
func (h AssignAgentCommandHandler) Handle(ctx context.Context, cmd AssignAgentCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	agentRepo := uow.AgentRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	a, err := agentRepo.GetForUpdate(ctx, cmd.AgentID())
	if err != nil {
		return nil, err
	}

	if err = h.ensureNoActiveOrder(ctx, orderRepo, a); err != nil {
		return nil, err
	}

	if err = h.assigner.Assign(o, a); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}
	if err = agentRepo.Update(ctx, a); err != nil {
		return nil, h.lostRace(err, cmd)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, h.lostRace(err, cmd)
	}

	return o, nil
}

// ensureNoActiveOrder keeps an agent at one active delivery at a time.
func (h AssignAgentCommandHandler) ensureNoActiveOrder(
	ctx context.Context, orderRepo ports.OrderRepository, a *agent.Agent,
) error {
	active, err := orderRepo.FindActiveForAgent(ctx, a.ID())
	if err != nil {
		return err
	}
	if active != nil {
		return agent.ErrAgentNotAvailable.WithReason("agent %s is delivering order %s", a.ID(), active.ID())
	}
	return nil
}

func (h AssignAgentCommandHandler) lostRace(err error, cmd AssignAgentCommand) error {
	if errors.Is(err, errs.ErrConcurrentUpdate) {
		return errors.Join(
			agent.ErrAgentNotAvailable.WithReason("agent %s was taken by a concurrent assignment", cmd.AgentID()),
			err,
		)
	}
	return err
}
