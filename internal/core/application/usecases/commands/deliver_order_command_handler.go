package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/agent"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"

	"github.com/go-faster/errors"
	"go.uber.org/zap"
)

// DeliverOrderResult is the settled order and, when one was linked, the
// agent with the commission credited to it.
type DeliverOrderResult struct {
	Order      *order.Order
	Agent      *agent.Agent
	Commission kernel.Money
}

// DeliverOrderCommandHandler marks an order DELIVERED and settles the
// agent's earnings in the same transaction.
//
// The order's status is not checked first: delivering an order again sets
// DELIVERED again and credits the commission again.
type DeliverOrderCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	settler    services.EarningsSettler
	logger     *zap.Logger
}

func NewDeliverOrderCommandHandler(uowFactory FulfillmentUoWFactory, logger *zap.Logger) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory: uowFactory,
		settler:    services.NewEarningsSettler(),
		logger:     logger.Named("deliver_order"),
	}
}

// Handle fails with errs.ErrObjectNotFound for an unknown order. An order
// without an agent, or whose agent record is gone, is delivered without
// settlement and logged.
func (h DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) (DeliverOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return DeliverOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return DeliverOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	agentRepo := uow.AgentRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return DeliverOrderResult{}, err
	}
	if o.Status().IsTerminal() {
		h.logger.Warn("order already delivered, settling again", zap.Stringer("order_id", o.ID()))
	}

	a, err := h.linkedAgent(ctx, agentRepo, o, cmd)
	if err != nil {
		return DeliverOrderResult{}, err
	}

	commission, err := h.settler.Settle(o, a, time.Now().UTC())
	if err != nil {
		return DeliverOrderResult{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return DeliverOrderResult{}, err
	}
	if a != nil {
		if err = agentRepo.Update(ctx, a); err != nil {
			return DeliverOrderResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return DeliverOrderResult{}, err
	}

	return DeliverOrderResult{Order: o, Agent: a, Commission: commission}, nil
}

type agentGetter interface {
	GetForUpdate(ctx context.Context, id kernel.UUID) (*agent.Agent, error)
}

func (h DeliverOrderCommandHandler) linkedAgent(
	ctx context.Context, agents agentGetter, o *order.Order, cmd DeliverOrderCommand,
) (*agent.Agent, error) {
	linked := o.AgentID()
	if requested := cmd.AgentID(); requested != nil && (linked == nil || !requested.IsEqual(*linked)) {
		fields := []zap.Field{zap.Stringer("order_id", o.ID()), zap.Stringer("requested_agent_id", requested)}
		if linked != nil {
			fields = append(fields, zap.Stringer("linked_agent_id", linked))
		}
		h.logger.Warn("delivering agent differs from the agent linked to the order", fields...)
	}

	if linked == nil {
		h.logger.Warn("order has no agent linked, delivering without settlement",
			zap.Stringer("order_id", o.ID()))
		return nil, nil //nolint:nilnil // no agent is a valid outcome
	}

	a, err := agents.GetForUpdate(ctx, *linked)
	if errors.Is(err, errs.ErrObjectNotFound) {
		h.logger.Warn("linked agent not found, delivering without settlement",
			zap.Stringer("order_id", o.ID()),
			zap.Stringer("agent_id", linked))
		return nil, nil //nolint:nilnil // no agent is a valid outcome
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}
