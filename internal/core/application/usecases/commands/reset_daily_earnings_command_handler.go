package commands

import (
	"context"
)

// ResetDailyEarningsCommandHandler zeroes today's earning of all agents.
// Lifetime earnings and delivery counts are untouched.
type ResetDailyEarningsCommandHandler struct {
	uowFactory AgentUoWFactory
}

func NewResetDailyEarningsCommandHandler(uowFactory AgentUoWFactory) ResetDailyEarningsCommandHandler {
	return ResetDailyEarningsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the number of agents whose earning was reset.
func (h ResetDailyEarningsCommandHandler) Handle(ctx context.Context, cmd ResetDailyEarningsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	n, err := uow.AgentRepository().ResetTodaysEarnings(ctx)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return n, nil
}
