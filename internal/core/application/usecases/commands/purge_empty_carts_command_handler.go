package commands

import (
	"context"
)

type PurgeEmptyCartsCommandHandler struct {
	uowFactory CartUoWFactory
}

func NewPurgeEmptyCartsCommandHandler(uowFactory CartUoWFactory) PurgeEmptyCartsCommandHandler {
	return PurgeEmptyCartsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the number of carts deleted.
func (h PurgeEmptyCartsCommandHandler) Handle(ctx context.Context, cmd PurgeEmptyCartsCommand) (int64, error) {
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

	n, err := uow.CartRepository().DeleteEmpty(ctx)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return n, nil
}
