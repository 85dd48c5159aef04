package commands

import (
	"context"

	"fooddelivery/internal/pkg/errs"

	"github.com/go-faster/errors"
)

// ClearCartCommandHandler empties a customer's cart. Clearing a customer
// without a cart succeeds, so a retried call is harmless.
type ClearCartCommandHandler struct {
	uowFactory CartUoWFactory
}

func NewClearCartCommandHandler(uowFactory CartUoWFactory) ClearCartCommandHandler {
	return ClearCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle fails with errs.ErrObjectNotFound only for an unknown customer.
func (h ClearCartCommandHandler) Handle(ctx context.Context, cmd ClearCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.CustomerRepository().GetForUpdate(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	cartRepo := uow.CartRepository()
	c, err := cartRepo.GetByCustomer(ctx, cmd.CustomerID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err = cartRepo.Delete(ctx, c.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
