package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/pkg/errs"

	"github.com/go-faster/errors"
	"go.uber.org/zap"
)

// UpdateCartItemQuantityResult is the outcome of a quantity change. When the
// last line went away the cart is deleted: CartRemoved is set and Cart is nil.
type UpdateCartItemQuantityResult struct {
	Cart        *cart.Cart
	ItemRemoved bool
	CartRemoved bool
}

// UpdateCartItemQuantityCommandHandler changes or removes cart lines.
type UpdateCartItemQuantityCommandHandler struct {
	uowFactory CartUoWFactory
	retrier    conflictRetrier
}

func NewUpdateCartItemQuantityCommandHandler(
	uowFactory CartUoWFactory, retryAttempts int, logger *zap.Logger,
) UpdateCartItemQuantityCommandHandler {
	return UpdateCartItemQuantityCommandHandler{
		uowFactory: uowFactory,
		retrier:    newConflictRetrier(retryAttempts, logger.Named("update_cart_item")),
	}
}

// Handle fails with errs.ErrObjectNotFound for an unknown customer or cart
// item, and with cart.ErrCartItemNotOwned when the item sits in another
// customer's cart.
func (h UpdateCartItemQuantityCommandHandler) Handle(
	ctx context.Context, cmd UpdateCartItemQuantityCommand,
) (UpdateCartItemQuantityResult, error) {
	if err := cmd.Validate(); err != nil {
		return UpdateCartItemQuantityResult{}, err
	}

	var result UpdateCartItemQuantityResult
	err := h.retrier.do(ctx, func() error {
		r, err := h.handleOnce(ctx, cmd)
		result = r
		return err
	})
	if err != nil {
		return UpdateCartItemQuantityResult{}, err
	}
	return result, nil
}

func (h UpdateCartItemQuantityCommandHandler) handleOnce(
	ctx context.Context, cmd UpdateCartItemQuantityCommand,
) (UpdateCartItemQuantityResult, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UpdateCartItemQuantityResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.CustomerRepository().GetForUpdate(ctx, cmd.CustomerID()); err != nil {
		return UpdateCartItemQuantityResult{}, err
	}

	cartRepo := uow.CartRepository()
	holderID, err := cartRepo.GetItemCartID(ctx, cmd.ItemID())
	if err != nil {
		return UpdateCartItemQuantityResult{}, err
	}

	c, err := cartRepo.GetByCustomer(ctx, cmd.CustomerID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return UpdateCartItemQuantityResult{}, errors.Wrapf(cart.ErrCartItemNotOwned,
			"customer %s has no cart, item %s", cmd.CustomerID(), cmd.ItemID())
	}
	if err != nil {
		return UpdateCartItemQuantityResult{}, err
	}
	if !holderID.IsEqual(c.ID()) {
		return UpdateCartItemQuantityResult{}, errors.Wrapf(cart.ErrCartItemNotOwned,
			"item %s is not in cart %s", cmd.ItemID(), c.ID())
	}

	removed, err := c.ChangeItemQuantity(cmd.ItemID(), cmd.Delta())
	if err != nil {
		return UpdateCartItemQuantityResult{}, err
	}

	result := UpdateCartItemQuantityResult{ItemRemoved: removed}
	if c.IsEmpty() {
		err = cartRepo.Delete(ctx, c.ID())
		result.CartRemoved = true
	} else {
		err = cartRepo.Update(ctx, c)
		result.Cart = c
	}
	if err != nil {
		return UpdateCartItemQuantityResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return UpdateCartItemQuantityResult{}, err
	}

	return result, nil
}
