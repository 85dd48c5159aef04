package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/go-faster/errors"
	"go.uber.org/zap"
)

// AddCartItemCommandHandler adds items to a customer's cart.
//
// The customer row is locked for the whole unit of work, so concurrent cart
// mutations of one customer run one after another. A lost race on cart
// creation (unique customer index) is retried.
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
	retrier    conflictRetrier
}

func NewAddCartItemCommandHandler(
	uowFactory CartUoWFactory, retryAttempts int, logger *zap.Logger,
) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		uowFactory: uowFactory,
		retrier:    newConflictRetrier(retryAttempts, logger.Named("add_cart_item")),
	}
}

// Handle returns the cart as it was committed.
//
// Failures: errs.ErrObjectNotFound for an unknown customer, restaurant or
// menu item; cart.ErrConflictingRestaurant when the cart belongs to another
// restaurant; cart.ErrMenuItemNotInRestaurant when the menu item is not sold
// by restaurantID.
func (h AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) (*cart.Cart, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var result *cart.Cart
	err := h.retrier.do(ctx, func() error {
		c, err := h.handleOnce(ctx, cmd)
		result = c
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (h AddCartItemCommandHandler) handleOnce(ctx context.Context, cmd AddCartItemCommand) (*cart.Cart, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.CustomerRepository().GetForUpdate(ctx, cmd.CustomerID()); err != nil {
		return nil, err
	}

	catalogGateway := uow.CatalogGateway()
	restaurant, err := catalogGateway.FindRestaurant(ctx, cmd.RestaurantID())
	if err != nil {
		return nil, err
	}
	menuItem, err := catalogGateway.FindMenuItem(ctx, cmd.MenuItemID())
	if err != nil {
		return nil, err
	}

	cartRepo := uow.CartRepository()
	c, err := cartRepo.GetByCustomer(ctx, cmd.CustomerID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		c = nil
	case err != nil:
		return nil, err
	}

	// A stored cart without lines should not exist; drop it and start over.
	if c != nil && c.IsEmpty() {
		if err = cartRepo.Delete(ctx, c.ID()); err != nil {
			return nil, err
		}
		c = nil
	}

	isNew := c == nil
	if isNew {
		if c, err = cart.NewCart(kernel.NewUUID(), cmd.CustomerID(), restaurant.ID()); err != nil {
			return nil, err
		}
	}

	if _, err = c.AddItem(kernel.NewUUID(), restaurant.ID(), menuItem, cmd.Quantity()); err != nil {
		return nil, err
	}

	if isNew {
		err = cartRepo.Add(ctx, c)
	} else {
		err = cartRepo.Update(ctx, c)
	}
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}
