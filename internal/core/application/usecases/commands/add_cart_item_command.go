package commands

import (
	"errors"
	"math"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrAddCartItemCommandIsNotConstructed = errors.New(
	"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
)

// AddCartItemCommand puts quantity units of a menu item into the customer's
// cart, creating the cart bound to restaurantID when the customer has none.
//
// Example:
//
//	cmd, err := NewAddCartItemCommand(customerID, restaurantID, menuItemID, 2)
//	if err != nil {
//	    return err
//	}
//	c, err := handler.Handle(ctx, cmd)
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	customerID   kernel.UUID
	restaurantID kernel.UUID
	menuItemID   kernel.UUID
	quantity     int

	guard guard.ConstructorGuard
}

func NewAddCartItemCommand(
	customerID, restaurantID, menuItemID kernel.UUID, quantity int,
) (AddCartItemCommand, error) {
	cmd := AddCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setID(&cmd.customerID, customerID),
		setID(&cmd.restaurantID, restaurantID),
		setID(&cmd.menuItemID, menuItemID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddCartItemCommand{}, err
	}

	return cmd, nil
}

func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

func (c AddCartItemCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c AddCartItemCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

func (c AddCartItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

func (c AddCartItemCommand) Quantity() int {
	return c.quantity
}

func (c *AddCartItemCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, math.MaxInt)
	}
	c.quantity = quantity
	return nil
}

func setID(dst *kernel.UUID, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	*dst = id
	return nil
}
