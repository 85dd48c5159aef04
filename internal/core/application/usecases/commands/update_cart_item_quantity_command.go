package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrUpdateCartItemQuantityCommandIsNotConstructed = errors.New(
		"UpdateCartItemQuantityCommand must be created via NewUpdateCartItemQuantityCommand constructor",
	)
	ErrDeltaIsZero = errs.NewValueIsInvalidErrorWithCause("delta", errors.New("must not be zero"))
)

// UpdateCartItemQuantityCommand adds delta (possibly negative) to the
// quantity of one line of the customer's cart. A line whose quantity drops
// to zero or below is removed.
type UpdateCartItemQuantityCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	itemID     kernel.UUID
	delta      int

	guard guard.ConstructorGuard
}

func NewUpdateCartItemQuantityCommand(
	customerID, itemID kernel.UUID, delta int,
) (UpdateCartItemQuantityCommand, error) {
	cmd := UpdateCartItemQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	var deltaErr error
	if delta == 0 {
		deltaErr = ErrDeltaIsZero
	}

	if err := errors.Join(
		setID(&cmd.customerID, customerID),
		setID(&cmd.itemID, itemID),
		deltaErr,
	); err != nil {
		return UpdateCartItemQuantityCommand{}, err
	}
	cmd.delta = delta

	return cmd, nil
}

// NewRemoveCartItemCommand removes the line whatever its quantity.
func NewRemoveCartItemCommand(customerID, itemID kernel.UUID) (UpdateCartItemQuantityCommand, error) {
	return NewUpdateCartItemQuantityCommand(customerID, itemID, cart.RemoveDelta)
}

func (c UpdateCartItemQuantityCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartItemQuantityCommandIsNotConstructed)
}

func (c UpdateCartItemQuantityCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c UpdateCartItemQuantityCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c UpdateCartItemQuantityCommand) Delta() int {
	return c.delta
}
