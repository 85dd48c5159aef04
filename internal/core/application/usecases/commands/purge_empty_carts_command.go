package commands

import (
	"errors"

	"fooddelivery/internal/pkg/guard"
)

var ErrPurgeEmptyCartsCommandIsNotConstructed = errors.New(
	"PurgeEmptyCartsCommand must be created via NewPurgeEmptyCartsCommand constructor",
)

// PurgeEmptyCartsCommand deletes carts left without items.
type PurgeEmptyCartsCommand struct {
	guard guard.ConstructorGuard
}

func NewPurgeEmptyCartsCommand() PurgeEmptyCartsCommand {
	return PurgeEmptyCartsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c *PurgeEmptyCartsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeEmptyCartsCommandIsNotConstructed)
}
