package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/core/domain/model/kernel"
)

// CartRepository persists Cart aggregates together with their items.
type CartRepository interface {
	// GetByCustomer returns the customer's cart with its items and their
	// live menu-item prices, or an errs.ErrObjectNotFound error.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error)

	// Add stores a new, non-empty cart.
	Add(ctx context.Context, aggregate *cart.Cart) error

	// Update replaces the stored items and totals with the aggregate's.
	Update(ctx context.Context, aggregate *cart.Cart) error

	// Delete removes the cart and its items. Deleting a missing cart is not
	// an error.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetItemCartID returns the id of the cart holding the given item, or an
	// errs.ErrObjectNotFound error when no cart holds it.
	GetItemCartID(ctx context.Context, itemID kernel.UUID) (kernel.UUID, error)

	// DeleteEmpty removes every cart without items and reports how many
	// were removed.
	DeleteEmpty(ctx context.Context) (int64, error)
}
