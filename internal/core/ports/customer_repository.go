// Package ports defines the contracts between the fulfillment core and its
// infrastructure: repositories, the catalog gateway and the unit of work.
package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/core/domain/model/kernel"
)

// CustomerRepository resolves customers.
type CustomerRepository interface {
	// Get returns the customer or an errs.ErrObjectNotFound error.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetForUpdate is Get plus a row lock held until the transaction ends.
	// The customer row is the serialization point for that customer's cart
	// mutations and checkouts.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
}
