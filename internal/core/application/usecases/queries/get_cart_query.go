package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery reads a customer's cart with live menu names and prices.
type GetCartQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetCartQuery(customerID kernel.UUID) (GetCartQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCartQuery{}, err
	}
	return GetCartQuery{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

func (q GetCartQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// GetCartQueryResponse is the cart read model. A line whose menu item left
// the catalog has an empty name and a zero price.
type GetCartQueryResponse struct {
	ID             kernel.UUID
	CustomerID     kernel.UUID
	RestaurantID   kernel.UUID
	RestaurantName string
	Items          []CartLineView
	ItemCount      int
	TotalAmount    kernel.Money
}

type CartLineView struct {
	ID         kernel.UUID
	MenuItemID kernel.UUID
	Name       string
	UnitPrice  kernel.Money
	ImageURL   string
	Quantity   int
	LineTotal  kernel.Money
}
