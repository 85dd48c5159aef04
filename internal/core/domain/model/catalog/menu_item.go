package catalog

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrMenuItemNameIsRequired   = errs.NewValueIsRequiredError("menu item name")
	ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")
)

// MenuItem is a dish offered by one restaurant at its current price.
type MenuItem struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	name         string
	price        kernel.Money
	imageURL     string
	guard        guard.ConstructorGuard
}

func NewMenuItem(id, restaurantID kernel.UUID, name string, price kernel.Money, imageURL string) (*MenuItem, error) {
	name = strings.TrimSpace(name)

	var nameErr error
	if name == "" {
		nameErr = ErrMenuItemNameIsRequired
	}
	if err := errors.Join(id.Validate(), restaurantID.Validate(), nameErr); err != nil {
		return nil, err
	}

	return &MenuItem{
		id:           id,
		restaurantID: restaurantID,
		name:         name,
		price:        price,
		imageURL:     imageURL,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (m *MenuItem) Validate() error {
	if m == nil {
		return ErrMenuItemIsNotConstructed
	}
	return m.guard.Validate(ErrMenuItemIsNotConstructed)
}

func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

func (m *MenuItem) RestaurantID() kernel.UUID {
	return m.restaurantID
}

func (m *MenuItem) Name() string {
	return m.name
}

// Price is the live catalog price. Orders copy it at placement time and
// never read it again.
func (m *MenuItem) Price() kernel.Money {
	return m.price
}

func (m *MenuItem) ImageURL() string {
	return m.imageURL
}

// BelongsTo reports whether the item is sold by the given restaurant.
func (m *MenuItem) BelongsTo(restaurantID kernel.UUID) bool {
	return m.restaurantID.IsEqual(restaurantID)
}
