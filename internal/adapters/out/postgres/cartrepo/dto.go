// Package cartrepo persists Cart aggregates in the carts and cart_items
// tables. Lines reference menu items by id only; names and prices are read
// from menu_items on every load so cart totals follow the live catalog.
package cartrepo

import (
	"time"

	"fooddelivery/internal/adapters/out/postgres/catalogrepo"
	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartDTO is the carts row. customer_id is unique: a customer has at most one
// cart, and a concurrent second insert fails instead of creating a twin.
type CartDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	RestaurantID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ItemCount    int             `gorm:"not null"`
	TotalAmount  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	UpdatedAt    time.Time
}

func (CartDTO) TableName() string {
	return "carts"
}

// CartItemDTO is one cart_items row. Position keeps insertion order.
type CartItemDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CartID     uuid.UUID `gorm:"type:uuid;not null;index"`
	MenuItemID uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity   int       `gorm:"not null"`
	Position   int       `gorm:"not null"`
}

func (CartItemDTO) TableName() string {
	return "cart_items"
}

func fromDomain(c *cart.Cart) (CartDTO, []CartItemDTO) {
	items := c.Items()
	dtos := make([]CartItemDTO, 0, len(items))
	for pos, it := range items {
		dtos = append(dtos, CartItemDTO{
			ID:         it.ID().Bytes(),
			CartID:     c.ID().Bytes(),
			MenuItemID: it.MenuItemID().Bytes(),
			Quantity:   it.Quantity(),
			Position:   pos,
		})
	}

	return CartDTO{
		ID:           c.ID().Bytes(),
		CustomerID:   c.CustomerID().Bytes(),
		RestaurantID: c.RestaurantID().Bytes(),
		ItemCount:    c.ItemCount(),
		TotalAmount:  c.TotalAmount().Decimal(),
	}, dtos
}

// toDomain rebuilds the cart. A line whose menu item is gone from the
// catalog is kept with an empty name and zero price.
func toDomain(dto CartDTO, items []CartItemDTO, menu map[uuid.UUID]catalogrepo.MenuItemDTO) (*cart.Cart, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]*cart.Item, 0, len(items))
	for _, it := range items {
		itemID, err := kernel.UUIDFromBytes(it.ID[:])
		if err != nil {
			return nil, err
		}
		menuItemID, err := kernel.UUIDFromBytes(it.MenuItemID[:])
		if err != nil {
			return nil, err
		}

		var (
			name     string
			price    = kernel.ZeroMoney()
			imageURL string
		)
		if m, ok := menu[it.MenuItemID]; ok {
			name, imageURL = m.Name, m.ImageURL
			if price, err = kernel.NewMoney(m.Price); err != nil {
				return nil, err
			}
		}

		lines = append(lines, cart.RestoreItem(itemID, menuItemID, name, price, imageURL, it.Quantity))
	}

	return cart.RestoreCart(id, customerID, restaurantID, lines), nil
}
