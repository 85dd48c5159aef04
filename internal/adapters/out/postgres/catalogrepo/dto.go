// Package catalogrepo is the GORM-backed catalog gateway: read access to
// restaurants and menu items owned by the catalog service.
package catalogrepo

import (
	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RestaurantDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string    `gorm:"not null"`
	Address string
}

func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// MenuItemDTO is a menu_items row. Price is stored as numeric(12,2).
type MenuItemDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name         string          `gorm:"not null"`
	Price        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ImageURL     string
}

func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func FromRestaurant(r *catalog.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:      r.ID().Bytes(),
		Name:    r.Name(),
		Address: r.Address(),
	}
}

func FromMenuItem(m *catalog.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:           m.ID().Bytes(),
		RestaurantID: m.RestaurantID().Bytes(),
		Name:         m.Name(),
		Price:        m.Price().Decimal(),
		ImageURL:     m.ImageURL(),
	}
}

func restaurantToDomain(dto RestaurantDTO) (*catalog.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return catalog.NewRestaurant(id, dto.Name, dto.Address)
}

// MenuItemToDomain maps a row back to the catalog model. It is shared with
// the cart repository, which loads live prices for cart lines.
func MenuItemToDomain(dto MenuItemDTO) (*catalog.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}
	return catalog.NewMenuItem(id, restaurantID, dto.Name, price, dto.ImageURL)
}
