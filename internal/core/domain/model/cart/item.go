package cart

import (
	"fooddelivery/internal/core/domain/model/kernel"
)

// Item is one cart line: a menu item reference plus a quantity. Name, price
// and image are the live catalog values loaded alongside the line.
type Item struct {
	id         kernel.UUID
	menuItemID kernel.UUID
	name       string
	unitPrice  kernel.Money
	imageURL   string
	quantity   int
}

// RestoreItem rebuilds a cart line from storage.
func RestoreItem(id, menuItemID kernel.UUID, name string, unitPrice kernel.Money, imageURL string, quantity int) *Item {
	return &Item{
		id:         id,
		menuItemID: menuItemID,
		name:       name,
		unitPrice:  unitPrice,
		imageURL:   imageURL,
		quantity:   quantity,
	}
}

func (i *Item) ID() kernel.UUID {
	return i.id
}

func (i *Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

func (i *Item) Name() string {
	return i.name
}

func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

func (i *Item) ImageURL() string {
	return i.imageURL
}

func (i *Item) Quantity() int {
	return i.quantity
}

// LineTotal is quantity × unit price.
func (i *Item) LineTotal() kernel.Money {
	return i.unitPrice.Times(i.quantity)
}
