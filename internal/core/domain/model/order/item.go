package order

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// Item is a frozen copy of a cart line taken when the order is placed. It is
// decoupled from later catalog changes.
type Item struct {
	id         kernel.UUID
	menuItemID kernel.UUID
	name       string
	price      kernel.Money
	quantity   int
	imageURL   string
}

// NewItem snapshots one line. menuItemID is kept for audit only.
func NewItem(id, menuItemID kernel.UUID, name string, price kernel.Money, quantity int, imageURL string) (*Item, error) {
	var nameErr, quantityErr error
	name = strings.TrimSpace(name)
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("item name")
	}
	if quantity < 1 {
		quantityErr = errs.NewValueIsOutOfRangeError("quantity", quantity, 1, math.MaxInt)
	}

	if err := errors.Join(id.Validate(), menuItemID.Validate(), nameErr, quantityErr); err != nil {
		return nil, fmt.Errorf("order item: %w", err)
	}

	return &Item{
		id:         id,
		menuItemID: menuItemID,
		name:       name,
		price:      price,
		quantity:   quantity,
		imageURL:   imageURL,
	}, nil
}

// RestoreItem rebuilds a snapshot from storage.
func RestoreItem(id, menuItemID kernel.UUID, name string, price kernel.Money, quantity int, imageURL string) *Item {
	return &Item{
		id:         id,
		menuItemID: menuItemID,
		name:       name,
		price:      price,
		quantity:   quantity,
		imageURL:   imageURL,
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

// Price is the unit price at placement time.
func (i *Item) Price() kernel.Money {
	return i.price
}

func (i *Item) Quantity() int {
	return i.quantity
}

func (i *Item) ImageURL() string {
	return i.imageURL
}

func (i *Item) LineTotal() kernel.Money {
	return i.price.Times(i.quantity)
}
