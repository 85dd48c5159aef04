package cart

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// RemoveDelta is the quantity change that removes a line whatever its
// current quantity.
const RemoveDelta = math.MinInt

var (
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")

	// ErrConflictingRestaurant is returned when adding an item from a
	// restaurant other than the one the cart is bound to.
	ErrConflictingRestaurant = errs.NewRuleViolationError("conflicting restaurant",
		"cart already holds items from another restaurant")

	// ErrMenuItemNotInRestaurant is returned when the menu item is not sold by
	// the restaurant named in the request.
	ErrMenuItemNotInRestaurant = errs.NewRuleViolationError("menu item not in restaurant",
		"menu item belongs to another restaurant")

	// ErrCartItemNotOwned reports a cart line that exists but belongs to
	// another customer's cart. It is a not-found condition for the caller.
	ErrCartItemNotOwned = fmt.Errorf("%w: cart item does not belong to the customer's cart", errs.ErrObjectNotFound)
)

// Cart is the aggregate root for a customer's pre-order basket.
type Cart struct {
	id           kernel.UUID
	customerID   kernel.UUID
	restaurantID kernel.UUID
	items        []*Item
	itemCount    int
	totalAmount  kernel.Money
	guard        guard.ConstructorGuard
}

// NewCart creates an empty cart bound to restaurantID. It must receive at
// least one item before it is stored.
func NewCart(id, customerID, restaurantID kernel.UUID) (*Cart, error) {
	if err := errors.Join(id.Validate(), customerID.Validate(), restaurantID.Validate()); err != nil {
		return nil, err
	}

	return &Cart{
		id:           id,
		customerID:   customerID,
		restaurantID: restaurantID,
		totalAmount:  kernel.ZeroMoney(),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreCart rebuilds a cart from storage and recomputes its totals from the
// loaded lines.
func RestoreCart(id, customerID, restaurantID kernel.UUID, items []*Item) *Cart {
	c := &Cart{
		id:           id,
		customerID:   customerID,
		restaurantID: restaurantID,
		items:        items,
		guard:        guard.NewConstructorGuard(),
	}
	c.recompute()
	return c
}

func (c *Cart) Validate() error {
	if c == nil {
		return ErrCartIsNotConstructed
	}
	return c.guard.Validate(ErrCartIsNotConstructed)
}

func (c *Cart) ID() kernel.UUID {
	return c.id
}

func (c *Cart) CustomerID() kernel.UUID {
	return c.customerID
}

func (c *Cart) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Items returns a copy of the cart lines in insertion order.
func (c *Cart) Items() []*Item {
	out := make([]*Item, len(c.items))
	copy(out, c.items)
	return out
}

// ItemCount is the sum of all line quantities.
func (c *Cart) ItemCount() int {
	return c.itemCount
}

// TotalAmount is the sum of quantity × unit price over all lines.
func (c *Cart) TotalAmount() kernel.Money {
	return c.totalAmount
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Item looks up a line by its identifier.
func (c *Cart) Item(itemID kernel.UUID) (*Item, bool) {
	idx := slices.IndexFunc(c.items, func(it *Item) bool { return it.id.IsEqual(itemID) })
	if idx < 0 {
		return nil, false
	}
	return c.items[idx], true
}

// AddItem puts quantity units of menuItem into the cart. restaurantID is the
// restaurant the caller is ordering from; it must match the cart's binding
// and own the menu item. An existing line for the same menu item is
// incremented and newItemID is ignored. The cart is unchanged on error.
func (c *Cart) AddItem(newItemID, restaurantID kernel.UUID, menuItem *catalog.MenuItem, quantity int) (*Item, error) {
	if err := menuItem.Validate(); err != nil {
		return nil, err
	}
	if quantity < 1 {
		return nil, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, math.MaxInt)
	}
	if !restaurantID.IsEqual(c.restaurantID) {
		return nil, ErrConflictingRestaurant.WithReason(
			"cart %s is bound to restaurant %s, not %s", c.id, c.restaurantID, restaurantID)
	}
	if !menuItem.BelongsTo(restaurantID) {
		return nil, ErrMenuItemNotInRestaurant.WithReason(
			"menu item %s belongs to restaurant %s, not %s", menuItem.ID(), menuItem.RestaurantID(), restaurantID)
	}

	for _, it := range c.items {
		if !it.menuItemID.IsEqual(menuItem.ID()) {
			continue
		}
		if it.quantity > math.MaxInt-quantity {
			return nil, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, math.MaxInt-it.quantity)
		}
		it.quantity += quantity
		it.refresh(menuItem)
		c.recompute()
		return it, nil
	}

	if err := newItemID.Validate(); err != nil {
		return nil, err
	}
	it := &Item{id: newItemID, menuItemID: menuItem.ID(), quantity: quantity}
	it.refresh(menuItem)
	c.items = append(c.items, it)
	c.recompute()

	return it, nil
}

// ChangeItemQuantity applies delta to the quantity of the given line and
// removes the line when the result is zero or less. removed reports whether
// the line was dropped. Pass RemoveDelta to remove a line unconditionally.
func (c *Cart) ChangeItemQuantity(itemID kernel.UUID, delta int) (removed bool, err error) {
	idx := slices.IndexFunc(c.items, func(it *Item) bool { return it.id.IsEqual(itemID) })
	if idx < 0 {
		return false, errs.NewObjectNotFoundError("cart item", itemID)
	}

	it := c.items[idx]
	if delta > 0 && it.quantity > math.MaxInt-delta {
		return false, errs.NewValueIsOutOfRangeError("delta", delta, math.MinInt, math.MaxInt-it.quantity)
	}

	if it.quantity+delta <= 0 {
		c.items = slices.Delete(c.items, idx, idx+1)
		removed = true
	} else {
		it.quantity += delta
	}
	c.recompute()

	return removed, nil
}

// RemoveItem drops a line regardless of its quantity.
func (c *Cart) RemoveItem(itemID kernel.UUID) error {
	_, err := c.ChangeItemQuantity(itemID, RemoveDelta)
	return err
}

func (c *Cart) recompute() {
	count := 0
	total := kernel.ZeroMoney()
	for _, it := range c.items {
		count += it.quantity
		total = total.Add(it.LineTotal())
	}
	c.itemCount = count
	c.totalAmount = total
}

func (i *Item) refresh(menuItem *catalog.MenuItem) {
	i.name = menuItem.Name()
	i.unitPrice = menuItem.Price()
	i.imageURL = menuItem.ImageURL()
}

