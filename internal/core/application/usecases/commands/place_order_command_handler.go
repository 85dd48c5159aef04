package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/go-faster/errors"
	"go.uber.org/zap"
)

// DefaultDeliveryWindow is added to the placement time to estimate delivery.
const DefaultDeliveryWindow = 45 * time.Minute

var (
	ErrEmptyOrMissingCart = errs.NewRuleViolationError("empty or missing cart",
		"the customer has no cart with items to check out")
	ErrNoValidItems = errs.NewRuleViolationError("no valid items",
		"none of the cart items is still on the menu")
)

// PlaceOrderCommandHandler converts a cart into an order.
//
// Reading the cart, inserting the order with its item snapshots and deleting
// the cart happen in one transaction, under the customer row lock. A retried
// checkout after a commit finds no cart and fails with ErrEmptyOrMissingCart
// instead of ordering twice.
type PlaceOrderCommandHandler struct {
	uowFactory     CheckoutUoWFactory
	deliveryWindow time.Duration
	logger         *zap.Logger
}

func NewPlaceOrderCommandHandler(
	uowFactory CheckoutUoWFactory, deliveryWindow time.Duration, logger *zap.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory:     uowFactory,
		deliveryWindow: deliveryWindow,
		logger:         logger.Named("place_order"),
	}
}

// Handle returns the committed order.
//
// Cart lines whose menu item has left the catalog are skipped with a
// warning; when no line survives the call fails with ErrNoValidItems. The
// order total is the amount the customer paid, taken from the command as is.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customer, err := uow.CustomerRepository().GetForUpdate(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	cartRepo := uow.CartRepository()
	c, err := cartRepo.GetByCustomer(ctx, customer.ID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrEmptyOrMissingCart.WithReason("customer %s has no cart", customer.ID())
	}
	if err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, ErrEmptyOrMissingCart.WithReason("cart %s has no items", c.ID())
	}

	catalogGateway := uow.CatalogGateway()
	restaurant, err := catalogGateway.FindRestaurant(ctx, c.RestaurantID())
	if err != nil {
		return nil, err
	}

	lines := c.Items()
	items := make([]*order.Item, 0, len(lines))
	for _, line := range lines {
		menuItem, err := catalogGateway.FindMenuItem(ctx, line.MenuItemID())
		if errors.Is(err, errs.ErrObjectNotFound) {
			h.logger.Warn("menu item not found while placing order, skipping line",
				zap.Stringer("order_id", cmd.OrderID()),
				zap.Stringer("menu_item_id", line.MenuItemID()),
				zap.Int("quantity", line.Quantity()))
			continue
		}
		if err != nil {
			return nil, err
		}

		item, err := order.NewItem(kernel.NewUUID(), menuItem.ID(), menuItem.Name(), menuItem.Price(),
			line.Quantity(), menuItem.ImageURL())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil, ErrNoValidItems.WithReason("all %d lines of cart %s reference missing menu items", len(lines), c.ID())
	}

	details := cmd.Details()
	o, err := order.NewOrder(order.Placement{
		ID:              cmd.OrderID(),
		CustomerID:      customer.ID(),
		RestaurantID:    restaurant.ID(),
		Items:           items,
		TotalAmount:     details.TotalAmount,
		DeliveryAddress: details.DeliveryAddress,
		PaymentMethod:   details.PaymentMethod,
		Payment:         details.Payment,
		PlacedAt:        time.Now().UTC(),
		DeliveryWindow:  h.deliveryWindow,
	})
	if err != nil {
		return nil, err
	}

	if !o.ItemsTotal().Equal(o.TotalAmount()) {
		h.logger.Warn("paid amount differs from the sum of order lines",
			zap.Stringer("order_id", o.ID()),
			zap.Stringer("total_amount", o.TotalAmount()),
			zap.Stringer("items_total", o.ItemsTotal()))
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}
	if err = cartRepo.Delete(ctx, c.ID()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
