package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetCartQueryHandler struct {
	db *gorm.DB
}

func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

type cartRow struct {
	ID             uuid.UUID
	CustomerID     uuid.UUID
	RestaurantID   uuid.UUID
	RestaurantName *string
}

type cartLineRow struct {
	ID         uuid.UUID
	MenuItemID uuid.UUID
	Quantity   int
	Name       *string
	Price      decimal.NullDecimal
	ImageURL   *string
}

// Handle fails with errs.ErrObjectNotFound when the customer is unknown or
// has no cart.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)
	customerID := query.CustomerID()
	if err := requireCustomer(db, customerID); err != nil {
		return GetCartQueryResponse{}, err
	}

	var carts []cartRow
	err := db.Raw(`
		SELECT c.id, c.customer_id, c.restaurant_id, r.name AS restaurant_name
		FROM carts c
		LEFT JOIN restaurants r ON r.id = c.restaurant_id
		WHERE c.customer_id = ?
	`, customerID.Bytes()).Scan(&carts).Error
	if err != nil {
		return GetCartQueryResponse{}, errors.Wrap(err, "select cart")
	}
	if len(carts) == 0 {
		return GetCartQueryResponse{}, errs.NewObjectNotFoundError("cart", customerID)
	}

	var lines []cartLineRow
	err = db.Raw(`
		SELECT ci.id, ci.menu_item_id, ci.quantity, m.name, m.price, m.image_url
		FROM cart_items ci
		LEFT JOIN menu_items m ON m.id = ci.menu_item_id
		WHERE ci.cart_id = ?
		ORDER BY ci.position
	`, carts[0].ID).Scan(&lines).Error
	if err != nil {
		return GetCartQueryResponse{}, errors.Wrap(err, "select cart items")
	}

	return buildCartResponse(carts[0], lines)
}

func buildCartResponse(c cartRow, lines []cartLineRow) (GetCartQueryResponse, error) {
	id, err := toUUID(c.ID)
	if err != nil {
		return GetCartQueryResponse{}, err
	}
	customerID, err := toUUID(c.CustomerID)
	if err != nil {
		return GetCartQueryResponse{}, err
	}
	restaurantID, err := toUUID(c.RestaurantID)
	if err != nil {
		return GetCartQueryResponse{}, err
	}

	resp := GetCartQueryResponse{
		ID:             id,
		CustomerID:     customerID,
		RestaurantID:   restaurantID,
		RestaurantName: deref(c.RestaurantName),
		Items:          make([]CartLineView, 0, len(lines)),
		TotalAmount:    kernel.ZeroMoney(),
	}
	for _, line := range lines {
		view, lineErr := line.toView()
		if lineErr != nil {
			return GetCartQueryResponse{}, lineErr
		}
		resp.Items = append(resp.Items, view)
		resp.ItemCount += view.Quantity
		resp.TotalAmount = resp.TotalAmount.Add(view.LineTotal)
	}

	return resp, nil
}

func (r cartLineRow) toView() (CartLineView, error) {
	id, err := toUUID(r.ID)
	if err != nil {
		return CartLineView{}, err
	}
	menuItemID, err := toUUID(r.MenuItemID)
	if err != nil {
		return CartLineView{}, err
	}

	price := kernel.ZeroMoney()
	if r.Price.Valid {
		if price, err = kernel.NewMoney(r.Price.Decimal); err != nil {
			return CartLineView{}, err
		}
	}

	return CartLineView{
		ID:         id,
		MenuItemID: menuItemID,
		Name:       deref(r.Name),
		UnitPrice:  price,
		ImageURL:   deref(r.ImageURL),
		Quantity:   r.Quantity,
		LineTotal:  price.Times(r.Quantity),
	}, nil
}

func requireCustomer(db *gorm.DB, id kernel.UUID) error {
	var n int64
	if err := db.Table("customers").Where("id = ?", id.Bytes()).Count(&n).Error; err != nil {
		return errors.Wrap(err, "count customers")
	}
	if n == 0 {
		return errs.NewObjectNotFoundError("customer", id)
	}
	return nil
}
