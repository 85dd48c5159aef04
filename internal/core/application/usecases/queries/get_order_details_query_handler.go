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

type GetOrderDetailsQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderDetailsQueryHandler(db *gorm.DB) GetOrderDetailsQueryHandler {
	return GetOrderDetailsQueryHandler{db: db}
}

type orderItemRow struct {
	ID         uuid.UUID
	MenuItemID uuid.UUID
	Name       string
	Price      decimal.Decimal
	Quantity   int
	ImageURL   string
}

// Handle fails with errs.ErrObjectNotFound for an unknown order.
func (h GetOrderDetailsQueryHandler) Handle(
	ctx context.Context, query GetOrderDetailsQuery,
) (GetOrderDetailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)
	orderID := query.OrderID()

	var rows []orderRow
	if err := db.Raw(orderSelect+`
		WHERE o.id = ?
	`, orderID.Bytes()).Scan(&rows).Error; err != nil {
		return GetOrderDetailsQueryResponse{}, errors.Wrap(err, "select order")
	}
	if len(rows) == 0 {
		return GetOrderDetailsQueryResponse{}, errs.NewObjectNotFoundError("order", orderID)
	}

	summary, err := rows[0].toSummary()
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	var items []orderItemRow
	if err = db.Raw(`
		SELECT id, menu_item_id, name, price, quantity, image_url
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, orderID.Bytes()).Scan(&items).Error; err != nil {
		return GetOrderDetailsQueryResponse{}, errors.Wrap(err, "select order items")
	}

	resp := GetOrderDetailsQueryResponse{
		OrderSummary: summary,
		Items:        make([]OrderItemView, 0, len(items)),
	}
	for _, it := range items {
		view, itemErr := it.toView()
		if itemErr != nil {
			return GetOrderDetailsQueryResponse{}, itemErr
		}
		resp.Items = append(resp.Items, view)
	}

	return resp, nil
}

func (r orderItemRow) toView() (OrderItemView, error) {
	id, err := toUUID(r.ID)
	if err != nil {
		return OrderItemView{}, err
	}
	menuItemID, err := toUUID(r.MenuItemID)
	if err != nil {
		return OrderItemView{}, err
	}
	price, err := kernel.NewMoney(r.Price)
	if err != nil {
		return OrderItemView{}, err
	}

	return OrderItemView{
		ID:         id,
		MenuItemID: menuItemID,
		Name:       r.Name,
		Price:      price,
		Quantity:   r.Quantity,
		ImageURL:   r.ImageURL,
	}, nil
}
