package queries

import (
	"context"

	"github.com/go-faster/errors"
	"gorm.io/gorm"
)

type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle fails with errs.ErrObjectNotFound for an unknown customer. A known
// customer without orders gets an empty slice.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context, query GetCustomerOrdersQuery,
) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)
	if err := requireCustomer(db, query.CustomerID()); err != nil {
		return nil, err
	}

	var rows []orderRow
	err := db.Raw(orderSelect+`
		WHERE o.customer_id = ?
		ORDER BY o.order_date DESC, o.id
	`, query.CustomerID().Bytes()).Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "select customer orders")
	}

	return toSummaries(rows)
}
