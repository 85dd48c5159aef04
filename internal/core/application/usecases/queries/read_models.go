// Package queries contains the read side of the fulfillment core. Handlers
// query the database directly through GORM and return flat read models; no
// aggregate is loaded and nothing is locked.
package queries

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AgentView is a delivery agent as shown to administrators.
type AgentView struct {
	ID              kernel.UUID
	Code            string
	Name            string
	Phone           string
	Email           string
	Status          string
	TotalDeliveries int
	TotalEarnings   kernel.Money
	TodaysEarning   kernel.Money
	Rating          float64
}

// OrderSummary is one line of an order listing.
type OrderSummary struct {
	ID                kernel.UUID
	CustomerID        kernel.UUID
	RestaurantID      kernel.UUID
	RestaurantName    string
	AgentID           *kernel.UUID
	AgentName         string
	Status            string
	TotalAmount       kernel.Money
	DeliveryAddress   string
	PaymentMethod     string
	PaymentStatus     string
	Payment           order.PaymentReference
	OrderDate         time.Time
	EstimatedDelivery time.Time
	DeliveredAt       *time.Time
}

const agentColumns = `id, code, name, phone, email, status,
	total_deliveries, total_earnings, todays_earning, rating`

type agentRow struct {
	ID              uuid.UUID
	Code            string
	Name            string
	Phone           string
	Email           string
	Status          string
	TotalDeliveries int
	TotalEarnings   decimal.Decimal
	TodaysEarning   decimal.Decimal
	Rating          float64
}

func (r agentRow) toView() (AgentView, error) {
	id, err := toUUID(r.ID)
	if err != nil {
		return AgentView{}, err
	}
	total, err := kernel.NewMoney(r.TotalEarnings)
	if err != nil {
		return AgentView{}, err
	}
	today, err := kernel.NewMoney(r.TodaysEarning)
	if err != nil {
		return AgentView{}, err
	}

	return AgentView{
		ID:              id,
		Code:            r.Code,
		Name:            r.Name,
		Phone:           r.Phone,
		Email:           r.Email,
		Status:          r.Status,
		TotalDeliveries: r.TotalDeliveries,
		TotalEarnings:   total,
		TodaysEarning:   today,
		Rating:          r.Rating,
	}, nil
}

// orderSelect joins the restaurant and agent names onto an order row. Both
// joins are outer: the catalog may have dropped the restaurant and most
// orders have no agent yet.
const orderSelect = `
	SELECT
		o.id, o.customer_id, o.restaurant_id, r.name AS restaurant_name,
		o.agent_id, a.name AS agent_name, o.status, o.total_amount,
		o.delivery_address, o.payment_method, o.payment_status,
		o.gateway_order_id, o.gateway_payment_id, o.gateway_signature,
		o.order_date, o.estimated_delivery, o.delivered_at
	FROM orders o
	LEFT JOIN restaurants r ON r.id = o.restaurant_id
	LEFT JOIN delivery_agents a ON a.id = o.agent_id`

type orderRow struct {
	ID                uuid.UUID
	CustomerID        uuid.UUID
	RestaurantID      uuid.UUID
	RestaurantName    *string
	AgentID           *uuid.UUID
	AgentName         *string
	Status            string
	TotalAmount       decimal.Decimal
	DeliveryAddress   string
	PaymentMethod     string
	PaymentStatus     string
	GatewayOrderID    string
	GatewayPaymentID  string
	GatewaySignature  string
	OrderDate         time.Time
	EstimatedDelivery time.Time
	DeliveredAt       *time.Time
}

func (r orderRow) toSummary() (OrderSummary, error) {
	id, err := toUUID(r.ID)
	if err != nil {
		return OrderSummary{}, err
	}
	customerID, err := toUUID(r.CustomerID)
	if err != nil {
		return OrderSummary{}, err
	}
	restaurantID, err := toUUID(r.RestaurantID)
	if err != nil {
		return OrderSummary{}, err
	}
	agentID, err := toOptionalUUID(r.AgentID)
	if err != nil {
		return OrderSummary{}, err
	}
	total, err := kernel.NewMoney(r.TotalAmount)
	if err != nil {
		return OrderSummary{}, err
	}

	return OrderSummary{
		ID:              id,
		CustomerID:      customerID,
		RestaurantID:    restaurantID,
		RestaurantName:  deref(r.RestaurantName),
		AgentID:         agentID,
		AgentName:       deref(r.AgentName),
		Status:          r.Status,
		TotalAmount:     total,
		DeliveryAddress: r.DeliveryAddress,
		PaymentMethod:   r.PaymentMethod,
		PaymentStatus:   r.PaymentStatus,
		Payment: order.PaymentReference{
			GatewayOrderID:   r.GatewayOrderID,
			GatewayPaymentID: r.GatewayPaymentID,
			GatewaySignature: r.GatewaySignature,
		},
		OrderDate:         r.OrderDate,
		EstimatedDelivery: r.EstimatedDelivery,
		DeliveredAt:       r.DeliveredAt,
	}, nil
}

func toSummaries(rows []orderRow) ([]OrderSummary, error) {
	summaries := make([]OrderSummary, 0, len(rows))
	for _, row := range rows {
		s, err := row.toSummary()
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}

func toUUID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toOptionalUUID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil //nolint:nilnil // absent reference
	}
	converted, err := toUUID(*id)
	if err != nil {
		return nil, err
	}
	return &converted, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
