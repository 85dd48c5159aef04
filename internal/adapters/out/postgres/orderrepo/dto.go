// Package orderrepo persists Order aggregates and their item snapshots in the
// orders and order_items tables.
package orderrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the orders row. Status holds the canonical status name;
// agent_id is a plain reference, not an owning relation.
type OrderDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	RestaurantID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	AgentID           *uuid.UUID      `gorm:"type:uuid;index"`
	TotalAmount       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DeliveryAddress   string          `gorm:"not null"`
	PaymentMethod     string
	PaymentStatus     string     `gorm:"not null"`
	Payment           PaymentDTO `gorm:"embedded;embeddedPrefix:gateway_"`
	Status            string     `gorm:"type:varchar(32);not null;index"`
	OrderDate         time.Time  `gorm:"not null;index"`
	EstimatedDelivery time.Time  `gorm:"not null"`
	DeliveredAt       *time.Time
}

func (OrderDTO) TableName() string {
	return "orders"
}

// PaymentDTO holds the gateway correlation strings stored for audit.
type PaymentDTO struct {
	OrderID   string
	PaymentID string
	Signature string
}

// ItemDTO is one order_items row, a frozen snapshot of a cart line.
type ItemDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	MenuItemID uuid.UUID       `gorm:"type:uuid;not null"`
	Name       string          `gorm:"not null"`
	Price      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity   int             `gorm:"not null"`
	ImageURL   string
	Position   int `gorm:"not null"`
}

func (ItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) (OrderDTO, []ItemDTO) {
	var agentID *uuid.UUID
	if id := o.AgentID(); id != nil {
		raw := id.Bytes()
		agentID = &raw
	}

	items := o.Items()
	itemDTOs := make([]ItemDTO, 0, len(items))
	for pos, it := range items {
		itemDTOs = append(itemDTOs, ItemDTO{
			ID:         it.ID().Bytes(),
			OrderID:    o.ID().Bytes(),
			MenuItemID: it.MenuItemID().Bytes(),
			Name:       it.Name(),
			Price:      it.Price().Decimal(),
			Quantity:   it.Quantity(),
			ImageURL:   it.ImageURL(),
			Position:   pos,
		})
	}

	payment := o.Payment()
	return OrderDTO{
		ID:              o.ID().Bytes(),
		CustomerID:      o.CustomerID().Bytes(),
		RestaurantID:    o.RestaurantID().Bytes(),
		AgentID:         agentID,
		TotalAmount:     o.TotalAmount().Decimal(),
		DeliveryAddress: o.DeliveryAddress(),
		PaymentMethod:   o.PaymentMethod(),
		PaymentStatus:   o.PaymentStatus(),
		Payment: PaymentDTO{
			OrderID:   payment.GatewayOrderID,
			PaymentID: payment.GatewayPaymentID,
			Signature: payment.GatewaySignature,
		},
		Status:            o.Status().String(),
		OrderDate:         o.OrderDate(),
		EstimatedDelivery: o.EstimatedDelivery(),
		DeliveredAt:       o.DeliveredAt(),
	}, itemDTOs
}

func toDomain(dto OrderDTO, itemDTOs []ItemDTO) (*order.Order, error) {
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

	var agentID *kernel.UUID
	if dto.AgentID != nil {
		aID, agentErr := kernel.UUIDFromBytes((*dto.AgentID)[:])
		if agentErr != nil {
			return nil, agentErr
		}
		agentID = &aID
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	if err = status.ValidateCanHaveAgent(agentID != nil); err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(itemDTOs))
	for _, it := range itemDTOs {
		item, itemErr := itemToDomain(it)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.Snapshot{
		ID:              id,
		CustomerID:      customerID,
		RestaurantID:    restaurantID,
		AgentID:         agentID,
		Items:           items,
		TotalAmount:     total,
		DeliveryAddress: dto.DeliveryAddress,
		PaymentMethod:   dto.PaymentMethod,
		PaymentStatus:   dto.PaymentStatus,
		Payment: order.PaymentReference{
			GatewayOrderID:   dto.Payment.OrderID,
			GatewayPaymentID: dto.Payment.PaymentID,
			GatewaySignature: dto.Payment.Signature,
		},
		Status:            status,
		OrderDate:         dto.OrderDate,
		EstimatedDelivery: dto.EstimatedDelivery,
		DeliveredAt:       dto.DeliveredAt,
	}), nil
}

func itemToDomain(dto ItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}
	return order.RestoreItem(id, menuItemID, dto.Name, price, dto.Quantity, dto.ImageURL), nil
}
