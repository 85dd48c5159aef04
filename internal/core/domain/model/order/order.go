package order

import (
	"errors"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// PaymentStatusPaid is recorded on every order: payment capture is confirmed
// by the gateway before checkout reaches the core.
const PaymentStatusPaid = "Paid"

var (
	ErrOrderIsNotConstructed    = errors.New("Order must be created via NewOrder constructor")
	ErrItemsAreRequired         = errs.NewValueIsRequiredError("items")
	ErrDeliveryAddressRequired  = errs.NewValueIsRequiredError("delivery address")
	ErrDeliveryWindowIsNegative = errs.NewValueIsInvalidError("delivery window")
)

// PaymentReference carries the opaque payment gateway correlation strings.
// They are stored verbatim for audit and never verified here.
type PaymentReference struct {
	GatewayOrderID   string
	GatewayPaymentID string
	GatewaySignature string
}

// Placement groups the inputs of NewOrder.
type Placement struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	RestaurantID    kernel.UUID
	Items           []*Item
	TotalAmount     kernel.Money
	DeliveryAddress string
	PaymentMethod   string
	Payment         PaymentReference
	PlacedAt        time.Time
	DeliveryWindow  time.Duration
}

// Order is the aggregate root of a checked-out purchase.
type Order struct {
	id                kernel.UUID
	customerID        kernel.UUID
	restaurantID      kernel.UUID
	agentID           *kernel.UUID
	items             []*Item
	totalAmount       kernel.Money
	deliveryAddress   string
	paymentMethod     string
	paymentStatus     string
	payment           PaymentReference
	status            Status
	orderDate         time.Time
	estimatedDelivery time.Time
	deliveredAt       *time.Time
	guard             guard.ConstructorGuard
}

// NewOrder creates a PLACED, paid order with no agent. TotalAmount is stored
// as given, even when it differs from the sum of the item lines.
// EstimatedDelivery is PlacedAt plus DeliveryWindow.
//
// Returns:
//   - the new order and nil
//   - errs.ErrValueIsRequired for a zero id, customer or restaurant, no items,
//     or a blank address
//   - errs.ErrValueIsInvalid for a negative delivery window
//
// Example:
//
//	o, err := order.NewOrder(order.Placement{
//	    ID:              kernel.NewUUID(),
//	    CustomerID:      customerID,
//	    RestaurantID:    restaurantID,
//	    Items:           items,
//	    TotalAmount:     kernel.MustMoney(110),
//	    DeliveryAddress: "12 Lake Rd",
//	    PlacedAt:        time.Now().UTC(),
//	    DeliveryWindow:  45 * time.Minute,
//	})
func NewOrder(p Placement) (*Order, error) {
	var itemsErr, addressErr, windowErr error
	if len(p.Items) == 0 {
		itemsErr = ErrItemsAreRequired
	}
	address := strings.TrimSpace(p.DeliveryAddress)
	if address == "" {
		addressErr = ErrDeliveryAddressRequired
	}
	if p.DeliveryWindow < 0 {
		windowErr = ErrDeliveryWindowIsNegative
	}

	if err := errors.Join(
		p.ID.Validate(),
		p.CustomerID.Validate(),
		p.RestaurantID.Validate(),
		itemsErr,
		addressErr,
		windowErr,
	); err != nil {
		return nil, err
	}

	items := make([]*Item, len(p.Items))
	copy(items, p.Items)

	return &Order{
		id:                p.ID,
		customerID:        p.CustomerID,
		restaurantID:      p.RestaurantID,
		items:             items,
		totalAmount:       p.TotalAmount,
		deliveryAddress:   address,
		paymentMethod:     p.PaymentMethod,
		paymentStatus:     PaymentStatusPaid,
		payment:           p.Payment,
		status:            Placed,
		orderDate:         p.PlacedAt,
		estimatedDelivery: p.PlacedAt.Add(p.DeliveryWindow),
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// Snapshot is the full persisted state of an order, used by RestoreOrder.
type Snapshot struct {
	ID                kernel.UUID
	CustomerID        kernel.UUID
	RestaurantID      kernel.UUID
	AgentID           *kernel.UUID
	Items             []*Item
	TotalAmount       kernel.Money
	DeliveryAddress   string
	PaymentMethod     string
	PaymentStatus     string
	Payment           PaymentReference
	Status            Status
	OrderDate         time.Time
	EstimatedDelivery time.Time
	DeliveredAt       *time.Time
}

// RestoreOrder rebuilds an order from storage without re-validating it.
func RestoreOrder(s Snapshot) *Order {
	return &Order{
		id:                s.ID,
		customerID:        s.CustomerID,
		restaurantID:      s.RestaurantID,
		agentID:           s.AgentID,
		items:             s.Items,
		totalAmount:       s.TotalAmount,
		deliveryAddress:   s.DeliveryAddress,
		paymentMethod:     s.PaymentMethod,
		paymentStatus:     s.PaymentStatus,
		payment:           s.Payment,
		status:            s.Status,
		orderDate:         s.OrderDate,
		estimatedDelivery: s.EstimatedDelivery,
		deliveredAt:       s.DeliveredAt,
		guard:             guard.NewConstructorGuard(),
	}
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// AgentID returns the assigned agent, or nil.
func (o *Order) AgentID() *kernel.UUID {
	return o.agentID
}

// Items returns a copy of the snapshot lines.
func (o *Order) Items() []*Item {
	out := make([]*Item, len(o.items))
	copy(out, o.items)
	return out
}

func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// ItemsTotal sums the snapshot lines. It can differ from TotalAmount when
// cart lines were dropped at checkout.
func (o *Order) ItemsTotal() kernel.Money {
	total := kernel.ZeroMoney()
	for _, it := range o.items {
		total = total.Add(it.LineTotal())
	}
	return total
}

func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

func (o *Order) PaymentStatus() string {
	return o.paymentStatus
}

func (o *Order) Payment() PaymentReference {
	return o.payment
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

func (o *Order) EstimatedDelivery() time.Time {
	return o.estimatedDelivery
}

// DeliveredAt is nil until the order is delivered.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// ValidateAssign checks that the order is waiting for an agent.
func (o *Order) ValidateAssign() error {
	return o.status.ValidateAssign()
}

// AssignAgent links the agent and moves the order out for delivery. Only a
// PLACED order can be assigned.
//
// Returns:
//   - nil on success
//   - errs.ErrValueIsRequired for a zero agent id
//   - ErrOrderNotPlaced when the order is past PLACED; the order is unchanged
func (o *Order) AssignAgent(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	next, err := o.status.Dispatch()
	if err != nil {
		return err
	}

	o.status = next
	o.agentID = &agentID
	return nil
}

// MarkDelivered moves the order to DELIVERED from whatever state it is in
// and stamps the delivery time. Re-delivering an order is allowed.
func (o *Order) MarkDelivered(at time.Time) {
	o.status = o.status.Deliver()
	o.deliveredAt = &at
}
