package commands

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand checks out the customer's cart. Payment has already been
// captured by the gateway; its correlation strings are stored as given.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(kernel.NewUUID(), customerID, PlaceOrderDetails{
//	    TotalAmount:     kernel.MustMoney(140),
//	    DeliveryAddress: "12 Lake Rd",
//	    PaymentMethod:   "Razorpay",
//	    Payment:         order.PaymentReference{GatewayOrderID: "order_1"},
//	})
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	details    PlaceOrderDetails

	guard guard.ConstructorGuard
}

// PlaceOrderDetails is the client-supplied part of a checkout.
type PlaceOrderDetails struct {
	TotalAmount     kernel.Money
	DeliveryAddress string
	PaymentMethod   string
	Payment         order.PaymentReference
}

func NewPlaceOrderCommand(orderID, customerID kernel.UUID, details PlaceOrderDetails) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	var addressErr error
	details.DeliveryAddress = strings.TrimSpace(details.DeliveryAddress)
	if details.DeliveryAddress == "" {
		addressErr = order.ErrDeliveryAddressRequired
	}

	if err := errors.Join(
		setID(&cmd.orderID, orderID),
		setID(&cmd.customerID, customerID),
		addressErr,
	); err != nil {
		return PlaceOrderCommand{}, err
	}
	cmd.details = details

	return cmd, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c PlaceOrderCommand) Details() PlaceOrderDetails {
	return c.details
}
