package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Request and response bodies of openapi.yaml.
type (
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}

	AddCartItemRequest struct {
		RestaurantID uuid.UUID `json:"restaurantId"`
		MenuItemID   uuid.UUID `json:"menuItemId"`
		Quantity     int       `json:"quantity"`
	}

	UpdateCartItemRequest struct {
		Delta int `json:"delta"`
	}

	PlaceOrderRequest struct {
		CustomerID       uuid.UUID `json:"customerId"`
		TotalAmount      float64   `json:"totalAmount"`
		DeliveryAddress  string    `json:"deliveryAddress"`
		PaymentMethod    string    `json:"paymentMethod,omitempty"`
		GatewayOrderID   string    `json:"gatewayOrderId,omitempty"`
		GatewayPaymentID string    `json:"gatewayPaymentId,omitempty"`
		GatewaySignature string    `json:"gatewaySignature,omitempty"`
	}

	AssignAgentRequest struct {
		AgentID uuid.UUID `json:"agentId"`
	}

	DeliverOrderRequest struct {
		AgentID *uuid.UUID `json:"agentId,omitempty"`
	}

	CartItem struct {
		ID         uuid.UUID `json:"id"`
		MenuItemID uuid.UUID `json:"menuItemId"`
		Name       string    `json:"name"`
		UnitPrice  float64   `json:"unitPrice"`
		ImageURL   string    `json:"imageUrl,omitempty"`
		Quantity   int       `json:"quantity"`
		LineTotal  float64   `json:"lineTotal"`
	}

	Cart struct {
		ID             uuid.UUID  `json:"id"`
		CustomerID     uuid.UUID  `json:"customerId"`
		RestaurantID   uuid.UUID  `json:"restaurantId"`
		RestaurantName string     `json:"restaurantName"`
		Items          []CartItem `json:"items"`
		ItemCount      int        `json:"itemCount"`
		TotalAmount    float64    `json:"totalAmount"`
	}

	OrderItem struct {
		ID         uuid.UUID `json:"id"`
		MenuItemID uuid.UUID `json:"menuItemId"`
		Name       string    `json:"name"`
		Price      float64   `json:"price"`
		Quantity   int       `json:"quantity"`
		ImageURL   string    `json:"imageUrl,omitempty"`
	}

	Order struct {
		ID                uuid.UUID   `json:"id"`
		CustomerID        uuid.UUID   `json:"customerId"`
		RestaurantID      uuid.UUID   `json:"restaurantId"`
		RestaurantName    string      `json:"restaurantName"`
		AgentID           *uuid.UUID  `json:"agentId,omitempty"`
		AgentName         string      `json:"agentName,omitempty"`
		Status            string      `json:"status"`
		TotalAmount       float64     `json:"totalAmount"`
		DeliveryAddress   string      `json:"deliveryAddress"`
		PaymentMethod     string      `json:"paymentMethod"`
		PaymentStatus     string      `json:"paymentStatus"`
		OrderDate         time.Time   `json:"orderDate"`
		EstimatedDelivery time.Time   `json:"estimatedDelivery"`
		DeliveredAt       *time.Time  `json:"deliveredAt,omitempty"`
		Items             []OrderItem `json:"items,omitempty"`
	}

	Delivery struct {
		Order      Order   `json:"order"`
		Commission float64 `json:"commission"`
	}

	Agent struct {
		ID              uuid.UUID   `json:"id"`
		Code            string      `json:"code"`
		Name            string      `json:"name"`
		Phone           string      `json:"phone"`
		Email           string      `json:"email"`
		Status          string      `json:"status"`
		TotalDeliveries int         `json:"totalDeliveries"`
		TotalEarnings   float64     `json:"totalEarnings"`
		TodaysEarning   float64     `json:"todaysEarning"`
		Rating          float64     `json:"rating"`
		CurrentOrderID  *uuid.UUID  `json:"currentOrderId,omitempty"`
		OrderIDs        []uuid.UUID `json:"orderIds,omitempty"`
	}
)

// ServerInterface lists the operations of openapi.yaml.
type ServerInterface interface {
	// (GET /api/v1/customers/{customerId}/cart)
	GetCart(ctx echo.Context, customerID uuid.UUID) error
	// (DELETE /api/v1/customers/{customerId}/cart)
	ClearCart(ctx echo.Context, customerID uuid.UUID) error
	// (POST /api/v1/customers/{customerId}/cart/items)
	AddCartItem(ctx echo.Context, customerID uuid.UUID) error
	// (PATCH /api/v1/customers/{customerId}/cart/items/{itemId})
	UpdateCartItemQuantity(ctx echo.Context, customerID, itemID uuid.UUID) error
	// (DELETE /api/v1/customers/{customerId}/cart/items/{itemId})
	RemoveCartItem(ctx echo.Context, customerID, itemID uuid.UUID) error
	// (GET /api/v1/customers/{customerId}/orders)
	GetCustomerOrders(ctx echo.Context, customerID uuid.UUID) error
	// (GET /api/v1/orders)
	GetAllOrders(ctx echo.Context) error
	// (POST /api/v1/orders)
	PlaceOrder(ctx echo.Context) error
	// (GET /api/v1/orders/{orderId})
	GetOrderDetails(ctx echo.Context, orderID uuid.UUID) error
	// (POST /api/v1/orders/{orderId}/assign)
	AssignAgent(ctx echo.Context, orderID uuid.UUID) error
	// (POST /api/v1/orders/{orderId}/deliver)
	DeliverOrder(ctx echo.Context, orderID uuid.UUID) error
	// (GET /api/v1/agents)
	GetAgents(ctx echo.Context) error
	// (GET /api/v1/agents/available)
	GetAvailableAgents(ctx echo.Context) error
	// (GET /api/v1/agents/{agentId})
	GetAgent(ctx echo.Context, agentID uuid.UUID) error
}

// ServerInterfaceWrapper converts echo contexts to typed parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func bindPathUUID(ctx echo.Context, name string) (uuid.UUID, error) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return id, nil
}

func (w *ServerInterfaceWrapper) GetCart(ctx echo.Context) error {
	customerID, err := bindPathUUID(ctx, "customerId")
	if err != nil {
		return err
	}
	return w.Handler.GetCart(ctx, customerID)
}

func (w *ServerInterfaceWrapper) ClearCart(ctx echo.Context) error {
	customerID, err := bindPathUUID(ctx, "customerId")
	if err != nil {
		return err
	}
	return w.Handler.ClearCart(ctx, customerID)
}

func (w *ServerInterfaceWrapper) AddCartItem(ctx echo.Context) error {
	customerID, err := bindPathUUID(ctx, "customerId")
	if err != nil {
		return err
	}
	return w.Handler.AddCartItem(ctx, customerID)
}

func (w *ServerInterfaceWrapper) UpdateCartItemQuantity(ctx echo.Context) error {
	customerID, err := bindPathUUID(ctx, "customerId")
	if err != nil {
		return err
	}
	itemID, err := bindPathUUID(ctx, "itemId")
	if err != nil {
		return err
	}
	return w.Handler.UpdateCartItemQuantity(ctx, customerID, itemID)
}

func (w *ServerInterfaceWrapper) RemoveCartItem(ctx echo.Context) error {
	customerID, err := bindPathUUID(ctx, "customerId")
	if err != nil {
		return err
	}
	itemID, err := bindPathUUID(ctx, "itemId")
	if err != nil {
		return err
	}
	return w.Handler.RemoveCartItem(ctx, customerID, itemID)
}

func (w *ServerInterfaceWrapper) GetCustomerOrders(ctx echo.Context) error {
	customerID, err := bindPathUUID(ctx, "customerId")
	if err != nil {
		return err
	}
	return w.Handler.GetCustomerOrders(ctx, customerID)
}

func (w *ServerInterfaceWrapper) GetAllOrders(ctx echo.Context) error {
	return w.Handler.GetAllOrders(ctx)
}

func (w *ServerInterfaceWrapper) PlaceOrder(ctx echo.Context) error {
	return w.Handler.PlaceOrder(ctx)
}

func (w *ServerInterfaceWrapper) GetOrderDetails(ctx echo.Context) error {
	orderID, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.GetOrderDetails(ctx, orderID)
}

func (w *ServerInterfaceWrapper) AssignAgent(ctx echo.Context) error {
	orderID, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.AssignAgent(ctx, orderID)
}

func (w *ServerInterfaceWrapper) DeliverOrder(ctx echo.Context) error {
	orderID, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.DeliverOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) GetAgents(ctx echo.Context) error {
	return w.Handler.GetAgents(ctx)
}

func (w *ServerInterfaceWrapper) GetAvailableAgents(ctx echo.Context) error {
	return w.Handler.GetAvailableAgents(ctx)
}

func (w *ServerInterfaceWrapper) GetAgent(ctx echo.Context) error {
	agentID, err := bindPathUUID(ctx, "agentId")
	if err != nil {
		return err
	}
	return w.Handler.GetAgent(ctx, agentID)
}

// RegisterHandlers adds every operation of openapi.yaml to router.
func RegisterHandlers(router *echo.Echo, si ServerInterface) {
	w := ServerInterfaceWrapper{Handler: si}

	router.GET("/api/v1/customers/:customerId/cart", w.GetCart)
	router.DELETE("/api/v1/customers/:customerId/cart", w.ClearCart)
	router.POST("/api/v1/customers/:customerId/cart/items", w.AddCartItem)
	router.PATCH("/api/v1/customers/:customerId/cart/items/:itemId", w.UpdateCartItemQuantity)
	router.DELETE("/api/v1/customers/:customerId/cart/items/:itemId", w.RemoveCartItem)
	router.GET("/api/v1/customers/:customerId/orders", w.GetCustomerOrders)
	router.GET("/api/v1/orders", w.GetAllOrders)
	router.POST("/api/v1/orders", w.PlaceOrder)
	router.GET("/api/v1/orders/:orderId", w.GetOrderDetails)
	router.POST("/api/v1/orders/:orderId/assign", w.AssignAgent)
	router.POST("/api/v1/orders/:orderId/deliver", w.DeliverOrder)
	router.GET("/api/v1/agents", w.GetAgents)
	router.GET("/api/v1/agents/available", w.GetAvailableAgents)
	router.GET("/api/v1/agents/:agentId", w.GetAgent)
}
