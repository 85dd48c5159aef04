package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

var _ ServerInterface = (*Server)(nil)

// Commands are the write use cases exposed over HTTP.
type Commands struct {
	AddCartItem            commands.AddCartItemCommandHandler
	UpdateCartItemQuantity commands.UpdateCartItemQuantityCommandHandler
	ClearCart              commands.ClearCartCommandHandler
	PlaceOrder             commands.PlaceOrderCommandHandler
	AssignAgent            commands.AssignAgentCommandHandler
	DeliverOrder           commands.DeliverOrderCommandHandler
}

// Queries are the read use cases exposed over HTTP.
type Queries struct {
	GetCart                   queries.GetCartQueryHandler
	GetCustomerOrders         queries.GetCustomerOrdersQueryHandler
	GetAllOrders              queries.GetAllOrdersQueryHandler
	GetOrderDetails           queries.GetOrderDetailsQueryHandler
	GetAvailableAgents        queries.GetAvailableAgentsQueryHandler
	GetAgentDetails           queries.GetAgentDetailsQueryHandler
	GetAgentsWithOrderHistory queries.GetAgentsWithOrderHistoryQueryHandler
}

// Server implements ServerInterface on top of the application use cases.
// Writes answer with the matching read model, so every response of one
// resource has the same shape.
type Server struct {
	commands Commands
	queries  Queries
	logger   *zap.Logger
}

func NewServer(cmds Commands, qs Queries, logger *zap.Logger) *Server {
	return &Server{
		commands: cmds,
		queries:  qs,
		logger:   logger.Named("http"),
	}
}

// GetCart handles GET /api/v1/customers/{customerId}/cart.
func (s *Server) GetCart(ctx echo.Context, customerID uuid.UUID) error {
	id, err := toKernelID("customerId", customerID)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondCart(ctx, id)
}

// ClearCart handles DELETE /api/v1/customers/{customerId}/cart.
func (s *Server) ClearCart(ctx echo.Context, customerID uuid.UUID) error {
	id, err := toKernelID("customerId", customerID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewClearCartCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.commands.ClearCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AddCartItem handles POST /api/v1/customers/{customerId}/cart/items.
func (s *Server) AddCartItem(ctx echo.Context, customerID uuid.UUID) error {
	var body AddCartItemRequest
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "Invalid request body"})
	}

	custID, err := toKernelID("customerId", customerID)
	if err != nil {
		return s.fail(ctx, err)
	}
	restaurantID, err := toKernelID("restaurantId", body.RestaurantID)
	if err != nil {
		return s.fail(ctx, err)
	}
	menuItemID, err := toKernelID("menuItemId", body.MenuItemID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAddCartItemCommand(custID, restaurantID, menuItemID, body.Quantity)
	if err != nil {
		return s.fail(ctx, err)
	}
	if _, err := s.commands.AddCartItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondCart(ctx, custID)
}

// UpdateCartItemQuantity handles PATCH /api/v1/customers/{customerId}/cart/items/{itemId}.
func (s *Server) UpdateCartItemQuantity(ctx echo.Context, customerID, itemID uuid.UUID) error {
	var body UpdateCartItemRequest
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "Invalid request body"})
	}

	custID, item, err := cartItemIDs(customerID, itemID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateCartItemQuantityCommand(custID, item, body.Delta)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.changeQuantity(ctx, cmd)
}

// RemoveCartItem handles DELETE /api/v1/customers/{customerId}/cart/items/{itemId}.
func (s *Server) RemoveCartItem(ctx echo.Context, customerID, itemID uuid.UUID) error {
	custID, item, err := cartItemIDs(customerID, itemID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRemoveCartItemCommand(custID, item)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.changeQuantity(ctx, cmd)
}

func (s *Server) changeQuantity(ctx echo.Context, cmd commands.UpdateCartItemQuantityCommand) error {
	res, err := s.commands.UpdateCartItemQuantity.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	if res.CartRemoved {
		return ctx.NoContent(http.StatusNoContent)
	}
	return s.respondCart(ctx, cmd.CustomerID())
}

func (s *Server) respondCart(ctx echo.Context, customerID kernel.UUID) error {
	query, err := queries.NewGetCartQuery(customerID)
	if err != nil {
		return s.fail(ctx, err)
	}
	c, err := s.queries.GetCart.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, cartFromView(c))
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var body PlaceOrderRequest
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "Invalid request body"})
	}

	customerID, err := toKernelID("customerId", body.CustomerID)
	if err != nil {
		return s.fail(ctx, err)
	}
	total, err := kernel.MoneyFromFloat(body.TotalAmount)
	if err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("totalAmount", err))
	}

	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), customerID, commands.PlaceOrderDetails{
		TotalAmount:     total,
		DeliveryAddress: body.DeliveryAddress,
		PaymentMethod:   body.PaymentMethod,
		Payment: order.PaymentReference{
			GatewayOrderID:   body.GatewayOrderID,
			GatewayPaymentID: body.GatewayPaymentID,
			GatewaySignature: body.GatewaySignature,
		},
	})
	if err != nil {
		return s.fail(ctx, err)
	}

	placed, err := s.commands.PlaceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	details, err := s.orderDetails(ctx, placed.ID())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, details)
}

// GetAllOrders handles GET /api/v1/orders.
func (s *Server) GetAllOrders(ctx echo.Context) error {
	orders, err := s.queries.GetAllOrders.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, ordersFromSummaries(orders))
}

// GetCustomerOrders handles GET /api/v1/customers/{customerId}/orders.
func (s *Server) GetCustomerOrders(ctx echo.Context, customerID uuid.UUID) error {
	id, err := toKernelID("customerId", customerID)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetCustomerOrdersQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	orders, err := s.queries.GetCustomerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, ordersFromSummaries(orders))
}

// GetOrderDetails handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrderDetails(ctx echo.Context, orderID uuid.UUID) error {
	id, err := toKernelID("orderId", orderID)
	if err != nil {
		return s.fail(ctx, err)
	}
	details, err := s.orderDetails(ctx, id)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, details)
}

func (s *Server) orderDetails(ctx echo.Context, orderID kernel.UUID) (Order, error) {
	query, err := queries.NewGetOrderDetailsQuery(orderID)
	if err != nil {
		return Order{}, err
	}
	details, err := s.queries.GetOrderDetails.Handle(ctx.Request().Context(), query)
	if err != nil {
		return Order{}, err
	}
	return orderFromDetails(details), nil
}

// AssignAgent handles POST /api/v1/orders/{orderId}/assign.
func (s *Server) AssignAgent(ctx echo.Context, orderID uuid.UUID) error {
	var body AssignAgentRequest
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "Invalid request body"})
	}

	oID, err := toKernelID("orderId", orderID)
	if err != nil {
		return s.fail(ctx, err)
	}
	aID, err := toKernelID("agentId", body.AgentID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAssignAgentCommand(oID, aID)
	if err != nil {
		return s.fail(ctx, err)
	}
	if _, err := s.commands.AssignAgent.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	details, err := s.orderDetails(ctx, oID)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, details)
}

// DeliverOrder handles POST /api/v1/orders/{orderId}/deliver. The agent in
// the body is optional and only cross-checked against the order's agent.
func (s *Server) DeliverOrder(ctx echo.Context, orderID uuid.UUID) error {
	var body DeliverOrderRequest
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "Invalid request body"})
	}

	oID, err := toKernelID("orderId", orderID)
	if err != nil {
		return s.fail(ctx, err)
	}
	var agentID *kernel.UUID
	if body.AgentID != nil {
		id, err := toKernelID("agentId", *body.AgentID)
		if err != nil {
			return s.fail(ctx, err)
		}
		agentID = &id
	}

	cmd, err := commands.NewDeliverOrderCommand(oID, agentID)
	if err != nil {
		return s.fail(ctx, err)
	}
	res, err := s.commands.DeliverOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	details, err := s.orderDetails(ctx, oID)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, Delivery{Order: details, Commission: res.Commission.Float64()})
}

// GetAgents handles GET /api/v1/agents.
func (s *Server) GetAgents(ctx echo.Context) error {
	agents, err := s.queries.GetAgentsWithOrderHistory.Handle(
		ctx.Request().Context(), queries.NewGetAgentsWithOrderHistoryQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]Agent, len(agents))
	for i, a := range agents {
		dto := agentFromView(a.AgentView)
		dto.CurrentOrderID = optionalID(a.CurrentOrderID)
		dto.OrderIDs = make([]uuid.UUID, len(a.OrderIDs))
		for j, id := range a.OrderIDs {
			dto.OrderIDs[j] = id.Bytes()
		}
		response[i] = dto
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetAvailableAgents handles GET /api/v1/agents/available.
func (s *Server) GetAvailableAgents(ctx echo.Context) error {
	agents, err := s.queries.GetAvailableAgents.Handle(ctx.Request().Context(), queries.NewGetAvailableAgentsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]Agent, len(agents))
	for i, a := range agents {
		response[i] = agentFromView(a)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetAgent handles GET /api/v1/agents/{agentId}.
func (s *Server) GetAgent(ctx echo.Context, agentID uuid.UUID) error {
	id, err := toKernelID("agentId", agentID)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetAgentDetailsQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	a, err := s.queries.GetAgentDetails.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	dto := agentFromView(a.AgentView)
	dto.CurrentOrderID = optionalID(a.CurrentOrderID)
	return ctx.JSON(http.StatusOK, dto)
}

func toKernelID(name string, id uuid.UUID) (kernel.UUID, error) {
	kid, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return kid, nil
}

func cartItemIDs(customerID, itemID uuid.UUID) (kernel.UUID, kernel.UUID, error) {
	custID, err := toKernelID("customerId", customerID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	item, err := toKernelID("itemId", itemID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	return custID, item, nil
}

func optionalID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func cartFromView(c queries.GetCartQueryResponse) Cart {
	items := make([]CartItem, len(c.Items))
	for i, line := range c.Items {
		items[i] = CartItem{
			ID:         line.ID.Bytes(),
			MenuItemID: line.MenuItemID.Bytes(),
			Name:       line.Name,
			UnitPrice:  line.UnitPrice.Float64(),
			ImageURL:   line.ImageURL,
			Quantity:   line.Quantity,
			LineTotal:  line.LineTotal.Float64(),
		}
	}
	return Cart{
		ID:             c.ID.Bytes(),
		CustomerID:     c.CustomerID.Bytes(),
		RestaurantID:   c.RestaurantID.Bytes(),
		RestaurantName: c.RestaurantName,
		Items:          items,
		ItemCount:      c.ItemCount,
		TotalAmount:    c.TotalAmount.Float64(),
	}
}

func orderFromSummary(o queries.OrderSummary) Order {
	return Order{
		ID:                o.ID.Bytes(),
		CustomerID:        o.CustomerID.Bytes(),
		RestaurantID:      o.RestaurantID.Bytes(),
		RestaurantName:    o.RestaurantName,
		AgentID:           optionalID(o.AgentID),
		AgentName:         o.AgentName,
		Status:            o.Status,
		TotalAmount:       o.TotalAmount.Float64(),
		DeliveryAddress:   o.DeliveryAddress,
		PaymentMethod:     o.PaymentMethod,
		PaymentStatus:     o.PaymentStatus,
		OrderDate:         o.OrderDate,
		EstimatedDelivery: o.EstimatedDelivery,
		DeliveredAt:       o.DeliveredAt,
	}
}

func ordersFromSummaries(orders []queries.OrderSummary) []Order {
	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = orderFromSummary(o)
	}
	return response
}

func orderFromDetails(d queries.GetOrderDetailsQueryResponse) Order {
	dto := orderFromSummary(d.OrderSummary)
	dto.Items = make([]OrderItem, len(d.Items))
	for i, item := range d.Items {
		dto.Items[i] = OrderItem{
			ID:         item.ID.Bytes(),
			MenuItemID: item.MenuItemID.Bytes(),
			Name:       item.Name,
			Price:      item.Price.Float64(),
			Quantity:   item.Quantity,
			ImageURL:   item.ImageURL,
		}
	}
	return dto
}

func agentFromView(a queries.AgentView) Agent {
	return Agent{
		ID:              a.ID.Bytes(),
		Code:            a.Code,
		Name:            a.Name,
		Phone:           a.Phone,
		Email:           a.Email,
		Status:          a.Status,
		TotalDeliveries: a.TotalDeliveries,
		TotalEarnings:   a.TotalEarnings.Float64(),
		TodaysEarning:   a.TodaysEarning.Float64(),
		Rating:          a.Rating,
	}
}
