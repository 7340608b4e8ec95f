// Package http exposes the order lifecycle over a REST API. The actor behind
// each request arrives in the X-Actor-Id and X-Actor-Role headers; upstream
// authentication is trusted to have set them truthfully.
package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	placeOrderHandler        commands.PlaceOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	assignDriverHandler      commands.AssignDriverCommandHandler
	acceptAssignmentHandler  commands.AcceptAssignmentCommandHandler
	declineAssignmentHandler commands.DeclineAssignmentCommandHandler
	advanceDeliveryHandler   commands.AdvanceDeliveryCommandHandler
	setDriverOnlineHandler   commands.SetDriverOnlineCommandHandler
	replaceOrderHandler      commands.ReplaceOrderCommandHandler

	getCustomerOrdersHandler   queries.GetCustomerOrdersQueryHandler
	getRestaurantOrdersHandler queries.GetRestaurantOrdersQueryHandler
	getDriverOrdersHandler     queries.GetDriverOrdersQueryHandler
	getAvailableDriversHandler queries.GetAvailableDriversQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	assignDriverHandler commands.AssignDriverCommandHandler,
	acceptAssignmentHandler commands.AcceptAssignmentCommandHandler,
	declineAssignmentHandler commands.DeclineAssignmentCommandHandler,
	advanceDeliveryHandler commands.AdvanceDeliveryCommandHandler,
	setDriverOnlineHandler commands.SetDriverOnlineCommandHandler,
	replaceOrderHandler commands.ReplaceOrderCommandHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	getRestaurantOrdersHandler queries.GetRestaurantOrdersQueryHandler,
	getDriverOrdersHandler queries.GetDriverOrdersQueryHandler,
	getAvailableDriversHandler queries.GetAvailableDriversQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:          placeOrderHandler,
		updateOrderStatusHandler:   updateOrderStatusHandler,
		assignDriverHandler:        assignDriverHandler,
		acceptAssignmentHandler:    acceptAssignmentHandler,
		declineAssignmentHandler:   declineAssignmentHandler,
		advanceDeliveryHandler:     advanceDeliveryHandler,
		setDriverOnlineHandler:     setDriverOnlineHandler,
		replaceOrderHandler:        replaceOrderHandler,
		getCustomerOrdersHandler:   getCustomerOrdersHandler,
		getRestaurantOrdersHandler: getRestaurantOrdersHandler,
		getDriverOrdersHandler:     getDriverOrdersHandler,
		getAvailableDriversHandler: getAvailableDriversHandler,
	}
}

// RegisterRoutes wires the API endpoints onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.PlaceOrder)
	api.POST("/orders/:id/status", s.UpdateOrderStatus)
	api.POST("/orders/:id/accept", s.AcceptOrder)
	api.POST("/orders/:id/reject", s.RejectOrder)
	api.POST("/orders/:id/assign", s.AssignDriver)
	api.POST("/orders/:id/assignment/accept", s.AcceptAssignment)
	api.POST("/orders/:id/assignment/decline", s.DeclineAssignment)
	api.POST("/orders/:id/delivery", s.AdvanceDelivery)
	api.POST("/orders/:id/replace", s.ReplaceOrder)

	api.PUT("/drivers/me/availability", s.SetDriverAvailability)

	api.GET("/customers/me/orders", s.GetCustomerOrders)
	api.GET("/restaurants/me/orders", s.GetRestaurantOrders)
	api.GET("/drivers/me/orders", s.GetDriverOrders)
	api.GET("/drivers/available", s.GetAvailableDrivers)
}

// PlaceOrder handles POST /api/v1/orders - places an order from the
// customer's current cart.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req PlaceOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	restaurantID, err := kernel.UUIDFromString(req.RestaurantID)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(
		orderID,
		actor.ID(),
		restaurantID,
		req.DeliveryAddress,
		req.PaymentMethod,
		req.OfferCode,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PlaceOrderResponse{OrderID: orderID.String()})
}

// UpdateOrderStatus handles POST /api/v1/orders/:id/status - moves an order
// through its lifecycle on behalf of the acting customer or restaurant.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req UpdateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(actor, orderID, req.Status, req.Note)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AcceptOrder handles POST /api/v1/orders/:id/accept - the restaurant
// confirms a placed order.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	return s.resolveRestaurantDecision(ctx, "confirmed", "")
}

// RejectOrder handles POST /api/v1/orders/:id/reject - the restaurant turns
// a placed order down, cancelling it with the stated reason.
func (s *Server) RejectOrder(ctx echo.Context) error {
	var req RejectOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	note := "Rejected by restaurant"
	if req.Reason != "" {
		note = "Rejected by restaurant: " + req.Reason
	}

	return s.resolveRestaurantDecision(ctx, "cancelled", note)
}

func (s *Server) resolveRestaurantDecision(ctx echo.Context, status, note string) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	if actor.Role() != kernel.RoleRestaurant {
		return writeError(ctx, commands.ErrActorNotAllowed)
	}

	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(actor, orderID, status, note)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignDriver handles POST /api/v1/orders/:id/assign - offers the order to
// a driver, picked automatically when the body names none.
func (s *Server) AssignDriver(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req AssignDriverRequest
	if err = ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	var driverID *kernel.UUID
	if req.DriverID != "" {
		id, idErr := kernel.UUIDFromString(req.DriverID)
		if idErr != nil {
			return writeError(ctx, idErr)
		}
		driverID = &id
	}

	cmd, err := commands.NewAssignDriverCommand(actor, orderID, driverID, req.Note)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.assignDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AcceptAssignment handles POST /api/v1/orders/:id/assignment/accept - the
// offered driver takes the delivery.
func (s *Server) AcceptAssignment(ctx echo.Context) error {
	driverID, orderID, err := driverAndOrder(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAcceptAssignmentCommand(driverID, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.acceptAssignmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeclineAssignment handles POST /api/v1/orders/:id/assignment/decline - the
// offered driver turns the delivery down and the order is reoffered or
// returned to the unassigned pool.
func (s *Server) DeclineAssignment(ctx echo.Context) error {
	driverID, orderID, err := driverAndOrder(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeclineAssignmentCommand(driverID, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.declineAssignmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceDelivery handles POST /api/v1/orders/:id/delivery - the accepted
// driver moves the order to out_for_delivery or delivered.
func (s *Server) AdvanceDelivery(ctx echo.Context) error {
	driverID, orderID, err := driverAndOrder(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req UpdateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewAdvanceDeliveryCommand(driverID, orderID, req.Status, req.Note)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.advanceDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReplaceOrder handles POST /api/v1/orders/:id/replace - support issues a
// fresh replacement order cloned from the one in the path.
func (s *Server) ReplaceOrder(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	originalOrderID, err := orderIDFromPath(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req ReplaceOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	newOrderID := kernel.NewUUID()
	cmd, err := commands.NewReplaceOrderCommand(actor, newOrderID, originalOrderID, req.SupportNote)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.replaceOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PlaceOrderResponse{OrderID: newOrderID.String()})
}

// SetDriverAvailability handles PUT /api/v1/drivers/me/availability - the
// acting driver toggles online or offline.
func (s *Server) SetDriverAvailability(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req AvailabilityRequest
	if err = ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewSetDriverOnlineCommand(actor.ID(), req.Online)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.setDriverOnlineHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCustomerOrders handles GET /api/v1/customers/me/orders.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetCustomerOrdersQuery(actor.ID())
	if err != nil {
		return writeError(ctx, err)
	}

	summaries, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderSummaryResponses(summaries))
}

// GetRestaurantOrders handles GET /api/v1/restaurants/me/orders with an
// optional ?status= filter.
func (s *Server) GetRestaurantOrders(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetRestaurantOrdersQuery(actor.ID(), ctx.QueryParam("status"))
	if err != nil {
		return writeError(ctx, err)
	}

	summaries, err := s.getRestaurantOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderSummaryResponses(summaries))
}

// GetDriverOrders handles GET /api/v1/drivers/me/orders - the acting
// driver's open deliveries.
func (s *Server) GetDriverOrders(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetDriverOrdersQuery(actor.ID())
	if err != nil {
		return writeError(ctx, err)
	}

	summaries, err := s.getDriverOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderSummaryResponses(summaries))
}

// GetAvailableDrivers handles GET /api/v1/drivers/available.
func (s *Server) GetAvailableDrivers(ctx echo.Context) error {
	summaries, err := s.getAvailableDriversHandler.Handle(
		ctx.Request().Context(), queries.NewGetAvailableDriversQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]DriverSummaryResponse, len(summaries))
	for i, summary := range summaries {
		response[i] = DriverSummaryResponse{
			ID:           summary.ID.String(),
			Name:         summary.Name,
			RegisteredAt: summary.RegisteredAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// actorFromHeaders resolves the acting identity from the request headers.
func actorFromHeaders(ctx echo.Context) (kernel.Actor, error) {
	id, err := kernel.UUIDFromString(ctx.Request().Header.Get("X-Actor-Id"))
	if err != nil {
		return kernel.Actor{}, err
	}

	role, err := kernel.RoleFromString(ctx.Request().Header.Get("X-Actor-Role"))
	if err != nil {
		return kernel.Actor{}, err
	}

	return kernel.NewActor(id, role)
}

// orderIDFromPath parses the :id path parameter.
func orderIDFromPath(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

// driverAndOrder resolves the acting driver and the order in the path for
// driver-facing endpoints.
func driverAndOrder(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	if actor.Role() != kernel.RoleDriver {
		return kernel.UUID{}, kernel.UUID{}, commands.ErrActorNotAllowed
	}

	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	return actor.ID(), orderID, nil
}

func toOrderSummaryResponses(summaries []queries.OrderSummary) []OrderSummaryResponse {
	response := make([]OrderSummaryResponse, len(summaries))
	for i, summary := range summaries {
		item := OrderSummaryResponse{
			ID:            summary.ID.String(),
			Status:        summary.Status,
			Total:         summary.Total,
			PaymentMethod: summary.PaymentMethod,
			PaymentStatus: summary.PaymentStatus,
			CreatedAt:     summary.CreatedAt,
		}
		if summary.DriverID != nil {
			driverID := summary.DriverID.String()
			item.DriverID = &driverID
		}
		response[i] = item
	}
	return response
}
