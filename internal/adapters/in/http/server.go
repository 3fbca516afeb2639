// Package http exposes the shipment API over echo.
// Handlers translate between JSON payloads and application commands/queries;
// all business rules stay in the domain and application layers.
package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/core/domain/model/account"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/core/domain/services"
	"shiptrack/internal/pkg/auth"
)

// Server wires HTTP routes to application use cases.
type Server struct {
	tokenIssuer auth.TokenIssuer

	// Command handlers
	requestPickupHandler commands.RequestPickupCommandHandler
	transitionHandler    commands.TransitionShipmentCommandHandler
	assignAgentHandler   commands.AssignAgentCommandHandler
	registerUserHandler  commands.RegisterUserCommandHandler

	// Query handlers
	authenticateHandler     queries.AuthenticateUserQueryHandler
	ordersByRoleHandler     queries.GetOrdersByRoleQueryHandler
	orderHistoryHandler     queries.GetOrderHistoryQueryHandler
	assignableAgentsHandler queries.GetAssignableAgentsQueryHandler
	trackOrderHandler       queries.TrackOrderQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	tokenIssuer auth.TokenIssuer,
	requestPickupHandler commands.RequestPickupCommandHandler,
	transitionHandler commands.TransitionShipmentCommandHandler,
	assignAgentHandler commands.AssignAgentCommandHandler,
	registerUserHandler commands.RegisterUserCommandHandler,
	authenticateHandler queries.AuthenticateUserQueryHandler,
	ordersByRoleHandler queries.GetOrdersByRoleQueryHandler,
	orderHistoryHandler queries.GetOrderHistoryQueryHandler,
	assignableAgentsHandler queries.GetAssignableAgentsQueryHandler,
	trackOrderHandler queries.TrackOrderQueryHandler,
) *Server {
	return &Server{
		tokenIssuer:             tokenIssuer,
		requestPickupHandler:    requestPickupHandler,
		transitionHandler:       transitionHandler,
		assignAgentHandler:      assignAgentHandler,
		registerUserHandler:     registerUserHandler,
		authenticateHandler:     authenticateHandler,
		ordersByRoleHandler:     ordersByRoleHandler,
		orderHistoryHandler:     orderHistoryHandler,
		assignableAgentsHandler: assignableAgentsHandler,
		trackOrderHandler:       trackOrderHandler,
	}
}

// RegisterRoutes mounts all API routes on the echo instance.
// Tracking and auth routes are public; everything else requires a token.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/auth/login", s.Login)
	api.POST("/auth/register", s.Register)
	api.GET("/shipments/track/:number", s.TrackShipment)

	protected := api.Group("", AuthMiddleware(s.tokenIssuer))
	protected.POST("/users", s.CreateUser)
	protected.POST("/shipments", s.CreateShipment)
	protected.GET("/shipments", s.GetShipments)
	protected.POST("/shipments/:id/status", s.TransitionShipment)
	protected.POST("/shipments/:id/assign", s.AssignAgent)
	protected.GET("/shipments/:id/history", s.GetShipmentHistory)
	protected.GET("/agents", s.GetAgents)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Login handles POST /api/v1/auth/login - verifies credentials and issues a token.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	query, err := queries.NewAuthenticateUserQuery(req.Email, req.Password)
	if err != nil {
		return writeError(ctx, err)
	}

	user, err := s.authenticateHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	token, err := s.tokenIssuer.Issue(user.ID.String(), user.Role)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoginResponse{
		Token: token,
		User: UserResponse{
			ID:    user.ID.String(),
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
	})
}

// Register handles POST /api/v1/auth/register - public self-registration.
// Always creates a customer account; agent and admin accounts go through the
// admin-only POST /api/v1/users route.
func (s *Server) Register(ctx echo.Context) error {
	var req RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	return s.createUser(ctx, req, account.RoleCustomer)
}

// CreateUser handles POST /api/v1/users - admin-only account creation for any role.
func (s *Server) CreateUser(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return badRequest(ctx, "missing actor")
	}
	if !actor.Role().CanAssignAgents() {
		return writeError(ctx, services.NewForbiddenRoleError(actor.Role()))
	}

	var req RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	role, err := account.RoleFromString(req.Role)
	if err != nil {
		return writeError(ctx, err)
	}

	return s.createUser(ctx, req, role)
}

func (s *Server) createUser(ctx echo.Context, req RegisterRequest, role account.Role) error {
	cmd, err := commands.NewRegisterUserCommand(
		kernel.NewUUID(), role, req.Name, req.Email, req.Mobile, req.City, req.Password)
	if err != nil {
		return writeError(ctx, err)
	}

	user, err := s.registerUserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, UserResponse{
		ID:    user.ID().String(),
		Name:  user.Name(),
		Email: user.Email(),
		Role:  user.Role().String(),
	})
}

// CreateShipment handles POST /api/v1/shipments - registers a pickup request
// for the authenticated customer.
func (s *Server) CreateShipment(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return badRequest(ctx, "missing actor")
	}

	var req CreateShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	var pickupDate, expectedDate time.Time
	if req.PickupDate != nil {
		pickupDate = *req.PickupDate
	}
	if req.ExpectedDeliveryDate != nil {
		expectedDate = *req.ExpectedDeliveryDate
	}

	cmd, err := commands.NewRequestPickupCommand(
		kernel.NewUUID(), actor.ID(),
		req.Origin, req.Destination,
		req.PackageType, req.ContentDescription, req.PaymentStatus,
		pickupDate, expectedDate)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.requestPickupHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, shipmentFromDomain(created, time.Now().UTC()))
}

// GetShipments handles GET /api/v1/shipments - lists the shipments visible to
// the authenticated actor.
func (s *Server) GetShipments(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return badRequest(ctx, "missing actor")
	}

	query, err := queries.NewGetOrdersByRoleQuery(actor)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.ordersByRoleHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ShipmentResponse, len(orders))
	for i, o := range orders {
		response[i] = shipmentFromQuery(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// TransitionShipment handles POST /api/v1/shipments/:id/status - moves a
// shipment to a new lifecycle status.
func (s *Server) TransitionShipment(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return badRequest(ctx, "missing actor")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req TransitionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewTransitionShipmentCommand(
		orderID, status, req.Location, req.Remarks, actor)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.transitionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentFromDomain(result.Order, time.Now().UTC()))
}

// AssignAgent handles POST /api/v1/shipments/:id/assign - binds a shipment to
// a delivery agent. Admin only.
func (s *Server) AssignAgent(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return badRequest(ctx, "missing actor")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req AssignAgentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	agentID, err := kernel.UUIDFromString(req.AgentID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAssignAgentCommand(orderID, agentID, actor)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.assignAgentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentFromDomain(updated, time.Now().UTC()))
}

// GetShipmentHistory handles GET /api/v1/shipments/:id/history - returns the
// ledger for one shipment, oldest entry first.
func (s *Server) GetShipmentHistory(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderHistoryQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	entries, err := s.orderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, historyFromQuery(entries))
}

// TrackShipment handles GET /api/v1/shipments/track/:number - public tracking
// by tracking number or AWB number.
func (s *Server) TrackShipment(ctx echo.Context) error {
	query, err := queries.NewTrackOrderQuery(ctx.Param("number"))
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TrackResponse{
		Shipment: shipmentFromQuery(result.Order),
		History:  historyFromQuery(result.History),
	})
}

// GetAgents handles GET /api/v1/agents - lists assignable delivery agents,
// optionally filtered by the city query parameter. Admin only.
func (s *Server) GetAgents(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return badRequest(ctx, "missing actor")
	}

	query, err := queries.NewGetAssignableAgentsQuery(actor, ctx.QueryParam("city"))
	if err != nil {
		return writeError(ctx, err)
	}

	agents, err := s.assignableAgentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]AgentResponse, len(agents))
	for i, agent := range agents {
		response[i] = AgentResponse{
			ID:     agent.ID.String(),
			Name:   agent.Name,
			Email:  agent.Email,
			Mobile: agent.Mobile,
			City:   agent.City,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
