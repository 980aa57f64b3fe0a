// Package http exposes the warehouse fulfillment use cases over HTTP.
// It coordinates between echo handlers and application use cases; no business
// rules live here.
package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the HTTP boundary for handling warehouse requests.
type Server struct {
	// Command handlers
	acceptRequestHandler          commands.AcceptRequestCommandHandler
	markShippedHandler            commands.MarkShippedCommandHandler
	assignDeliveryEmployeeHandler commands.AssignDeliveryEmployeeCommandHandler
	markDeliveredHandler          commands.MarkDeliveredCommandHandler

	// Query handlers
	getWarehouseQueuesHandler   *queries.GetWarehouseQueuesQueryHandler
	getDeliveryEmployeesHandler queries.GetDeliveryEmployeesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	acceptRequestHandler commands.AcceptRequestCommandHandler,
	markShippedHandler commands.MarkShippedCommandHandler,
	assignDeliveryEmployeeHandler commands.AssignDeliveryEmployeeCommandHandler,
	markDeliveredHandler commands.MarkDeliveredCommandHandler,
	getWarehouseQueuesHandler *queries.GetWarehouseQueuesQueryHandler,
	getDeliveryEmployeesHandler queries.GetDeliveryEmployeesQueryHandler,
) *Server {
	return &Server{
		acceptRequestHandler:          acceptRequestHandler,
		markShippedHandler:            markShippedHandler,
		assignDeliveryEmployeeHandler: assignDeliveryEmployeeHandler,
		markDeliveredHandler:          markDeliveredHandler,
		getWarehouseQueuesHandler:     getWarehouseQueuesHandler,
		getDeliveryEmployeesHandler:   getDeliveryEmployeesHandler,
	}
}

// RegisterRoutes attaches all endpoints to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/warehouses/:warehouseId/queues", s.GetWarehouseQueues)
	api.GET("/delivery-employees", s.GetDeliveryEmployees)

	api.POST("/orders/:orderId/accept-request", s.AcceptRequest)
	api.POST("/orders/:orderId/mark-shipped", s.MarkShipped)
	api.POST("/orders/:orderId/assign-delivery-employee", s.AssignDeliveryEmployee)
	api.POST("/orders/:orderId/mark-delivered", s.MarkDelivered)
}

// GetWarehouseQueues handles GET /api/v1/warehouses/:warehouseId/queues.
// Returns the four classified work queues for the warehouse identity.
func (s *Server) GetWarehouseQueues(ctx echo.Context) error {
	warehouseID, err := kernel.UUIDFromString(ctx.Param("warehouseId"))
	if err != nil {
		return badRequest(ctx, "Invalid warehouse id")
	}

	query, err := queries.NewGetWarehouseQueuesQuery(warehouseID)
	if err != nil {
		return badRequest(ctx, "Invalid warehouse id: "+err.Error())
	}

	queues, err := s.getWarehouseQueuesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromQueues(queues))
}

// GetDeliveryEmployees handles GET /api/v1/delivery-employees.
// Returns the full roster for assignment screens.
func (s *Server) GetDeliveryEmployees(ctx echo.Context) error {
	query := queries.NewGetDeliveryEmployeesQuery()

	employees, err := s.getDeliveryEmployeesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromEmployees(employees))
}

// AcceptRequest handles POST /api/v1/orders/:orderId/accept-request.
// Marks a cross-warehouse request as accepted. Idempotent: repeating the call
// on an already accepted request succeeds.
func (s *Server) AcceptRequest(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body AcceptRequestRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	allocationID, err := kernel.UUIDFromString(body.AllocationID)
	if err != nil {
		return badRequest(ctx, "Invalid allocation id")
	}

	cmd, err := commands.NewAcceptRequestCommand(orderID, allocationID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.acceptRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkShipped handles POST /api/v1/orders/:orderId/mark-shipped.
func (s *Server) MarkShipped(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body MarkShippedRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	warehouseID, err := kernel.UUIDFromString(body.WarehouseID)
	if err != nil {
		return badRequest(ctx, "Invalid warehouse id")
	}

	cmd, err := commands.NewMarkShippedCommand(orderID, warehouseID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.markShippedHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignDeliveryEmployee handles POST /api/v1/orders/:orderId/assign-delivery-employee.
// Reassignment before delivery completion overwrites the previous employee.
func (s *Server) AssignDeliveryEmployee(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body AssignDeliveryEmployeeRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	employeeID, err := kernel.UUIDFromString(body.EmployeeID)
	if err != nil {
		return badRequest(ctx, "Invalid employee id")
	}

	cmd, err := commands.NewAssignDeliveryEmployeeCommand(orderID, employeeID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.assignDeliveryEmployeeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkDelivered handles POST /api/v1/orders/:orderId/mark-delivered.
func (s *Server) MarkDelivered(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body MarkDeliveredRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	warehouseID, err := kernel.UUIDFromString(body.WarehouseID)
	if err != nil {
		return badRequest(ctx, "Invalid warehouse id")
	}

	cmd, err := commands.NewMarkDeliveredCommand(orderID, warehouseID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.markDeliveredHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps the typed error family onto HTTP status codes:
// NotFound → 404, InvalidTransition → 409, PreconditionFailed → 422,
// validation failures → 400, everything else → 500.
func domainError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrPreconditionFailed):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
