// Package http exposes the application's use cases over a JSON API.
// The acting user arrives as a trusted X-User-ID header; authentication
// itself happens upstream.
package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// ActorHeader carries the authenticated user's id, set by the upstream
// gateway.
const ActorHeader = "X-User-ID"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrganization  commands.CreateOrganizationCommandHandler
	requestDelivery     commands.RequestDeliveryCommandHandler
	reviewRequest       commands.ReviewRequestCommandHandler
	assignWorker        commands.AssignWorkerCommandHandler
	advanceStatus       commands.AdvanceStatusCommandHandler
	inviteWorker        commands.InviteWorkerCommandHandler
	applyToOrganization commands.ApplyToOrganizationCommandHandler
	respondHiring       commands.RespondHiringCommandHandler

	merchantAssignments     queries.GetMerchantAssignmentsQueryHandler
	organizationAssignments queries.GetOrganizationAssignmentsQueryHandler
	workerAssignments       queries.GetWorkerAssignmentsQueryHandler
	workerPayments          queries.GetWorkerPaymentsQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	createOrganization commands.CreateOrganizationCommandHandler,
	requestDelivery commands.RequestDeliveryCommandHandler,
	reviewRequest commands.ReviewRequestCommandHandler,
	assignWorker commands.AssignWorkerCommandHandler,
	advanceStatus commands.AdvanceStatusCommandHandler,
	inviteWorker commands.InviteWorkerCommandHandler,
	applyToOrganization commands.ApplyToOrganizationCommandHandler,
	respondHiring commands.RespondHiringCommandHandler,
	merchantAssignments queries.GetMerchantAssignmentsQueryHandler,
	organizationAssignments queries.GetOrganizationAssignmentsQueryHandler,
	workerAssignments queries.GetWorkerAssignmentsQueryHandler,
	workerPayments queries.GetWorkerPaymentsQueryHandler,
) *Server {
	return &Server{
		createOrganization:      createOrganization,
		requestDelivery:         requestDelivery,
		reviewRequest:           reviewRequest,
		assignWorker:            assignWorker,
		advanceStatus:           advanceStatus,
		inviteWorker:            inviteWorker,
		applyToOrganization:     applyToOrganization,
		respondHiring:           respondHiring,
		merchantAssignments:     merchantAssignments,
		organizationAssignments: organizationAssignments,
		workerAssignments:       workerAssignments,
		workerPayments:          workerPayments,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.POST("/organizations", s.CreateOrganization)
	api.POST("/organizations/:id/invitations", s.InviteWorker)
	api.POST("/organizations/:id/applications", s.ApplyToOrganization)
	api.GET("/organizations/:id/deliveries", s.GetOrganizationDeliveries)
	api.PATCH("/hiring-requests/:id", s.RespondHiring)

	api.POST("/deliveries", s.RequestDelivery)
	api.PATCH("/deliveries/:id/review", s.ReviewRequest)
	api.POST("/deliveries/:id/worker", s.AssignWorker)
	api.PATCH("/deliveries/:id/status", s.AdvanceStatus)

	api.GET("/merchants/me/deliveries", s.GetMerchantDeliveries)
	api.GET("/workers/me/deliveries", s.GetWorkerDeliveries)
	api.GET("/workers/me/payments", s.GetWorkerPayments)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateOrganization handles POST /api/v1/organizations.
func (s *Server) CreateOrganization(ctx echo.Context) error {
	actorID, err := actor(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body struct {
		Name  string `json:"name"`
		About string `json:"about"`
		Depot struct {
			X int `json:"x"`
			Y int `json:"y"`
		} `json:"depot"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	depot, err := kernel.NewLocation(kernel.Coordinate(body.Depot.X), kernel.Coordinate(body.Depot.Y))
	if err != nil {
		return badRequest(ctx, err)
	}

	organizationID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrganizationCommand(organizationID, actorID, body.Name, body.About, depot)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.createOrganization.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, idResponse{ID: organizationID.String()})
}

// RequestDelivery handles POST /api/v1/deliveries.
func (s *Server) RequestDelivery(ctx echo.Context) error {
	actorID, err := actor(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body struct {
		OrderID        string          `json:"order_id"`
		OrganizationID string          `json:"organization_id"`
		Fee            decimal.Decimal `json:"fee"`
		Instructions   string          `json:"instructions"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	orderID, err := kernel.UUIDFromString(body.OrderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	organizationID, err := kernel.UUIDFromString(body.OrganizationID)
	if err != nil {
		return badRequest(ctx, err)
	}

	assignmentID := kernel.NewUUID()
	cmd, err := commands.NewRequestDeliveryCommand(assignmentID, orderID, organizationID,
		actorID, body.Fee, body.Instructions)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.requestDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, idResponse{ID: assignmentID.String()})
}

// ReviewRequest handles PATCH /api/v1/deliveries/:id/review.
func (s *Server) ReviewRequest(ctx echo.Context) error {
	actorID, err := actor(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	assignmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var body struct {
		Accept bool `json:"accept"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	cmd, err := commands.NewReviewRequestCommand(assignmentID, actorID, body.Accept)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.reviewRequest.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignWorker handles POST /api/v1/deliveries/:id/worker.
func (s *Server) AssignWorker(ctx echo.Context) error {
	actorID, err := actor(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	assignmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var body struct {
		WorkerID string `json:"worker_id"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	workerID, err := kernel.UUIDFromString(body.WorkerID)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAssignWorkerCommand(assignmentID, workerID, actorID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.assignWorker.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceStatus handles PATCH /api/v1/deliveries/:id/status.
func (s *Server) AdvanceStatus(ctx echo.Context) error {
	actorID, err := actor(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	assignmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var body struct {
		Status string `json:"status"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	var next assignment.Status
	switch body.Status {
	case "in_transit":
		next = assignment.InTransit
	case "completed":
		next = assignment.Completed
	default:
		return badRequest(ctx, errors.New("status must be in_transit or completed"))
	}

	cmd, err := commands.NewAdvanceStatusCommand(assignmentID, actorID, next)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.advanceStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// InviteWorker handles POST /api/v1/organizations/:id/invitations.
func (s *Server) InviteWorker(ctx echo.Context) error {
	actorID, err := actor(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	organizationID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var body struct {
		UserID  string `json:"user_id"`
		Message string `json:"message"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	userID, err := kernel.UUIDFromString(body.UserID)
	if err != nil {
		return badRequest(ctx, err)
	}

	requestID := kernel.NewUUID()
	cmd, err := commands.NewInviteWorkerCommand(requestID, organizationID, userID, actorID, body.Message)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.inviteWorker.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, idResponse{ID: requestID.String()})
}

// ApplyToOrganization handles POST /api/v1/organizations/:id/applications.
func (s *Server) ApplyToOrganization(ctx echo.Context) error {
	actorID, err := actor(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	organizationID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var body struct {
		Message string `json:"message"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	requestID := kernel.NewUUID()
	cmd, err := commands.NewApplyToOrganizationCommand(requestID, organizationID, actorID, body.Message)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.applyToOrganization.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, idResponse{ID: requestID.String()})
}

// RespondHiring handles PATCH /api/v1/hiring-requests/:id.
func (s *Server) RespondHiring(ctx echo.Context) error {
	actorID, err := actor(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	requestID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var body struct {
		Accept bool `json:"accept"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	cmd, err := commands.NewRespondHiringCommand(requestID, actorID, body.Accept)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.respondHiring.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetMerchantDeliveries handles GET /api/v1/merchants/me/deliveries.
func (s *Server) GetMerchantDeliveries(ctx echo.Context) error {
	actorID, err := actor(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetMerchantAssignmentsQuery(actorID)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.merchantAssignments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]merchantDelivery, len(result))
	for i, r := range result {
		response[i] = merchantDelivery{
			ID:             r.ID.String(),
			OrderID:        r.OrderID.String(),
			OrganizationID: r.OrganizationID.String(),
			Status:         r.Status.String(),
			Fee:            r.Fee,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrganizationDeliveries handles GET /api/v1/organizations/:id/deliveries.
func (s *Server) GetOrganizationDeliveries(ctx echo.Context) error {
	actorID, err := actor(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	organizationID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	filter := queries.AssignmentFilter(ctx.QueryParam("filter"))
	if filter == "" {
		filter = queries.FilterAll
	}

	query, err := queries.NewGetOrganizationAssignmentsQuery(organizationID, actorID, filter)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.organizationAssignments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]organizationDelivery, len(result))
	for i, r := range result {
		var workerID *string
		if r.WorkerID != nil {
			id := r.WorkerID.String()
			workerID = &id
		}

		response[i] = organizationDelivery{
			ID:           r.ID.String(),
			OrderID:      r.OrderID.String(),
			WorkerID:     workerID,
			Status:       r.Status.String(),
			Fee:          r.Fee,
			Dropoff:      location{X: int(r.Dropoff.X()), Y: int(r.Dropoff.Y())},
			Instructions: r.Instructions,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetWorkerDeliveries handles GET /api/v1/workers/me/deliveries.
func (s *Server) GetWorkerDeliveries(ctx echo.Context) error {
	actorID, err := actor(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	status := assignment.StatusUnknown
	switch ctx.QueryParam("status") {
	case "":
	case "assigned":
		status = assignment.Assigned
	case "in_transit":
		status = assignment.InTransit
	case "completed":
		status = assignment.Completed
	default:
		return badRequest(ctx, errors.New("unknown status filter"))
	}

	query, err := queries.NewGetWorkerAssignmentsQuery(actorID, status)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.workerAssignments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]workerDelivery, len(result))
	for i, r := range result {
		response[i] = workerDelivery{
			ID:      r.ID.String(),
			OrderID: r.OrderID.String(),
			Status:  r.Status.String(),
			Address: address{
				Street:     r.Address.Street(),
				City:       r.Address.City(),
				PostalCode: r.Address.PostalCode(),
			},
			Dropoff:      location{X: int(r.Dropoff.X()), Y: int(r.Dropoff.Y())},
			Instructions: r.Instructions,
			AssignedAt:   r.AssignedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetWorkerPayments handles GET /api/v1/workers/me/payments.
func (s *Server) GetWorkerPayments(ctx echo.Context) error {
	actorID, err := actor(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetWorkerPaymentsQuery(actorID)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.workerPayments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]workerPayment, len(result))
	for i, r := range result {
		response[i] = workerPayment{
			ID:            r.ID.String(),
			AssignmentID:  r.AssignmentID.String(),
			Amount:        r.Amount,
			Base:          r.Base,
			DistanceBonus: r.DistanceBonus,
			WeightBonus:   r.WeightBonus,
			Status:        r.Status.String(),
			CreatedAt:     r.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func actor(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(ActorHeader)
	if raw == "" {
		return kernel.UUID{}, errors.New("missing " + ActorHeader + " header")
	}

	return kernel.UUIDFromString(raw)
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

// domainError translates the error taxonomy into HTTP status codes.
func domainError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrInvalidState):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrForbidden):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, errorResponse{
		Code:    code,
		Message: err.Error(),
	})
}
