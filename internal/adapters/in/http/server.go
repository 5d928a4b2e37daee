// Package http exposes the synchronization workflow over a REST API.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"routesync/internal/core/application/facade"
	"routesync/internal/core/application/usecases/commands"
	"routesync/internal/core/application/usecases/queries"
	"routesync/internal/core/domain/model/shift"
	"routesync/internal/core/ports"
	"routesync/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers, the synchronization facade and
// the application use cases.
type Server struct {
	routeSyncFacade facade.RouteSyncFacade

	// Command handlers
	assignRouteHandler       commands.AssignRouteToDriverCommandHandler
	syncRouteHandler         commands.SyncRouteWithSchedulingCommandHandler
	confirmAssignmentHandler commands.ConfirmAssignmentCommandHandler
	unassignShiftHandler     commands.UnassignShiftCommandHandler
	purgeStaleShiftsHandler  commands.PurgeStaleShiftsCommandHandler

	// Query handlers
	getPendingShiftsHandler queries.GetPendingShiftsQueryHandler
	getRouteRecordsHandler  queries.GetRouteRecordsQueryHandler
	getRouteRecordHandler   queries.GetRouteRecordQueryHandler
}

// NewServer creates a new HTTP server with the required facade, command and
// query handlers.
func NewServer(
	routeSyncFacade facade.RouteSyncFacade,
	assignRouteHandler commands.AssignRouteToDriverCommandHandler,
	syncRouteHandler commands.SyncRouteWithSchedulingCommandHandler,
	confirmAssignmentHandler commands.ConfirmAssignmentCommandHandler,
	unassignShiftHandler commands.UnassignShiftCommandHandler,
	purgeStaleShiftsHandler commands.PurgeStaleShiftsCommandHandler,
	getPendingShiftsHandler queries.GetPendingShiftsQueryHandler,
	getRouteRecordsHandler queries.GetRouteRecordsQueryHandler,
	getRouteRecordHandler queries.GetRouteRecordQueryHandler,
) *Server {
	return &Server{
		routeSyncFacade:          routeSyncFacade,
		assignRouteHandler:       assignRouteHandler,
		syncRouteHandler:         syncRouteHandler,
		confirmAssignmentHandler: confirmAssignmentHandler,
		unassignShiftHandler:     unassignShiftHandler,
		purgeStaleShiftsHandler:  purgeStaleShiftsHandler,
		getPendingShiftsHandler:  getPendingShiftsHandler,
		getRouteRecordsHandler:   getRouteRecordsHandler,
		getRouteRecordHandler:    getRouteRecordHandler,
	}
}

// RegisterRoutes binds all endpoints on the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	e.POST("/api/routes/sync", s.SynchronizeRoute)
	e.POST("/api/routes/assign", s.AssignRoute)
	e.GET("/api/route-requests", s.GetRouteRecords)
	e.GET("/api/route-requests/:id", s.GetRouteRecord)

	e.POST("/api/scheduling/sync", s.SyncScheduling)
	e.GET("/api/shifts/pending", s.GetPendingShifts)
	e.POST("/api/shifts/:id/confirm", s.ConfirmAssignment)
	e.DELETE("/api/shifts/cleanup", s.CleanupStaleShifts)
	e.DELETE("/api/shifts/:id", s.UnassignShift)
}

// Error is the JSON error body returned by all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// SynchronizeRouteRequest is the body of POST /api/routes/sync.
type SynchronizeRouteRequest struct {
	DriverID    int64  `json:"driver_id"`
	DriverName  string `json:"driver_name"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

// SynchronizeRouteResponse is the body returned by POST /api/routes/sync.
type SynchronizeRouteResponse struct {
	RequestID       int64   `json:"request_id"`
	Token           string  `json:"token"`
	ShiftID         int64   `json:"shift_id"`
	AssignmentID    int64   `json:"assignment_id"`
	DistanceKm      float64 `json:"distance_km"`
	DurationMinutes int     `json:"duration_minutes"`
}

// SynchronizeRoute handles POST /api/routes/sync. It runs the full sequence:
// compute the route, register it and project it into the scheduling context.
func (s *Server) SynchronizeRoute(ctx echo.Context) error {
	var request SynchronizeRouteRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	result, err := s.routeSyncFacade.SynchronizeRoute(ctx.Request().Context(), facade.SynchronizeRouteRequest{
		DriverID:    request.DriverID,
		DriverName:  request.DriverName,
		Origin:      request.Origin,
		Destination: request.Destination,
	})
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, SynchronizeRouteResponse{
		RequestID:       result.RequestID,
		Token:           result.Token,
		ShiftID:         result.ShiftID,
		AssignmentID:    result.AssignmentID,
		DistanceKm:      result.DistanceKm,
		DurationMinutes: result.DurationMinutes,
	})
}

// AssignRouteRequest is the body of POST /api/routes/assign.
type AssignRouteRequest struct {
	DriverID    int64  `json:"driver_id"`
	DriverName  string `json:"driver_name"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

// AssignRouteResponse is the body returned by POST /api/routes/assign.
type AssignRouteResponse struct {
	RequestID int64  `json:"request_id"`
	Token     string `json:"token"`
}

// AssignRoute handles POST /api/routes/assign. It registers a route without
// contacting the routing engine or the scheduling context.
func (s *Server) AssignRoute(ctx echo.Context) error {
	var request AssignRouteRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAssignRouteToDriverCommand(
		request.DriverID, request.DriverName, request.Origin, request.Destination)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.assignRouteHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, AssignRouteResponse{
		RequestID: result.RequestID,
		Token:     result.Token,
	})
}

// SyncSchedulingRequest is the body of POST /api/scheduling/sync.
type SyncSchedulingRequest struct {
	Token             string `json:"token"`
	EmployeeID        int64  `json:"employee_id"`
	DurationSeconds   int64  `json:"duration_s"`
	EstimatedStartISO string `json:"estimated_start"`
}

// SyncSchedulingResponse is the body returned by POST /api/scheduling/sync.
type SyncSchedulingResponse struct {
	ShiftID       int64 `json:"shift_id"`
	AssignmentID  int64 `json:"assignment_id"`
	RouteLinked   bool  `json:"route_linked"`
	StartFellBack bool  `json:"start_fell_back"`
}

// SyncScheduling handles POST /api/scheduling/sync. It creates or refreshes
// the shift for an already computed route.
func (s *Server) SyncScheduling(ctx echo.Context) error {
	var request SyncSchedulingRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSyncRouteWithSchedulingCommand(
		request.Token,
		request.EmployeeID,
		request.DurationSeconds,
		request.EstimatedStartISO,
		shift.FlowDirect,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.syncRouteHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, SyncSchedulingResponse{
		ShiftID:       result.ShiftID,
		AssignmentID:  result.AssignmentID,
		RouteLinked:   result.RouteLinked,
		StartFellBack: result.StartFellBack,
	})
}

// ConfirmAssignmentRequest is the body of POST /api/shifts/:id/confirm.
type ConfirmAssignmentRequest struct {
	EmployeeID int64 `json:"employee_id"`
}

// ConfirmAssignmentResponse is the body returned by POST /api/shifts/:id/confirm.
type ConfirmAssignmentResponse struct {
	ShiftID       int64 `json:"shift_id"`
	EmployeeID    int64 `json:"employee_id"`
	MirrorUpdated bool  `json:"mirror_updated"`
}

// ConfirmAssignment handles POST /api/shifts/:id/confirm. It binds the shift
// to the confirmed driver and updates the route mirror.
func (s *Server) ConfirmAssignment(ctx echo.Context) error {
	shiftID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return badRequest(ctx, "Invalid shift id")
	}

	var request ConfirmAssignmentRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewConfirmAssignmentCommand(shiftID, request.EmployeeID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.confirmAssignmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ConfirmAssignmentResponse{
		ShiftID:       result.ShiftID,
		EmployeeID:    result.EmployeeID,
		MirrorUpdated: result.MirrorUpdated,
	})
}

// UnassignShift handles DELETE /api/shifts/:id. It removes the shift and its
// assignments; unassigning an already removed shift succeeds.
func (s *Server) UnassignShift(ctx echo.Context) error {
	shiftID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return badRequest(ctx, "Invalid shift id")
	}

	cmd, err := commands.NewUnassignShiftCommand(shiftID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.unassignShiftHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CleanupStaleShiftsResponse is the body returned by DELETE /api/shifts/cleanup.
type CleanupStaleShiftsResponse struct {
	PurgedShiftIDs []int64 `json:"purged_shift_ids"`
	PurgedCount    int     `json:"purged_count"`
}

// CleanupStaleShifts handles DELETE /api/shifts/cleanup. The optional
// retention_hours query parameter overrides the default retention window.
func (s *Server) CleanupStaleShifts(ctx echo.Context) error {
	retentionHours := 0
	if raw := ctx.QueryParam("retention_hours"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, "Invalid retention_hours")
		}
		retentionHours = parsed
	}

	cmd, err := commands.NewPurgeStaleShiftsCommand(retentionHours)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	purgedIDs, err := s.purgeStaleShiftsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CleanupStaleShiftsResponse{
		PurgedShiftIDs: purgedIDs,
		PurgedCount:    len(purgedIDs),
	})
}

// PendingShiftResponse is one element of the GET /api/shifts/pending body.
type PendingShiftResponse struct {
	ID              int64  `json:"id"`
	RouteID         *int64 `json:"route_id"`
	ScheduledDate   string `json:"scheduled_date"`
	StartTime       string `json:"start_time"`
	DurationMinutes int    `json:"duration_minutes"`
	CreatedAt       string `json:"created_at"`
}

// GetPendingShifts handles GET /api/shifts/pending.
func (s *Server) GetPendingShifts(ctx echo.Context) error {
	query := queries.NewGetPendingShiftsQuery()

	shifts, err := s.getPendingShiftsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]PendingShiftResponse, len(shifts))
	for i, item := range shifts {
		response[i] = PendingShiftResponse{
			ID:              item.ID,
			RouteID:         item.RouteID,
			ScheduledDate:   item.ScheduledDate.Format("2006-01-02"),
			StartTime:       item.StartTime.Format("15:04:05"),
			DurationMinutes: item.DurationMinutes,
			CreatedAt:       item.CreatedAt.Format(timeFormat),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RouteRecordResponse is one element of the GET /api/route-requests body.
type RouteRecordResponse struct {
	ID          int64  `json:"id"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

// GetRouteRecords handles GET /api/route-requests. The optional limit query
// parameter caps the number of records returned.
func (s *Server) GetRouteRecords(ctx echo.Context) error {
	limit := 0
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, "Invalid limit")
		}
		limit = parsed
	}

	query, err := queries.NewGetRouteRecordsQuery(limit)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	records, err := s.getRouteRecordsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]RouteRecordResponse, len(records))
	for i, item := range records {
		response[i] = RouteRecordResponse{
			ID:          item.ID,
			Origin:      item.Origin,
			Destination: item.Destination,
			Status:      item.Status,
			CreatedAt:   item.CreatedAt.Format(timeFormat),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RouteRecordDetailResponse is the body returned by GET /api/route-requests/:id.
type RouteRecordDetailResponse struct {
	ID              int64  `json:"id"`
	Origin          string `json:"origin"`
	Destination     string `json:"destination"`
	RequestPayload  string `json:"request_payload"`
	ResponsePayload string `json:"response_payload"`
	Status          string `json:"status"`
	CreatedAt       string `json:"created_at"`
}

// GetRouteRecord handles GET /api/route-requests/:id. It returns one attempt
// with its raw payloads, or 404 when the id is unknown.
func (s *Server) GetRouteRecord(ctx echo.Context) error {
	recordID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return badRequest(ctx, "Invalid record id")
	}

	query, err := queries.NewGetRouteRecordQuery(recordID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	record, err := s.getRouteRecordHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RouteRecordDetailResponse{
		ID:              record.ID,
		Origin:          record.Origin,
		Destination:     record.Destination,
		RequestPayload:  record.RequestPayload,
		ResponsePayload: record.ResponsePayload,
		Status:          record.Status,
		CreatedAt:       record.CreatedAt.Format(timeFormat),
	})
}

const timeFormat = "2006-01-02T15:04:05Z07:00"

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps application errors to HTTP statuses: unknown objects to
// 404, routing engine failures to 502, everything else to 500.
func errorResponse(ctx echo.Context, err error) error {
	var statusErr *ports.RoutingStatusError

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrUpstreamUnavailable):
		status = http.StatusBadGateway
	case errors.As(err, &statusErr):
		status = http.StatusBadGateway
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrTrackingTokenIsInvalid):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}
