// Package facade exposes the route synchronization sequence as a single
// operation. It chains route computation, route registration and shift
// scheduling, recording every step in the audit trail so a partial failure
// can be traced and compensated.
package facade

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"routesync/internal/core/application/usecases/commands"
	"routesync/internal/core/domain/model/audit"
	"routesync/internal/core/domain/model/route"
	"routesync/internal/core/domain/model/shift"
	"routesync/internal/core/ports"
	"routesync/internal/pkg/clock"
	"routesync/internal/pkg/errs"
)

// Handler interfaces keep the facade decoupled from concrete command
// handlers so the sequence can be tested in isolation.
type (
	// AssignRouteHandler registers a route and mints its tracking token.
	AssignRouteHandler interface {
		Handle(ctx context.Context, cmd commands.AssignRouteToDriverCommand) (commands.AssignRouteResult, error)
	}

	// SyncRouteHandler projects a computed route into the scheduling context.
	SyncRouteHandler interface {
		Handle(ctx context.Context, cmd commands.SyncRouteWithSchedulingCommand) (commands.SyncRouteResult, error)
	}
)

// SynchronizeRouteRequest carries the parameters of a full synchronization.
type SynchronizeRouteRequest struct {
	DriverID    int64
	DriverName  string
	Origin      string
	Destination string
}

// SynchronizeRouteResult reports the identifiers produced by the sequence.
type SynchronizeRouteResult struct {
	RequestID       int64
	Token           string
	ShiftID         int64
	AssignmentID    int64
	DistanceKm      float64
	DurationMinutes int
}

// RouteSyncFacade runs the synchronization sequence: compute the route,
// register it with a tracking token, and project it into the scheduling
// context. The route computation log and the audit trail are written
// best-effort; losing either never fails the sequence.
type RouteSyncFacade struct {
	routingClient ports.RoutingClient
	routeRecords  ports.RouteRecordRepository
	auditLog      ports.SyncAuditRepository
	assignHandler AssignRouteHandler
	syncHandler   SyncRouteHandler
	clock         clock.Clock
	logger        *slog.Logger
}

// NewRouteSyncFacade creates the synchronization facade.
func NewRouteSyncFacade(
	routingClient ports.RoutingClient,
	routeRecords ports.RouteRecordRepository,
	auditLog ports.SyncAuditRepository,
	assignHandler AssignRouteHandler,
	syncHandler SyncRouteHandler,
	clk clock.Clock,
	logger *slog.Logger,
) RouteSyncFacade {
	if logger == nil {
		logger = slog.Default()
	}
	return RouteSyncFacade{
		routingClient: routingClient,
		routeRecords:  routeRecords,
		auditLog:      auditLog,
		assignHandler: assignHandler,
		syncHandler:   syncHandler,
		clock:         clk,
		logger:        logger,
	}
}

// SynchronizeRoute executes the full sequence for one route.
// Each step is audited; the first failing step aborts the sequence and its
// error is returned unchanged so the transport layer can map it.
func (f RouteSyncFacade) SynchronizeRoute(ctx context.Context, request SynchronizeRouteRequest) (SynchronizeRouteResult, error) {
	computeRequest := ports.RouteComputationRequest{
		Origin:      request.Origin,
		Destination: request.Destination,
		DriverID:    request.DriverID,
		DriverName:  request.DriverName,
	}

	computation, err := f.routingClient.ComputeRoute(ctx, computeRequest)
	f.recordComputation(ctx, computeRequest, computation, err)
	if err != nil {
		f.audit(ctx, audit.StepComputeRoute, "", audit.OutcomeError, err.Error())
		return SynchronizeRouteResult{}, err
	}
	f.audit(ctx, audit.StepComputeRoute, "", audit.OutcomeOK, "")

	assignCmd, err := commands.NewAssignRouteToDriverCommand(
		request.DriverID, request.DriverName, request.Origin, request.Destination)
	if err != nil {
		return SynchronizeRouteResult{}, err
	}

	assignResult, err := f.assignHandler.Handle(ctx, assignCmd)
	if err != nil {
		f.audit(ctx, audit.StepAssignRoute, "", audit.OutcomeError, err.Error())
		return SynchronizeRouteResult{}, err
	}
	f.audit(ctx, audit.StepAssignRoute, assignResult.Token, audit.OutcomeOK, "")

	syncCmd, err := commands.NewSyncRouteWithSchedulingCommand(
		assignResult.Token,
		request.DriverID,
		computation.DurationSeconds,
		computation.EstimatedStartISO,
		shift.FlowDirect,
	)
	if err != nil {
		return SynchronizeRouteResult{}, err
	}

	syncResult, err := f.syncHandler.Handle(ctx, syncCmd)
	if err != nil {
		f.audit(ctx, audit.StepSyncShift, assignResult.Token, audit.OutcomeError, err.Error())
		return SynchronizeRouteResult{}, err
	}
	f.audit(ctx, audit.StepSyncShift, assignResult.Token, audit.OutcomeOK, "")

	return SynchronizeRouteResult{
		RequestID:       assignResult.RequestID,
		Token:           assignResult.Token,
		ShiftID:         syncResult.ShiftID,
		AssignmentID:    syncResult.AssignmentID,
		DistanceKm:      computation.DistanceKm,
		DurationMinutes: durationMinutesOf(computation.DurationSeconds),
	}, nil
}

// recordComputation appends the attempt to the route computation log.
// Best-effort: a failed write is logged and the sequence continues.
func (f RouteSyncFacade) recordComputation(
	ctx context.Context,
	request ports.RouteComputationRequest,
	computation ports.RouteComputationResult,
	computeErr error,
) {
	status := route.StatusOK
	responsePayload := ""

	if computeErr != nil {
		var statusErr *ports.RoutingStatusError
		switch {
		case errors.As(computeErr, &statusErr):
			status = route.StatusFromCode(statusErr.Code)
			responsePayload = statusErr.Body
		case errors.Is(computeErr, errs.ErrUpstreamUnavailable):
			status = route.StatusUnreachable
			responsePayload = computeErr.Error()
		default:
			status = route.StatusUnreachable
			responsePayload = computeErr.Error()
		}
	} else if raw, marshalErr := json.Marshal(computation); marshalErr == nil {
		responsePayload = string(raw)
	}

	requestPayload := ""
	if raw, marshalErr := json.Marshal(request); marshalErr == nil {
		requestPayload = string(raw)
	}

	record, err := route.NewRecord(
		request.Origin,
		request.Destination,
		requestPayload,
		responsePayload,
		status,
		f.clock.Now(),
	)
	if err != nil {
		f.logger.Warn("route computation log entry is invalid", "error", err)
		return
	}

	if _, err = f.routeRecords.Add(ctx, record); err != nil {
		f.logger.Warn("failed to persist route computation log entry", "error", err)
	}
}

// audit appends a saga step to the audit trail. Best-effort.
func (f RouteSyncFacade) audit(ctx context.Context, step, token, outcome, detail string) {
	entry, err := audit.NewSyncEntry(step, token, outcome, detail, f.clock.Now())
	if err != nil {
		f.logger.Warn("audit entry is invalid", "step", step, "error", err)
		return
	}

	if err = f.auditLog.Add(ctx, entry); err != nil {
		f.logger.Warn("failed to persist audit entry", "step", step, "error", err)
	}
}

func durationMinutesOf(durationSeconds int64) int {
	minutes := int(durationSeconds / 60)
	if minutes < shift.MinDurationMinutes {
		minutes = shift.MinDurationMinutes
	}
	return minutes
}
