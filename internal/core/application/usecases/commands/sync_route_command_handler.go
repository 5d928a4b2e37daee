package commands

import (
	"context"
	"errors"
	"log/slog"

	"routesync/internal/core/domain/model/kernel"
	"routesync/internal/core/domain/model/shift"
	"routesync/internal/core/domain/services"
	"routesync/internal/core/ports"
	"routesync/internal/pkg/clock"
	"routesync/internal/pkg/errs"
)

// SyncRouteResult reports the outcome of projecting a route into the
// scheduling context.
type SyncRouteResult struct {
	// ShiftID is the identifier of the created or refreshed shift.
	ShiftID int64
	// AssignmentID is the identifier of the driver's assignment.
	AssignmentID int64
	// RouteLinked reports whether the shift carries a route reference.
	// False when the tracking token could not be decoded.
	RouteLinked bool
	// StartFellBack reports whether the shift start was substituted with
	// the current time because the estimated start was unparseable.
	StartFellBack bool
}

// SyncRouteWithSchedulingCommandHandler projects a computed route into the
// scheduling context. Creates the dynamic shift together with the driver's
// assignment in one transaction, or refreshes the existing shift when the
// route was synchronized before.
type SyncRouteWithSchedulingCommandHandler struct {
	uowFactory ShiftUoWFactory
	planner    services.ShiftPlanner
	clock      clock.Clock
	logger     *slog.Logger
}

// NewSyncRouteWithSchedulingCommandHandler creates a handler for route
// synchronization operations.
func NewSyncRouteWithSchedulingCommandHandler(
	uowFactory ShiftUoWFactory,
	planner services.ShiftPlanner,
	clk clock.Clock,
	logger *slog.Logger,
) SyncRouteWithSchedulingCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return SyncRouteWithSchedulingCommandHandler{
		uowFactory: uowFactory,
		planner:    planner,
		clock:      clk,
		logger:     logger,
	}
}

// Handle processes the synchronization command.
// Decodes the tracking token into a route reference, tolerating malformed
// tokens, derives the shift timing and upserts the shift and its assignment
// keyed by the route reference. Persistence failures are reported as
// errs.SyncFailedError so callers can distinguish them from validation issues.
func (h SyncRouteWithSchedulingCommandHandler) Handle(
	ctx context.Context,
	cmd SyncRouteWithSchedulingCommand,
) (SyncRouteResult, error) {
	if err := cmd.Validate(); err != nil {
		return SyncRouteResult{}, err
	}

	var routeID *int64
	if token, err := kernel.ParseTrackingToken(cmd.TrackingToken()); err != nil {
		h.logger.Warn("tracking token is not decodable, shift will not reference a route",
			"trackingToken", cmd.TrackingToken(),
			"error", err)
	} else {
		id := token.RouteID()
		routeID = &id
	}

	plan := h.planner.Plan(services.RouteTiming{
		DurationSeconds:   cmd.DurationSeconds(),
		EstimatedStartISO: cmd.EstimatedStartISO(),
	})

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return SyncRouteResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shiftRepo := uow.ShiftRepository()

	shiftID, err := h.upsertShift(ctx, shiftRepo, cmd, routeID, plan)
	if err != nil {
		return SyncRouteResult{}, err
	}

	assignment, err := shift.NewAssignment(shiftID, cmd.EmployeeID(), shift.RolePrimaryDriver, h.clock.Now())
	if err != nil {
		return SyncRouteResult{}, err
	}

	assignmentID, err := shiftRepo.AddAssignment(ctx, assignment)
	if err != nil {
		return SyncRouteResult{}, errs.NewSyncFailedError("persist assignment", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return SyncRouteResult{}, errs.NewSyncFailedError("commit", err)
	}

	return SyncRouteResult{
		ShiftID:       shiftID,
		AssignmentID:  assignmentID,
		RouteLinked:   routeID != nil,
		StartFellBack: plan.StartFellBack,
	}, nil
}

// upsertShift refreshes the shift already linked to the route or creates a
// new one. The previous assignment, if any, is dropped so the transaction
// always ends with exactly one primary driver.
func (h SyncRouteWithSchedulingCommandHandler) upsertShift(
	ctx context.Context,
	shiftRepo ports.ShiftRepository,
	cmd SyncRouteWithSchedulingCommand,
	routeID *int64,
	plan services.ShiftPlan,
) (int64, error) {
	if routeID != nil {
		existing, err := shiftRepo.GetByRouteID(ctx, *routeID)
		switch {
		case err == nil:
			if err = existing.RefreshTiming(plan.StartAt, plan.DurationMinutes); err != nil {
				return 0, err
			}
			if err = shiftRepo.Update(ctx, existing); err != nil {
				return 0, errs.NewSyncFailedError("refresh shift", err)
			}
			if err = shiftRepo.DeleteAssignmentsForShift(ctx, existing.ID()); err != nil {
				return 0, errs.NewSyncFailedError("replace assignment", err)
			}
			return existing.ID(), nil
		case !errors.Is(err, errs.ErrObjectNotFound):
			return 0, errs.NewSyncFailedError("load shift", err)
		}
	}

	created, err := shift.NewDynamicShift(routeID, plan.StartAt, plan.DurationMinutes, cmd.Flow(), h.clock.Now())
	if err != nil {
		return 0, err
	}

	shiftID, err := shiftRepo.Add(ctx, created)
	if err != nil {
		return 0, errs.NewSyncFailedError("persist shift", err)
	}

	return shiftID, nil
}
