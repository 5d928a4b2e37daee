package commands

import (
	"context"
	"log/slog"

	"routesync/internal/pkg/clock"
)

// ConfirmAssignmentResult reports the outcome of confirming a driver.
type ConfirmAssignmentResult struct {
	// ShiftID is the confirmed shift.
	ShiftID int64
	// EmployeeID is the confirmed driver.
	EmployeeID int64
	// MirrorUpdated reports whether the route mirror was updated as well.
	// False when the shift carries no route reference or the mirror record
	// is gone.
	MirrorUpdated bool
}

// ConfirmAssignmentCommandHandler confirms a driver on a dynamic shift.
// Binds every assignment of the shift to the driver, marks the shift
// assigned and propagates the driver to the route mirror, all in one
// transaction. A missing mirror record is tolerated.
type ConfirmAssignmentCommandHandler struct {
	uowFactory UoWFactory
	clock      clock.Clock
	logger     *slog.Logger
}

// NewConfirmAssignmentCommandHandler creates a handler for assignment
// confirmation operations. Requires a UoWFactory because the confirmation
// spans the shift and delivery aggregates.
func NewConfirmAssignmentCommandHandler(uowFactory UoWFactory, clk clock.Clock, logger *slog.Logger) ConfirmAssignmentCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return ConfirmAssignmentCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
		logger:     logger,
	}
}

// Handle processes the confirmation command.
// Returns errs.ObjectNotFoundError when the shift does not exist. Confirming
// an already confirmed shift with a different driver rebinds it: the last
// confirmation wins.
func (h ConfirmAssignmentCommandHandler) Handle(ctx context.Context, cmd ConfirmAssignmentCommand) (ConfirmAssignmentResult, error) {
	if err := cmd.Validate(); err != nil {
		return ConfirmAssignmentResult{}, err
	}

	now := h.clock.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ConfirmAssignmentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shiftRepo := uow.ShiftRepository()

	aggregate, err := shiftRepo.Get(ctx, cmd.ShiftID())
	if err != nil {
		return ConfirmAssignmentResult{}, err
	}

	if err = shiftRepo.ConfirmAssignments(ctx, cmd.ShiftID(), cmd.EmployeeID(), now); err != nil {
		return ConfirmAssignmentResult{}, err
	}

	if err = aggregate.Assign(now); err != nil {
		return ConfirmAssignmentResult{}, err
	}

	if err = shiftRepo.Update(ctx, aggregate); err != nil {
		return ConfirmAssignmentResult{}, err
	}

	mirrorUpdated := false
	if routeID := aggregate.RouteID(); routeID != nil {
		rows, err := uow.DeliveryRepository().AssignDriver(ctx, *routeID, cmd.EmployeeID(), now)
		if err != nil {
			return ConfirmAssignmentResult{}, err
		}
		if rows == 0 {
			h.logger.Warn("route mirror record is missing, confirmation not propagated",
				"shiftId", cmd.ShiftID(),
				"routeId", *routeID)
		}
		mirrorUpdated = rows > 0
	}

	if err = uow.Commit(ctx); err != nil {
		return ConfirmAssignmentResult{}, err
	}

	return ConfirmAssignmentResult{
		ShiftID:       cmd.ShiftID(),
		EmployeeID:    cmd.EmployeeID(),
		MirrorUpdated: mirrorUpdated,
	}, nil
}
