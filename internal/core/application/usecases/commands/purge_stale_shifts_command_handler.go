package commands

import (
	"context"
	"time"

	"routesync/internal/pkg/clock"
)

// PurgeStaleShiftsCommandHandler removes speculative shifts that stayed
// pending past the retention window, assignments included.
type PurgeStaleShiftsCommandHandler struct {
	uowFactory ShiftUoWFactory
	clock      clock.Clock
}

// NewPurgeStaleShiftsCommandHandler creates a handler for retention sweeps.
// Requires a ShiftUoWFactory for transactional persistence.
func NewPurgeStaleShiftsCommandHandler(uowFactory ShiftUoWFactory, clk clock.Clock) PurgeStaleShiftsCommandHandler {
	return PurgeStaleShiftsCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

// Handle processes the retention sweep.
// Only shifts still in the pending status are touched: confirmed, running
// and finished shifts are never purged. Returns the identifiers of the
// removed shifts.
func (h PurgeStaleShiftsCommandHandler) Handle(ctx context.Context, cmd PurgeStaleShiftsCommand) ([]int64, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	olderThan := h.clock.Now().Add(-time.Duration(cmd.RetentionHours()) * time.Hour)

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	purgedIDs, err := uow.ShiftRepository().DeleteStalePending(ctx, olderThan)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return purgedIDs, nil
}
