package commands

import (
	"context"
)

// UnassignShiftCommandHandler removes a dynamic shift and its assignments.
// Used as the compensating action when a later synchronization step fails
// and the scheduling context must be restored to its previous state.
type UnassignShiftCommandHandler struct {
	uowFactory ShiftUoWFactory
}

// NewUnassignShiftCommandHandler creates a handler for shift removal
// operations. Requires a ShiftUoWFactory for transactional persistence.
func NewUnassignShiftCommandHandler(uowFactory ShiftUoWFactory) UnassignShiftCommandHandler {
	return UnassignShiftCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal command.
// Deletes the assignments first, then the shift itself, in one transaction.
// The operation is idempotent: removing a shift that is already gone
// succeeds without effect.
func (h UnassignShiftCommandHandler) Handle(ctx context.Context, cmd UnassignShiftCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shiftRepo := uow.ShiftRepository()

	if err := shiftRepo.DeleteAssignmentsForShift(ctx, cmd.ShiftID()); err != nil {
		return err
	}

	if err := shiftRepo.Delete(ctx, cmd.ShiftID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
