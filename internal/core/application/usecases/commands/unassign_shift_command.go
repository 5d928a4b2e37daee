package commands

import (
	"errors"

	"routesync/internal/pkg/guard"
)

var ErrUnassignShiftCommandIsNotConstructed = errors.New(
	"UnassignShiftCommand must be created via NewUnassignShiftCommand constructor",
)

// UnassignShiftCommand represents a compensating request to remove a dynamic
// shift and its assignments after a later synchronization step failed.
type UnassignShiftCommand struct { //nolint:recvcheck //using for validation
	shiftID int64

	guard guard.ConstructorGuard
}

// NewUnassignShiftCommand creates a command to roll back a shift.
// Validates that the shift identifier is positive.
func NewUnassignShiftCommand(shiftID int64) (UnassignShiftCommand, error) {
	command := UnassignShiftCommand{
		guard: guard.NewConstructorGuard(),
	}

	if shiftID <= 0 {
		return UnassignShiftCommand{}, ErrShiftIDIsInvalid
	}

	command.shiftID = shiftID
	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUnassignShiftCommandIsNotConstructed if validation fails.
func (c UnassignShiftCommand) Validate() error {
	return c.guard.Validate(ErrUnassignShiftCommandIsNotConstructed)
}

// ShiftID returns the shift to remove.
func (c UnassignShiftCommand) ShiftID() int64 {
	return c.shiftID
}
