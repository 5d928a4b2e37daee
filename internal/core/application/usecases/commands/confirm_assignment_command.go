package commands

import (
	"errors"

	"routesync/internal/pkg/errs"
	"routesync/internal/pkg/guard"
)

var (
	ErrConfirmAssignmentCommandIsNotConstructed = errors.New(
		"ConfirmAssignmentCommand must be created via NewConfirmAssignmentCommand constructor",
	)
	ErrShiftIDIsInvalid = errs.NewValueIsInvalidError("shiftId")
)

// ConfirmAssignmentCommand represents a request to confirm a driver on a
// dynamic shift, propagating the confirmation to the route mirror.
type ConfirmAssignmentCommand struct { //nolint:recvcheck //using for validation
	shiftID    int64
	employeeID int64

	guard guard.ConstructorGuard
}

// NewConfirmAssignmentCommand creates a command to confirm a driver on a shift.
// Validates that both identifiers are positive.
func NewConfirmAssignmentCommand(shiftID, employeeID int64) (ConfirmAssignmentCommand, error) {
	command := ConfirmAssignmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShiftID(shiftID),
		command.setEmployeeID(employeeID),
	); err != nil {
		return ConfirmAssignmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrConfirmAssignmentCommandIsNotConstructed if validation fails.
func (c ConfirmAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmAssignmentCommandIsNotConstructed)
}

// ShiftID returns the shift to confirm.
func (c ConfirmAssignmentCommand) ShiftID() int64 {
	return c.shiftID
}

// EmployeeID returns the driver confirmed on the shift.
func (c ConfirmAssignmentCommand) EmployeeID() int64 {
	return c.employeeID
}

func (c *ConfirmAssignmentCommand) setShiftID(shiftID int64) error {
	if shiftID <= 0 {
		return ErrShiftIDIsInvalid
	}

	c.shiftID = shiftID
	return nil
}

func (c *ConfirmAssignmentCommand) setEmployeeID(employeeID int64) error {
	if employeeID <= 0 {
		return ErrEmployeeIDIsInvalid
	}

	c.employeeID = employeeID
	return nil
}
