package commands

import (
	"errors"

	"routesync/internal/pkg/errs"
	"routesync/internal/pkg/guard"
)

// DefaultRetentionHours is how long speculative shifts are kept before they
// are considered abandoned.
const DefaultRetentionHours = 24

var (
	ErrPurgeStaleShiftsCommandIsNotConstructed = errors.New(
		"PurgeStaleShiftsCommand must be created via NewPurgeStaleShiftsCommand constructor",
	)
	ErrRetentionHoursIsInvalid = errs.NewValueIsInvalidError("retentionHours")
)

// PurgeStaleShiftsCommand represents a request to remove speculative shifts
// that were never confirmed within the retention window.
type PurgeStaleShiftsCommand struct { //nolint:recvcheck //using for validation
	retentionHours int

	guard guard.ConstructorGuard
}

// NewPurgeStaleShiftsCommand creates a command to purge abandoned shifts.
// A zero retention selects DefaultRetentionHours; negative values are
// rejected.
func NewPurgeStaleShiftsCommand(retentionHours int) (PurgeStaleShiftsCommand, error) {
	if retentionHours < 0 {
		return PurgeStaleShiftsCommand{}, ErrRetentionHoursIsInvalid
	}
	if retentionHours == 0 {
		retentionHours = DefaultRetentionHours
	}

	return PurgeStaleShiftsCommand{
		retentionHours: retentionHours,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPurgeStaleShiftsCommandIsNotConstructed if validation fails.
func (c PurgeStaleShiftsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeStaleShiftsCommandIsNotConstructed)
}

// RetentionHours returns how long pending shifts are kept.
func (c PurgeStaleShiftsCommand) RetentionHours() int {
	return c.retentionHours
}
