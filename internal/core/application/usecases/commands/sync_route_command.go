package commands

import (
	"errors"

	"routesync/internal/core/domain/model/shift"
	"routesync/internal/pkg/errs"
	"routesync/internal/pkg/guard"
)

var (
	ErrSyncRouteCommandIsNotConstructed = errors.New(
		"SyncRouteWithSchedulingCommand must be created via NewSyncRouteWithSchedulingCommand constructor",
	)
	ErrEmployeeIDIsInvalid      = errs.NewValueIsInvalidError("employeeId")
	ErrDurationSecondsIsInvalid = errs.NewValueIsInvalidError("durationSeconds")
)

// SyncRouteWithSchedulingCommand represents a request to project a computed
// route into the scheduling context as a dynamic shift with its driver
// assignment.
//
// The tracking token is carried verbatim: an unparseable token does not fail
// the command, it only leaves the resulting shift without a route link.
type SyncRouteWithSchedulingCommand struct { //nolint:recvcheck //using for validation
	trackingToken     string
	employeeID        int64
	durationSeconds   int64
	estimatedStartISO string
	flow              shift.Flow

	guard guard.ConstructorGuard
}

// NewSyncRouteWithSchedulingCommand creates a command to synchronize a route
// into the scheduling context. Validates that the employee identifier is
// positive, the duration is non-negative and the flow tag is known.
func NewSyncRouteWithSchedulingCommand(
	trackingToken string,
	employeeID int64,
	durationSeconds int64,
	estimatedStartISO string,
	flow shift.Flow,
) (SyncRouteWithSchedulingCommand, error) {
	command := SyncRouteWithSchedulingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setEmployeeID(employeeID),
		command.setDurationSeconds(durationSeconds),
		flow.Validate(),
	); err != nil {
		return SyncRouteWithSchedulingCommand{}, err
	}

	command.trackingToken = trackingToken
	command.estimatedStartISO = estimatedStartISO
	command.flow = flow
	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSyncRouteCommandIsNotConstructed if validation fails.
func (c SyncRouteWithSchedulingCommand) Validate() error {
	return c.guard.Validate(ErrSyncRouteCommandIsNotConstructed)
}

// TrackingToken returns the raw tracking token, possibly malformed.
func (c SyncRouteWithSchedulingCommand) TrackingToken() string {
	return c.trackingToken
}

// EmployeeID returns the driver to assign to the shift.
func (c SyncRouteWithSchedulingCommand) EmployeeID() int64 {
	return c.employeeID
}

// DurationSeconds returns the route duration reported by the routing engine.
func (c SyncRouteWithSchedulingCommand) DurationSeconds() int64 {
	return c.durationSeconds
}

// EstimatedStartISO returns the projected departure timestamp, possibly empty.
func (c SyncRouteWithSchedulingCommand) EstimatedStartISO() string {
	return c.estimatedStartISO
}

// Flow returns the creation flow the shift should be tagged with.
func (c SyncRouteWithSchedulingCommand) Flow() shift.Flow {
	return c.flow
}

func (c *SyncRouteWithSchedulingCommand) setEmployeeID(employeeID int64) error {
	if employeeID <= 0 {
		return ErrEmployeeIDIsInvalid
	}

	c.employeeID = employeeID
	return nil
}

func (c *SyncRouteWithSchedulingCommand) setDurationSeconds(durationSeconds int64) error {
	if durationSeconds < 0 {
		return ErrDurationSecondsIsInvalid
	}

	c.durationSeconds = durationSeconds
	return nil
}
