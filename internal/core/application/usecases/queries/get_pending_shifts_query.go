// Package queries contains read-only operations over the persistence layer.
// Implements the Query side of the CQRS architecture: handlers read with raw
// SQL and return plain response structures, bypassing the domain model.
package queries

import (
	"errors"
	"time"

	"routesync/internal/pkg/guard"
)

var ErrGetPendingShiftsQueryIsNotConstructed = errors.New(
	"GetPendingShiftsQuery must be created via NewGetPendingShiftsQuery constructor",
)

// GetPendingShiftsQuery retrieves all speculative shifts still awaiting
// confirmation. Used by schedulers to review what the retention sweeper
// will eventually purge.
type GetPendingShiftsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingShiftsQuery creates a query to retrieve pending shifts.
// This is a parameterless query that fetches all shifts in the pending status.
func NewGetPendingShiftsQuery() GetPendingShiftsQuery {
	return GetPendingShiftsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPendingShiftsQueryIsNotConstructed if validation fails.
func (q GetPendingShiftsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingShiftsQueryIsNotConstructed)
}

// GetPendingShiftsQueryResponse represents a pending shift awaiting
// confirmation.
type GetPendingShiftsQueryResponse struct {
	ID              int64
	RouteID         *int64
	ScheduledDate   time.Time
	StartTime       time.Time
	DurationMinutes int
	CreatedAt       time.Time
}
