// Package ports defines the interfaces that connect the application core to
// infrastructure adapters. These interfaces establish contracts between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"
	"time"

	"routesync/internal/core/domain/model/shift"
)

// ShiftRepository defines the persistence contract for dynamic shift
// aggregates and their assignments. Shifts and assignments live in the same
// bounded context and share a transaction, so one repository covers both.
type ShiftRepository interface {
	// Add persists a new shift aggregate and returns its generated identifier.
	// The shift must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *shift.DynamicShift) (int64, error)

	// Update persists changes to an existing shift aggregate.
	// The shift must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *shift.DynamicShift) error

	// Get retrieves a shift aggregate by its unique identifier.
	Get(ctx context.Context, id int64) (*shift.DynamicShift, error)

	// GetByRouteID retrieves the shift linked to the given route, if any.
	// Returns errs.ObjectNotFoundError when no shift references the route.
	GetByRouteID(ctx context.Context, routeID int64) (*shift.DynamicShift, error)

	// Delete removes a shift by its identifier. Deleting a shift that does
	// not exist is not an error.
	Delete(ctx context.Context, id int64) error

	// DeleteStalePending removes all pending shifts created before the given
	// instant, assignments included, and returns the identifiers of the
	// shifts that were removed.
	DeleteStalePending(ctx context.Context, olderThan time.Time) ([]int64, error)

	// AddAssignment persists a new assignment for a shift and returns its
	// generated identifier.
	AddAssignment(ctx context.Context, assignment *shift.Assignment) (int64, error)

	// ConfirmAssignments binds every assignment of the given shift to the
	// employee and marks them assigned as of the given instant.
	ConfirmAssignments(ctx context.Context, shiftID, employeeID int64, at time.Time) error

	// DeleteAssignmentsForShift removes all assignments of the given shift.
	DeleteAssignmentsForShift(ctx context.Context, shiftID int64) error
}
