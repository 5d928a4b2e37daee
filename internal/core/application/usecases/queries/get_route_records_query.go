package queries

import (
	"errors"
	"time"

	"routesync/internal/pkg/errs"
	"routesync/internal/pkg/guard"
)

// DefaultRouteRecordsLimit bounds the route computation log listing when the
// caller does not specify a limit.
const DefaultRouteRecordsLimit = 50

var (
	ErrGetRouteRecordsQueryIsNotConstructed = errors.New(
		"GetRouteRecordsQuery must be created via NewGetRouteRecordsQuery constructor",
	)
	ErrLimitIsInvalid = errs.NewValueIsInvalidError("limit")
)

// GetRouteRecordsQuery retrieves the most recent entries of the route
// computation log, including failed computations.
type GetRouteRecordsQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewGetRouteRecordsQuery creates a query for the route computation log.
// A zero limit selects DefaultRouteRecordsLimit; negative limits are rejected.
func NewGetRouteRecordsQuery(limit int) (GetRouteRecordsQuery, error) {
	if limit < 0 {
		return GetRouteRecordsQuery{}, ErrLimitIsInvalid
	}
	if limit == 0 {
		limit = DefaultRouteRecordsLimit
	}

	return GetRouteRecordsQuery{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRouteRecordsQueryIsNotConstructed if validation fails.
func (q GetRouteRecordsQuery) Validate() error {
	return q.guard.Validate(ErrGetRouteRecordsQueryIsNotConstructed)
}

// Limit returns the maximum number of records to return.
func (q GetRouteRecordsQuery) Limit() int {
	return q.limit
}

// GetRouteRecordsQueryResponse represents one route computation attempt.
type GetRouteRecordsQueryResponse struct {
	ID          int64
	Origin      string
	Destination string
	Status      string
	CreatedAt   time.Time
}
