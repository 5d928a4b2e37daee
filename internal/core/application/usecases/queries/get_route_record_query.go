package queries

import (
	"errors"
	"time"

	"routesync/internal/pkg/errs"
	"routesync/internal/pkg/guard"
)

var (
	ErrGetRouteRecordQueryIsNotConstructed = errors.New(
		"GetRouteRecordQuery must be created via NewGetRouteRecordQuery constructor",
	)
	ErrRecordIDIsInvalid = errs.NewValueIsInvalidError("recordId")
)

// GetRouteRecordQuery retrieves a single route computation attempt by id,
// including its raw request and response payloads.
type GetRouteRecordQuery struct {
	recordID int64

	guard guard.ConstructorGuard
}

// NewGetRouteRecordQuery creates a query for one route computation attempt.
func NewGetRouteRecordQuery(recordID int64) (GetRouteRecordQuery, error) {
	if recordID <= 0 {
		return GetRouteRecordQuery{}, ErrRecordIDIsInvalid
	}

	return GetRouteRecordQuery{
		recordID: recordID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRouteRecordQueryIsNotConstructed if validation fails.
func (q GetRouteRecordQuery) Validate() error {
	return q.guard.Validate(ErrGetRouteRecordQueryIsNotConstructed)
}

// RecordID returns the identifier of the requested attempt.
func (q GetRouteRecordQuery) RecordID() int64 {
	return q.recordID
}

// GetRouteRecordQueryResponse is a single route computation attempt with
// payloads.
type GetRouteRecordQueryResponse struct {
	ID              int64
	Origin          string
	Destination     string
	RequestPayload  string
	ResponsePayload string
	Status          string
	CreatedAt       time.Time
}
