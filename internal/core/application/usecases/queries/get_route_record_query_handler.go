package queries

import (
	"context"
	"database/sql"
	"errors"

	"routesync/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetRouteRecordQueryHandler retrieves a single route computation attempt.
type GetRouteRecordQueryHandler struct {
	db *gorm.DB
}

// NewGetRouteRecordQueryHandler creates a handler for single-attempt lookups.
// Requires a GORM database connection for query execution.
func NewGetRouteRecordQueryHandler(db *gorm.DB) GetRouteRecordQueryHandler {
	return GetRouteRecordQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFoundError when no attempt with
// the given id exists.
func (h GetRouteRecordQueryHandler) Handle(
	ctx context.Context,
	query GetRouteRecordQuery,
) (GetRouteRecordQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRouteRecordQueryResponse{}, err
	}

	var recordResp GetRouteRecordQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			origin,
			destination,
			request_payload,
			response_payload,
			status,
			created_at
		FROM route_requests
		WHERE id = ?
	`, query.RecordID()).Row()

	err := row.Scan(
		&recordResp.ID,
		&recordResp.Origin,
		&recordResp.Destination,
		&recordResp.RequestPayload,
		&recordResp.ResponsePayload,
		&recordResp.Status,
		&recordResp.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetRouteRecordQueryResponse{}, errs.NewObjectNotFoundError("recordId", query.RecordID())
	}
	if err != nil {
		return GetRouteRecordQueryResponse{}, err
	}

	return recordResp, nil
}
