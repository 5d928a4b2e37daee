package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetRouteRecordsQueryHandler retrieves the route computation log from the
// database, most recent attempts first.
type GetRouteRecordsQueryHandler struct {
	db *gorm.DB
}

// NewGetRouteRecordsQueryHandler creates a handler for route log queries.
// Requires a GORM database connection for query execution.
func NewGetRouteRecordsQueryHandler(db *gorm.DB) GetRouteRecordsQueryHandler {
	return GetRouteRecordsQueryHandler{db: db}
}

// Handle executes the query to retrieve recent route computations.
// Failed attempts are included; their status carries the failure kind.
func (h GetRouteRecordsQueryHandler) Handle(
	ctx context.Context,
	query GetRouteRecordsQuery,
) ([]GetRouteRecordsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	records := make([]GetRouteRecordsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			origin,
			destination,
			status,
			created_at
		FROM route_requests
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var recordResp GetRouteRecordsQueryResponse

		err = rows.Scan(
			&recordResp.ID,
			&recordResp.Origin,
			&recordResp.Destination,
			&recordResp.Status,
			&recordResp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		records = append(records, recordResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
