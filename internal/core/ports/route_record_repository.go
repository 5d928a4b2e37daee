package ports

import (
	"context"

	"routesync/internal/core/domain/model/route"
)

// RouteRecordRepository defines the persistence contract for the append-only
// route computation log. Writes to this log are best-effort: callers log and
// continue when Add fails.
type RouteRecordRepository interface {
	// Add persists a new route record and returns its generated identifier.
	Add(ctx context.Context, aggregate *route.Record) (int64, error)

	// Get retrieves a route record by its unique identifier.
	Get(ctx context.Context, id int64) (*route.Record, error)
}
