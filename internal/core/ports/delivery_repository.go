package ports

import (
	"context"
	"time"

	"routesync/internal/core/domain/model/delivery"
)

// DeliveryRepository defines the persistence contract for delivery request
// aggregates, the routing-facing mirror of a planned route.
type DeliveryRepository interface {
	// Add persists a new delivery request and returns its generated
	// identifier, which also serves as the route identifier encoded in
	// tracking tokens.
	Add(ctx context.Context, aggregate *delivery.Request) (int64, error)

	// Get retrieves a delivery request by its unique identifier.
	Get(ctx context.Context, id int64) (*delivery.Request, error)

	// AssignDriver binds the driver to the delivery request identified by
	// routeID and marks it assigned as of the given instant. Returns the
	// number of rows updated; zero means the mirror record does not exist,
	// which callers treat as a no-op.
	AssignDriver(ctx context.Context, routeID, driverID int64, at time.Time) (int64, error)
}
