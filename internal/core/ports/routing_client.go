package ports

import (
	"context"
	"fmt"
)

// RouteComputationRequest carries the parameters sent to the routing engine.
type RouteComputationRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	DriverID    int64  `json:"driver_id"`
	DriverName  string `json:"driver_name,omitempty"`
}

// RouteComputationResult is the routing engine's answer for a computed route.
type RouteComputationResult struct {
	DistanceKm        float64 `json:"distance_km"`
	DurationSeconds   int64   `json:"duration_s"`
	EstimatedStartISO string  `json:"estimated_start"`
	Geometry          string  `json:"geometry,omitempty"`
}

// RoutingStatusError is returned when the routing engine answers with a
// non-success HTTP status. The body is kept for the route computation log.
type RoutingStatusError struct {
	Code int
	Body string
}

// Error implements the error interface.
func (e *RoutingStatusError) Error() string {
	return fmt.Sprintf("routing engine returned status %d: %s", e.Code, e.Body)
}

// RoutingClient defines the outbound contract to the routing engine.
// Transport failures are reported as errs.UpstreamUnavailableError; answers
// with a non-success status as *RoutingStatusError.
type RoutingClient interface {
	// ComputeRoute asks the routing engine for the route between the
	// request's origin and destination.
	ComputeRoute(ctx context.Context, request RouteComputationRequest) (RouteComputationResult, error)
}
