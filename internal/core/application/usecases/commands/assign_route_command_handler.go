package commands

import (
	"context"

	"routesync/internal/core/domain/model/delivery"
	"routesync/internal/core/domain/model/kernel"
	"routesync/internal/pkg/clock"
)

// AssignRouteResult reports the outcome of registering a route.
type AssignRouteResult struct {
	// RequestID is the generated identifier of the delivery request.
	RequestID int64
	// Token is the tracking token derived from RequestID.
	Token string
}

// AssignRouteToDriverCommandHandler handles the business logic for route
// registration. Persists the delivery request mirror and derives the
// tracking token from the generated identifier.
type AssignRouteToDriverCommandHandler struct {
	uowFactory DeliveryUoWFactory
	clock      clock.Clock
}

// NewAssignRouteToDriverCommandHandler creates a handler for route registration.
// Requires a DeliveryUoWFactory for transactional persistence.
func NewAssignRouteToDriverCommandHandler(uowFactory DeliveryUoWFactory, clk clock.Clock) AssignRouteToDriverCommandHandler {
	return AssignRouteToDriverCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

// Handle processes the route registration command.
// Creates the delivery request already bound to its driver and mints the
// tracking token from the identifier the database assigned.
func (h AssignRouteToDriverCommandHandler) Handle(ctx context.Context, cmd AssignRouteToDriverCommand) (AssignRouteResult, error) {
	if err := cmd.Validate(); err != nil {
		return AssignRouteResult{}, err
	}

	request, err := delivery.NewRequest(cmd.DriverID(), cmd.DriverName(), cmd.Origin(), cmd.Destination(), h.clock.Now())
	if err != nil {
		return AssignRouteResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return AssignRouteResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	requestID, err := uow.DeliveryRepository().Add(ctx, request)
	if err != nil {
		return AssignRouteResult{}, err
	}

	token, err := kernel.NewTrackingToken(requestID)
	if err != nil {
		return AssignRouteResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AssignRouteResult{}, err
	}

	return AssignRouteResult{
		RequestID: requestID,
		Token:     token.String(),
	}, nil
}
