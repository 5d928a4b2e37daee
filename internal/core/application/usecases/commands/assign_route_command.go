package commands

import (
	"errors"

	"routesync/internal/pkg/errs"
	"routesync/internal/pkg/guard"
)

var (
	ErrAssignRouteCommandIsNotConstructed = errors.New(
		"AssignRouteToDriverCommand must be created via NewAssignRouteToDriverCommand constructor",
	)
	ErrDriverIDIsInvalid     = errs.NewValueIsInvalidError("driverId")
	ErrOriginIsRequired      = errs.NewValueIsRequiredError("origin")
	ErrDestinationIsRequired = errs.NewValueIsRequiredError("destination")
)

// AssignRouteToDriverCommand represents a request to register a route for a
// driver and mint its tracking token.
//
// Example:
//
//	cmd, err := NewAssignRouteToDriverCommand(42, "Ana Reyes", "Av. Sucre 100", "C. Bolivar 9")
//	if err != nil {
//	    return fmt.Errorf("invalid route data: %w", err)
//	}
//
//	handler := NewAssignRouteToDriverCommandHandler(uowFactory, clk)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to assign route: %w", err)
//	}
//	fmt.Printf("route %d tracked as %s", result.RequestID, result.Token)
type AssignRouteToDriverCommand struct { //nolint:recvcheck //using for validation
	driverID    int64
	driverName  string
	origin      string
	destination string

	guard guard.ConstructorGuard
}

// NewAssignRouteToDriverCommand creates a command to register a driver's route.
// Validates that the driver identifier is positive and both addresses are present.
// The driver name is optional and only used for the mirror record's notes.
func NewAssignRouteToDriverCommand(driverID int64, driverName, origin, destination string) (AssignRouteToDriverCommand, error) {
	command := AssignRouteToDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(driverID),
		command.setOrigin(origin),
		command.setDestination(destination),
	); err != nil {
		return AssignRouteToDriverCommand{}, err
	}

	command.driverName = driverName
	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignRouteCommandIsNotConstructed if validation fails.
func (c AssignRouteToDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignRouteCommandIsNotConstructed)
}

// DriverID returns the identifier of the driver the route belongs to.
func (c AssignRouteToDriverCommand) DriverID() int64 {
	return c.driverID
}

// DriverName returns the driver's display name, possibly empty.
func (c AssignRouteToDriverCommand) DriverName() string {
	return c.driverName
}

// Origin returns the route's origin address.
func (c AssignRouteToDriverCommand) Origin() string {
	return c.origin
}

// Destination returns the route's destination address.
func (c AssignRouteToDriverCommand) Destination() string {
	return c.destination
}

func (c *AssignRouteToDriverCommand) setDriverID(driverID int64) error {
	if driverID <= 0 {
		return ErrDriverIDIsInvalid
	}

	c.driverID = driverID
	return nil
}

func (c *AssignRouteToDriverCommand) setOrigin(origin string) error {
	if origin == "" {
		return ErrOriginIsRequired
	}

	c.origin = origin
	return nil
}

func (c *AssignRouteToDriverCommand) setDestination(destination string) error {
	if destination == "" {
		return ErrDestinationIsRequired
	}

	c.destination = destination
	return nil
}
