package delivery

import (
	"errors"
	"fmt"
	"time"

	"routesync/internal/pkg/errs"
)

// Delivery request statuses. The request row is the denormalized mirror of
// the authoritative shift/assignment state; "assigned" is the only status the
// synchronization workflow writes.
const (
	StatusPending  = "pending"
	StatusAssigned = "assigned"
)

// Domain errors for delivery request operations.
var (
	// ErrDriverIsRequired is returned when creating a request without a driver.
	ErrDriverIsRequired = errs.NewValueIsRequiredError("driverID")
	// ErrOriginIsRequired is returned when creating a request without an origin address.
	ErrOriginIsRequired = errs.NewValueIsRequiredError("origin")
	// ErrDestinationIsRequired is returned when creating a request without a destination address.
	ErrDestinationIsRequired = errs.NewValueIsRequiredError("destination")
	// ErrRequestIsNotConstructed is returned when using an improperly initialized Request.
	ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest or RestoreRequest")
)

// Request is a delivery record carrying the driver assignment mirror. Its id
// is the number encoded in the tracking token, which is how dynamic shifts
// find their way back to it: there is no foreign key, only the derived
// linkage via the token.
type Request struct {
	// id is assigned by the store on insert; zero until then
	id int64
	// originAddress is where the delivery starts
	originAddress string
	// destinationAddress is where the delivery ends
	destinationAddress string
	// driverID mirrors the driver currently assigned via the shift workflow
	driverID int64
	// status mirrors the assignment state
	status string
	// notes carries free-form context, e.g. the driver display name
	notes string
	// createdAt is when the request was registered
	createdAt time.Time
	// updatedAt tracks the last mirror propagation
	updatedAt time.Time

	isConstructed bool
}

// NewRequest registers a delivery for a driver. The request is created
// directly in "assigned" status because assignment is what creates it.
func NewRequest(driverID int64, driverName, origin, destination string, createdAt time.Time) (*Request, error) {
	r := &Request{
		status:        StatusAssigned,
		createdAt:     createdAt,
		updatedAt:     createdAt,
		isConstructed: true,
	}

	if driverName != "" {
		r.notes = fmt.Sprintf("Ruta - %s", driverName)
	}

	if err := errors.Join(
		r.setDriverID(driverID),
		r.setOrigin(origin),
		r.setDestination(destination),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRequest reconstructs a Request from persistent storage.
func RestoreRequest(id, driverID int64, origin, destination, status, notes string, createdAt, updatedAt time.Time) (*Request, error) {
	r := &Request{
		id:            id,
		status:        status,
		notes:         notes,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setDriverID(driverID),
		r.setOrigin(origin),
		r.setDestination(destination),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the request was created through a constructor function.
func (r *Request) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRequestIsNotConstructed
	}
	return nil
}

// ID returns the store-assigned identifier, or zero if not yet persisted.
// This is the number the tracking token encodes.
func (r *Request) ID() int64 {
	return r.id
}

// OriginAddress returns where the delivery starts.
func (r *Request) OriginAddress() string {
	return r.originAddress
}

// DestinationAddress returns where the delivery ends.
func (r *Request) DestinationAddress() string {
	return r.destinationAddress
}

// DriverID returns the mirrored driver id.
func (r *Request) DriverID() int64 {
	return r.driverID
}

// Status returns the mirrored assignment status.
func (r *Request) Status() string {
	return r.status
}

// Notes returns the free-form context attached at creation.
func (r *Request) Notes() string {
	return r.notes
}

// CreatedAt returns when the request was registered.
func (r *Request) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt returns the time of the last mirror propagation.
func (r *Request) UpdatedAt() time.Time {
	return r.updatedAt
}

// AssignDriver mirrors a confirmed assignment onto the request.
func (r *Request) AssignDriver(driverID int64, at time.Time) error {
	if err := r.setDriverID(driverID); err != nil {
		return err
	}

	r.status = StatusAssigned
	r.updatedAt = at
	return nil
}

func (r *Request) setDriverID(driverID int64) error {
	if driverID <= 0 {
		return ErrDriverIsRequired
	}
	r.driverID = driverID
	return nil
}

func (r *Request) setOrigin(origin string) error {
	if origin == "" {
		return ErrOriginIsRequired
	}
	r.originAddress = origin
	return nil
}

func (r *Request) setDestination(destination string) error {
	if destination == "" {
		return ErrDestinationIsRequired
	}
	r.destinationAddress = destination
	return nil
}
