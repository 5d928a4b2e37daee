package route

import (
	"errors"
	"fmt"
	"time"

	"routesync/internal/pkg/errs"
)

// Attempt statuses recorded in the route log. A failed HTTP round trip to the
// provider is distinguished from a provider-side error response.
const (
	// StatusOK marks a successful route computation.
	StatusOK = "ok"
	// StatusUnreachable marks an attempt where the provider could not be
	// reached at all.
	StatusUnreachable = "error:unreachable"
)

// Domain errors for route record operations.
var (
	// ErrOriginIsRequired is returned when attempting to record an attempt without an origin.
	ErrOriginIsRequired = errs.NewValueIsRequiredError("origin")
	// ErrDestinationIsRequired is returned when attempting to record an attempt without a destination.
	ErrDestinationIsRequired = errs.NewValueIsRequiredError("destination")
	// ErrStatusIsRequired is returned when attempting to record an attempt without a status.
	ErrStatusIsRequired = errs.NewValueIsRequiredError("status")
	// ErrRecordIsNotConstructed is returned when using an improperly initialized Record.
	ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord or RestoreRecord")
)

// StatusFromCode formats a provider error response code as an attempt status,
// e.g. StatusFromCode(502) == "error:502".
func StatusFromCode(code int) string {
	return fmt.Sprintf("error:%d", code)
}

// Record is a single route computation attempt. It is append-only: once
// created and persisted it is never mutated, which is why the type has
// accessors but no state-changing methods.
type Record struct {
	// id is assigned by the store on insert; zero until then
	id int64
	// origin is the requested route origin
	origin string
	// destination is the requested route destination
	destination string
	// requestPayload is the raw request sent to the provider
	requestPayload string
	// responsePayload is the raw provider response, or the transport error text
	responsePayload string
	// status is one of StatusOK, StatusUnreachable, or StatusFromCode(n)
	status string
	// createdAt is when the attempt was recorded
	createdAt time.Time

	isConstructed bool
}

// NewRecord creates a route computation attempt ready to be appended to the
// route store. The id is assigned by the store on insert.
func NewRecord(origin, destination, requestPayload, responsePayload, status string, createdAt time.Time) (*Record, error) {
	record := &Record{
		requestPayload:  requestPayload,
		responsePayload: responsePayload,
		createdAt:       createdAt,
		isConstructed:   true,
	}

	if err := errors.Join(
		record.setOrigin(origin),
		record.setDestination(destination),
		record.setStatus(status),
	); err != nil {
		return nil, err
	}

	return record, nil
}

// RestoreRecord reconstructs a Record from persistent storage.
func RestoreRecord(id int64, origin, destination, requestPayload, responsePayload, status string, createdAt time.Time) (*Record, error) {
	record, err := NewRecord(origin, destination, requestPayload, responsePayload, status, createdAt)
	if err != nil {
		return nil, err
	}

	record.id = id
	return record, nil
}

// Validate ensures the Record was created through a constructor function.
func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

// ID returns the store-assigned identifier, or zero if not yet persisted.
func (r *Record) ID() int64 {
	return r.id
}

// Origin returns the requested route origin.
func (r *Record) Origin() string {
	return r.origin
}

// Destination returns the requested route destination.
func (r *Record) Destination() string {
	return r.destination
}

// RequestPayload returns the raw request sent to the provider.
func (r *Record) RequestPayload() string {
	return r.requestPayload
}

// ResponsePayload returns the raw provider response or transport error text.
func (r *Record) ResponsePayload() string {
	return r.responsePayload
}

// Status returns the attempt status.
func (r *Record) Status() string {
	return r.status
}

// CreatedAt returns when the attempt was recorded.
func (r *Record) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Record) setOrigin(origin string) error {
	if origin == "" {
		return ErrOriginIsRequired
	}
	r.origin = origin
	return nil
}

func (r *Record) setDestination(destination string) error {
	if destination == "" {
		return ErrDestinationIsRequired
	}
	r.destination = destination
	return nil
}

func (r *Record) setStatus(status string) error {
	if status == "" {
		return ErrStatusIsRequired
	}
	r.status = status
	return nil
}
