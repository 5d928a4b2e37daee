package shift

import (
	"errors"
	"time"

	"routesync/internal/pkg/errs"
)

const (
	// MinDurationMinutes is the floor applied to every shift duration, even
	// when upstream timing is zero or absent.
	MinDurationMinutes = 30
	// DefaultContinuousDrivingMinutes is the regulatory continuous-driving
	// cap applied to new shifts (5 hours).
	DefaultContinuousDrivingMinutes = 300
)

// Domain errors for dynamic shift operations.
var (
	// ErrShiftIsNotConstructed is returned when using an improperly initialized DynamicShift.
	ErrShiftIsNotConstructed = errors.New("DynamicShift must be created via NewDynamicShift or RestoreDynamicShift")
	// ErrDurationTooShort is returned when a duration below the floor reaches the aggregate.
	ErrDurationTooShort = errs.NewValueIsOutOfRangeError("durationMinutes", 0, MinDurationMinutes, 24*60)
)

// DynamicShift is a schedule record generated ad hoc from a specific route
// rather than a fixed template. It is the aggregate root owning the driver
// assignments linked to it.
//
// Key invariants:
//   - durationMinutes is never below MinDurationMinutes
//   - routeID, when set, points at the route record the shift was derived
//     from; the reference is weak and scheduling never blocks on route
//     linkage
//   - status transitions follow the Status state machine
//   - deleting a shift cascades to its assignments (enforced at persistence)
type DynamicShift struct {
	// id is assigned by the store on insert; zero until then
	id int64
	// routeID is the weak reference to the originating route record
	routeID *int64
	// scheduledDate is the calendar date the shift is planned for
	scheduledDate time.Time
	// startTime is the planned start instant on the scheduled date
	startTime time.Time
	// durationMinutes is the planned length, floored at MinDurationMinutes
	durationMinutes int
	// continuousDrivingMinutes caps uninterrupted driving within the shift
	continuousDrivingMinutes int
	// status is the current lifecycle state
	status Status
	// flow tags the creation path (direct vs speculative)
	flow Flow
	// createdAt is when the shift record came into existence
	createdAt time.Time
	// assignedAt is when the shift was last confirmed to a driver
	assignedAt *time.Time
	// completedAt is when the shift finished
	completedAt *time.Time

	isConstructed bool
}

// NewDynamicShift creates a shift derived from route timing.
//
// The initial status depends on the creation flow: FlowDirect shifts are born
// Asignado with assignedAt set, FlowSpeculative shifts are born Pendiente.
// The id is assigned by the store on insert.
func NewDynamicShift(routeID *int64, startAt time.Time, durationMinutes int, flow Flow, createdAt time.Time) (*DynamicShift, error) {
	if err := flow.Validate(); err != nil {
		return nil, err
	}
	if durationMinutes < MinDurationMinutes {
		return nil, ErrDurationTooShort
	}

	s := &DynamicShift{
		routeID:                  routeID,
		durationMinutes:          durationMinutes,
		continuousDrivingMinutes: DefaultContinuousDrivingMinutes,
		status:                   flow.initialStatus(),
		flow:                     flow,
		createdAt:                createdAt,
		isConstructed:            true,
	}
	s.setStartAt(startAt)

	if s.status == Asignado {
		at := createdAt
		s.assignedAt = &at
	}

	return s, nil
}

// RestoreDynamicShift reconstructs a DynamicShift from persistent storage.
func RestoreDynamicShift(
	id int64,
	routeID *int64,
	scheduledDate time.Time,
	startTime time.Time,
	durationMinutes int,
	continuousDrivingMinutes int,
	status Status,
	flow Flow,
	createdAt time.Time,
	assignedAt *time.Time,
	completedAt *time.Time,
) (*DynamicShift, error) {
	if err := errors.Join(status.Validate(), flow.Validate()); err != nil {
		return nil, err
	}

	return &DynamicShift{
		id:                       id,
		routeID:                  routeID,
		scheduledDate:            scheduledDate,
		startTime:                startTime,
		durationMinutes:          durationMinutes,
		continuousDrivingMinutes: continuousDrivingMinutes,
		status:                   status,
		flow:                     flow,
		createdAt:                createdAt,
		assignedAt:               assignedAt,
		completedAt:              completedAt,
		isConstructed:            true,
	}, nil
}

// Validate ensures the shift was created through a constructor function.
func (s *DynamicShift) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShiftIsNotConstructed
	}
	return nil
}

// ID returns the store-assigned identifier, or zero if not yet persisted.
func (s *DynamicShift) ID() int64 {
	return s.id
}

// RouteID returns the weak reference to the originating route record, or nil
// when the tracking token could not be decoded.
func (s *DynamicShift) RouteID() *int64 {
	return s.routeID
}

// ScheduledDate returns the calendar date the shift is planned for.
func (s *DynamicShift) ScheduledDate() time.Time {
	return s.scheduledDate
}

// StartTime returns the planned start instant.
func (s *DynamicShift) StartTime() time.Time {
	return s.startTime
}

// DurationMinutes returns the planned shift length in minutes.
func (s *DynamicShift) DurationMinutes() int {
	return s.durationMinutes
}

// ContinuousDrivingMinutes returns the continuous-driving cap in minutes.
func (s *DynamicShift) ContinuousDrivingMinutes() int {
	return s.continuousDrivingMinutes
}

// Status returns the current lifecycle state.
func (s *DynamicShift) Status() Status {
	return s.status
}

// Flow returns the creation path tag.
func (s *DynamicShift) Flow() Flow {
	return s.flow
}

// CreatedAt returns when the shift record came into existence.
func (s *DynamicShift) CreatedAt() time.Time {
	return s.createdAt
}

// AssignedAt returns when the shift was last confirmed, or nil.
func (s *DynamicShift) AssignedAt() *time.Time {
	return s.assignedAt
}

// CompletedAt returns when the shift finished, or nil.
func (s *DynamicShift) CompletedAt() *time.Time {
	return s.completedAt
}

// Assign confirms the shift to a driver, transitioning it to Asignado.
// Re-confirming an already assigned shift is allowed so the operation stays
// retriable; the last confirmation wins.
func (s *DynamicShift) Assign(at time.Time) error {
	status, err := s.status.Assign()
	if err != nil {
		return err
	}

	s.status = status
	s.assignedAt = &at
	return nil
}

// Start marks the shift as running.
func (s *DynamicShift) Start() error {
	status, err := s.status.Start()
	if err != nil {
		return err
	}

	s.status = status
	return nil
}

// Complete marks the shift as finished.
func (s *DynamicShift) Complete(at time.Time) error {
	status, err := s.status.Complete()
	if err != nil {
		return err
	}

	s.status = status
	s.completedAt = &at
	return nil
}

// Cancel calls off an assigned or running shift.
func (s *DynamicShift) Cancel() error {
	status, err := s.status.Cancel()
	if err != nil {
		return err
	}

	s.status = status
	return nil
}

// RefreshTiming replaces the derived schedule parameters. It is used by the
// retry path of the scheduling sync, which upserts rather than inserting a
// duplicate shift for the same route. Only shifts that have not started yet
// may be re-timed.
func (s *DynamicShift) RefreshTiming(startAt time.Time, durationMinutes int) error {
	if err := s.status.ValidateAssign(); err != nil {
		return err
	}
	if durationMinutes < MinDurationMinutes {
		return ErrDurationTooShort
	}

	s.setStartAt(startAt)
	s.durationMinutes = durationMinutes
	return nil
}

func (s *DynamicShift) setStartAt(startAt time.Time) {
	s.scheduledDate = time.Date(startAt.Year(), startAt.Month(), startAt.Day(), 0, 0, 0, 0, startAt.Location())
	s.startTime = startAt
}
