package shift

import (
	"errors"
	"time"

	"routesync/internal/pkg/errs"
)

// RolePrimaryDriver is the role given to the driver a route is synced to.
// Additional crew (assistants, custody) may carry other roles on the same shift.
const RolePrimaryDriver = "Conductor Principal"

// Domain errors for assignment operations.
var (
	// ErrEmployeeIsRequired is returned when creating an assignment without an employee.
	ErrEmployeeIsRequired = errs.NewValueIsRequiredError("employeeID")
	// ErrRoleIsRequired is returned when creating an assignment without a role.
	ErrRoleIsRequired = errs.NewValueIsRequiredError("roleInShift")
	// ErrShiftIDIsRequired is returned when creating an assignment without an owning shift.
	ErrShiftIDIsRequired = errs.NewValueIsRequiredError("shiftID")
	// ErrAssignmentIsNotConstructed is returned when using an improperly initialized Assignment.
	ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment or RestoreAssignment")
)

// Assignment links an employee to a dynamic shift in a given role. It is
// owned by the shift: deleting the shift cascades to its assignments. The
// (shiftID, employeeID, roleInShift) triple is unique.
type Assignment struct {
	// id is assigned by the store on insert; zero until then
	id int64
	// shiftID is the owning dynamic shift
	shiftID int64
	// employeeID identifies the assigned employee
	employeeID int64
	// roleInShift is the crew role, e.g. RolePrimaryDriver
	roleInShift string
	// status is the assignment lifecycle state (never Pendiente)
	status Status
	// assignedAt is when the assignment was made or last confirmed
	assignedAt time.Time
	// startedAt is when the employee started working the shift
	startedAt *time.Time
	// completedAt is when the employee finished the shift
	completedAt *time.Time

	isConstructed bool
}

// NewAssignment creates an assignment of an employee to a shift.
// Assignments are born Asignado; there is no pending assignment state.
func NewAssignment(shiftID, employeeID int64, roleInShift string, assignedAt time.Time) (*Assignment, error) {
	a := &Assignment{
		status:        Asignado,
		assignedAt:    assignedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setShiftID(shiftID),
		a.setEmployeeID(employeeID),
		a.setRoleInShift(roleInShift),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAssignment reconstructs an Assignment from persistent storage.
func RestoreAssignment(
	id, shiftID, employeeID int64,
	roleInShift string,
	status Status,
	assignedAt time.Time,
	startedAt, completedAt *time.Time,
) (*Assignment, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	a := &Assignment{
		id:            id,
		status:        status,
		assignedAt:    assignedAt,
		startedAt:     startedAt,
		completedAt:   completedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setShiftID(shiftID),
		a.setEmployeeID(employeeID),
		a.setRoleInShift(roleInShift),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate ensures the assignment was created through a constructor function.
func (a *Assignment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAssignmentIsNotConstructed
	}
	return nil
}

// ID returns the store-assigned identifier, or zero if not yet persisted.
func (a *Assignment) ID() int64 {
	return a.id
}

// ShiftID returns the owning dynamic shift id.
func (a *Assignment) ShiftID() int64 {
	return a.shiftID
}

// EmployeeID returns the assigned employee id.
func (a *Assignment) EmployeeID() int64 {
	return a.employeeID
}

// RoleInShift returns the crew role.
func (a *Assignment) RoleInShift() string {
	return a.roleInShift
}

// Status returns the assignment lifecycle state.
func (a *Assignment) Status() Status {
	return a.status
}

// AssignedAt returns when the assignment was made or last confirmed.
func (a *Assignment) AssignedAt() time.Time {
	return a.assignedAt
}

// StartedAt returns when the employee started working the shift, or nil.
func (a *Assignment) StartedAt() *time.Time {
	return a.startedAt
}

// CompletedAt returns when the employee finished the shift, or nil.
func (a *Assignment) CompletedAt() *time.Time {
	return a.completedAt
}

// Confirm re-points the assignment at the confirming employee and refreshes
// the assignment timestamp. Confirming twice is allowed; the last confirmed
// employee wins.
func (a *Assignment) Confirm(employeeID int64, at time.Time) error {
	if err := a.setEmployeeID(employeeID); err != nil {
		return err
	}

	a.status = Asignado
	a.assignedAt = at
	return nil
}

// Start marks the assignment as in progress.
func (a *Assignment) Start(at time.Time) error {
	status, err := a.status.Start()
	if err != nil {
		return err
	}

	a.status = status
	a.startedAt = &at
	return nil
}

// Complete marks the assignment as finished.
func (a *Assignment) Complete(at time.Time) error {
	status, err := a.status.Complete()
	if err != nil {
		return err
	}

	a.status = status
	a.completedAt = &at
	return nil
}

func (a *Assignment) setShiftID(shiftID int64) error {
	if shiftID <= 0 {
		return ErrShiftIDIsRequired
	}
	a.shiftID = shiftID
	return nil
}

func (a *Assignment) setEmployeeID(employeeID int64) error {
	if employeeID <= 0 {
		return ErrEmployeeIsRequired
	}
	a.employeeID = employeeID
	return nil
}

func (a *Assignment) setRoleInShift(roleInShift string) error {
	if roleInShift == "" {
		return ErrRoleIsRequired
	}
	a.roleInShift = roleInShift
	return nil
}
