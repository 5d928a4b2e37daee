package shift

import (
	"fmt"

	"routesync/internal/pkg/errs"
)

// Status represents the lifecycle state of a dynamic shift or of a driver
// assignment within it. It implements a state machine with defined
// transitions to ensure shifts follow the correct business workflow.
//
// State transitions:
//
//	Pendiente ──> Asignado ──> EnCurso ──> Completado
//	                  │            │
//	                  └──> Cancelado <──┘
//
// Statuses are persisted as their Spanish string values, matching the
// scheduling system of record.
type Status string

const (
	// Pendiente is the initial status of speculative shifts awaiting
	// confirmation by a scheduler.
	Pendiente Status = "pendiente"

	// Asignado indicates a driver has been assigned and the shift is
	// confirmed. Direct-flow shifts are created in this status.
	Asignado Status = "asignado"

	// EnCurso indicates the shift is being executed.
	EnCurso Status = "en_curso"

	// Completado indicates the shift finished. Final state.
	Completado Status = "completado"

	// Cancelado indicates the shift was called off. Final state.
	Cancelado Status = "cancelado"
)

// getValidStatuses returns the set of statuses accepted from external sources.
func getValidStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		Pendiente:  {},
		Asignado:   {},
		EnCurso:    {},
		Completado: {},
		Cancelado:  {},
	}
}

// Validate checks if the Status value is valid.
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String returns the persisted string form of the status.
func (s Status) String() string {
	return string(s)
}

// ValidateAssign checks if the status allows assignment without performing
// the transition. Reassignment of an already assigned shift is allowed; the
// confirm operation relies on that to be retriable.
func (s Status) ValidateAssign() error {
	if s != Pendiente && s != Asignado {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to assign", s),
		)
	}
	return nil
}

// Assign transitions the status to Asignado.
//
// Valid transitions:
//   - Pendiente -> Asignado (confirmation of a speculative shift)
//   - Asignado -> Asignado (reassignment / retried confirmation)
func (s Status) Assign() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return "", err
	}
	return Asignado, nil
}

// Start transitions the status to EnCurso. Only assigned shifts can start.
func (s Status) Start() (Status, error) {
	if s != Asignado {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to start", s),
		)
	}
	return EnCurso, nil
}

// Complete transitions the status to Completado. Only running shifts complete.
func (s Status) Complete() (Status, error) {
	if s != EnCurso {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to complete", s),
		)
	}
	return Completado, nil
}

// Cancel transitions the status to Cancelado.
//
// Valid transitions:
//   - Asignado -> Cancelado
//   - EnCurso -> Cancelado
//
// Pendiente shifts are removed by the retention sweeper or unassign rather
// than cancelled, and finished shifts stay finished.
func (s Status) Cancel() (Status, error) {
	if s != Asignado && s != EnCurso {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to cancel", s),
		)
	}
	return Cancelado, nil
}
