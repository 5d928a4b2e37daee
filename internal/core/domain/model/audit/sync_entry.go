// Package audit provides the saga audit trail. Every step of the route
// synchronization sequence writes a timestamped entry so that state left
// behind by a partial failure can be reconciled manually. Writes are
// best-effort: losing an audit entry never fails the step it describes.
package audit

import (
	"errors"
	"time"

	"routesync/internal/pkg/errs"

	"github.com/google/uuid"
)

// Outcomes recorded per saga step.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Saga step names recorded by the orchestration sequence.
const (
	StepComputeRoute = "compute_route"
	StepAssignRoute  = "assign_route"
	StepSyncShift    = "sync_shift"
	StepConfirm      = "confirm_assignment"
)

// Domain errors for audit entries.
var (
	// ErrStepIsRequired is returned when creating an entry without a step name.
	ErrStepIsRequired = errs.NewValueIsRequiredError("step")
	// ErrOutcomeIsInvalid is returned for outcomes other than ok/error.
	ErrOutcomeIsInvalid = errs.NewValueIsInvalidError("outcome")
	// ErrSyncEntryIsNotConstructed is returned when using an improperly initialized SyncEntry.
	ErrSyncEntryIsNotConstructed = errors.New("SyncEntry must be created via NewSyncEntry")
)

// SyncEntry is one timestamped record of a saga step. Entries are immutable.
type SyncEntry struct {
	id            uuid.UUID
	step          string
	trackingToken string
	outcome       string
	detail        string
	createdAt     time.Time

	isConstructed bool
}

// NewSyncEntry creates an audit entry for a saga step. The tracking token may
// be empty when the step failed before a token existed.
func NewSyncEntry(step, trackingToken, outcome, detail string, createdAt time.Time) (*SyncEntry, error) {
	if step == "" {
		return nil, ErrStepIsRequired
	}
	if outcome != OutcomeOK && outcome != OutcomeError {
		return nil, ErrOutcomeIsInvalid
	}

	return &SyncEntry{
		id:            uuid.New(),
		step:          step,
		trackingToken: trackingToken,
		outcome:       outcome,
		detail:        detail,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreSyncEntry reconstructs a SyncEntry from persistent storage.
func RestoreSyncEntry(id uuid.UUID, step, trackingToken, outcome, detail string, createdAt time.Time) (*SyncEntry, error) {
	entry, err := NewSyncEntry(step, trackingToken, outcome, detail, createdAt)
	if err != nil {
		return nil, err
	}

	entry.id = id
	return entry, nil
}

// Validate ensures the entry was created through a constructor function.
func (e *SyncEntry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrSyncEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry identifier.
func (e *SyncEntry) ID() uuid.UUID {
	return e.id
}

// Step returns the saga step name.
func (e *SyncEntry) Step() string {
	return e.step
}

// TrackingToken returns the token the step was operating on, if any.
func (e *SyncEntry) TrackingToken() string {
	return e.trackingToken
}

// Outcome returns OutcomeOK or OutcomeError.
func (e *SyncEntry) Outcome() string {
	return e.outcome
}

// Detail returns human-readable context, e.g. the error text.
func (e *SyncEntry) Detail() string {
	return e.detail
}

// CreatedAt returns when the step ran.
func (e *SyncEntry) CreatedAt() time.Time {
	return e.createdAt
}
