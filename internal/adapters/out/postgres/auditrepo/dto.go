// Package auditrepo provides persistence for the saga audit trail.
package auditrepo

import (
	"time"

	"routesync/internal/core/domain/model/audit"

	"github.com/google/uuid"
)

// SyncEntryDTO represents the database structure for persisting audit entries.
type SyncEntryDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Step          string    `gorm:"index"`
	TrackingToken string    `gorm:"index"`
	Outcome       string
	Detail        string
	CreatedAt     time.Time
}

// TableName specifies the database table name for audit entries.
func (SyncEntryDTO) TableName() string {
	return "sync_audit_entries"
}

// fromDomain converts an audit entry to its database representation.
func fromDomain(entry *audit.SyncEntry) SyncEntryDTO {
	return SyncEntryDTO{
		ID:            entry.ID(),
		Step:          entry.Step(),
		TrackingToken: entry.TrackingToken(),
		Outcome:       entry.Outcome(),
		Detail:        entry.Detail(),
		CreatedAt:     entry.CreatedAt(),
	}
}
