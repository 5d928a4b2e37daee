package ports

import (
	"context"

	"routesync/internal/core/domain/model/audit"
)

// SyncAuditRepository defines the persistence contract for the saga audit
// trail. Entries are append-only and written best-effort.
type SyncAuditRepository interface {
	// Add persists a new audit entry.
	Add(ctx context.Context, entry *audit.SyncEntry) error
}
