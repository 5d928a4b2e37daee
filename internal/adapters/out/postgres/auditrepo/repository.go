package auditrepo

import (
	"context"

	"routesync/internal/core/domain/model/audit"

	"gorm.io/gorm"
)

// GormSyncAuditRepository implements SyncAuditRepository using GORM.
// Entries are written outside the synchronization transaction so a rollback
// never erases the trail of what was attempted.
type GormSyncAuditRepository struct {
	db *gorm.DB
}

// NewGormSyncAuditRepository creates a new GORM audit repository.
func NewGormSyncAuditRepository(db *gorm.DB) *GormSyncAuditRepository {
	return &GormSyncAuditRepository{db: db}
}

// Add saves a new audit entry.
func (r *GormSyncAuditRepository) Add(ctx context.Context, entry *audit.SyncEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}
