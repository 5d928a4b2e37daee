package routerepo

import (
	"context"
	"errors"

	"routesync/internal/core/domain/model/route"
	"routesync/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRouteRecordRepository implements RouteRecordRepository using GORM.
// The log is written outside the synchronization transaction: losing an
// entry must never fail the operation it describes, so the repository runs
// on the plain connection rather than a unit of work.
type GormRouteRecordRepository struct {
	db *gorm.DB
}

// NewGormRouteRecordRepository creates a new GORM route record repository.
func NewGormRouteRecordRepository(db *gorm.DB) *GormRouteRecordRepository {
	return &GormRouteRecordRepository{db: db}
}

// Add saves a new route record and returns the generated identifier.
func (r *GormRouteRecordRepository) Add(ctx context.Context, aggregate *route.Record) (int64, error) {
	if err := aggregate.Validate(); err != nil {
		return 0, err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return 0, err
	}

	return dto.ID, nil
}

// Get retrieves a route record by ID.
func (r *GormRouteRecordRepository) Get(ctx context.Context, id int64) (*route.Record, error) {
	var dto RecordDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("routeRecord", id)
		}
		return nil, err
	}

	return toDomain(dto)
}
