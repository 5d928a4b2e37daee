package deliveryrepo

import (
	"context"
	"errors"
	"time"

	"routesync/internal/core/domain/model/delivery"
	"routesync/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryRepository implements DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery request and returns the generated identifier.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Request) (int64, error) {
	if err := aggregate.Validate(); err != nil {
		return 0, err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return 0, err
	}

	r.tracker.TrackAggregate(dto.ID, aggregate)
	return dto.ID, nil
}

// Get retrieves a delivery request by ID.
func (r *GormDeliveryRepository) Get(ctx context.Context, id int64) (*delivery.Request, error) {
	var dto RequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("deliveryRequest", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// AssignDriver binds the driver to the delivery request identified by routeID.
// Returns the number of rows updated; zero rows is not an error because the
// mirror record may legitimately be gone.
func (r *GormDeliveryRepository) AssignDriver(ctx context.Context, routeID, driverID int64, at time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&RequestDTO{}).
		Where("id = ?", routeID).
		Updates(map[string]any{
			"driver_id":  driverID,
			"status":     delivery.StatusAssigned,
			"updated_at": at,
		})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
