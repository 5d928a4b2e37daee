package shiftrepo

import (
	"context"
	"errors"
	"time"

	"routesync/internal/core/domain/model/shift"
	"routesync/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GormShiftRepository implements ShiftRepository using GORM.
type GormShiftRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormShiftRepository creates a new GORM shift repository.
func NewGormShiftRepository(db *gorm.DB, tracker aggregateTracker) *GormShiftRepository {
	return &GormShiftRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shift to the database and returns the generated identifier.
func (r *GormShiftRepository) Add(ctx context.Context, aggregate *shift.DynamicShift) (int64, error) {
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

// Update saves an existing shift to the database.
func (r *GormShiftRepository) Update(ctx context.Context, aggregate *shift.DynamicShift) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ShiftDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"route_id":                    dto.RouteID,
		"fecha_programada":            dto.FechaProgramada,
		"hora_inicio":                 dto.HoraInicio,
		"duracion_minutos":            dto.DuracionMinutos,
		"conduccion_continua_minutos": dto.ConduccionContinuaMinutos,
		"status":                      dto.Status,
		"creation_flow":               dto.CreationFlow,
		"assigned_at":                 dto.AssignedAt,
		"completed_at":                dto.CompletedAt,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(dto.ID, aggregate)
	return nil
}

// Get retrieves a shift by ID.
func (r *GormShiftRepository) Get(ctx context.Context, id int64) (*shift.DynamicShift, error) {
	var dto ShiftDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shift", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByRouteID retrieves the shift linked to the given route.
func (r *GormShiftRepository) GetByRouteID(ctx context.Context, routeID int64) (*shift.DynamicShift, error) {
	var dto ShiftDTO
	if err := r.db.WithContext(ctx).First(&dto, "route_id = ?", routeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("routeId", routeID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a shift by ID. Removing an absent shift is not an error.
func (r *GormShiftRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&ShiftDTO{}, "id = ?", id).Error
}

// DeleteStalePending removes pending shifts created before the given instant.
// Assignments are removed explicitly before their shifts so the sweep does
// not depend on database-level cascade rules.
func (r *GormShiftRepository) DeleteStalePending(ctx context.Context, olderThan time.Time) ([]int64, error) {
	staleIDs := make([]int64, 0)

	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT id
		FROM dynamic_shifts
		WHERE status = ? AND created_at < ?
		ORDER BY id
	`, shift.Pendiente.String(), olderThan).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return nil, err
		}
		staleIDs = append(staleIDs, id)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(staleIDs) == 0 {
		return staleIDs, nil
	}

	err = r.db.WithContext(ctx).
		Exec("DELETE FROM dynamic_shift_assignments WHERE dynamic_shift_id = ANY(?)", pq.Array(staleIDs)).
		Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).
		Exec("DELETE FROM dynamic_shifts WHERE id = ANY(?)", pq.Array(staleIDs)).
		Error
	if err != nil {
		return nil, err
	}

	return staleIDs, nil
}

// AddAssignment saves a new assignment and returns the generated identifier.
func (r *GormShiftRepository) AddAssignment(ctx context.Context, assignment *shift.Assignment) (int64, error) {
	if err := assignment.Validate(); err != nil {
		return 0, err
	}

	dto := assignmentFromDomain(assignment)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return 0, err
	}

	return dto.ID, nil
}

// ConfirmAssignments rebinds every assignment of the shift to the employee.
func (r *GormShiftRepository) ConfirmAssignments(ctx context.Context, shiftID, employeeID int64, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&AssignmentDTO{}).
		Where("dynamic_shift_id = ?", shiftID).
		Updates(map[string]any{
			"employee_id": employeeID,
			"status":      shift.Asignado.String(),
			"assigned_at": at,
		}).Error
}

// DeleteAssignmentsForShift removes all assignments of the given shift.
func (r *GormShiftRepository) DeleteAssignmentsForShift(ctx context.Context, shiftID int64) error {
	return r.db.WithContext(ctx).Delete(&AssignmentDTO{}, "dynamic_shift_id = ?", shiftID).Error
}
