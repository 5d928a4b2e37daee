package queries

import (
	"context"

	"routesync/internal/core/domain/model/shift"

	"gorm.io/gorm"
)

// GetPendingShiftsQueryHandler retrieves speculative shifts from the database.
// Reads directly over SQL, bypassing the aggregate, since no business rules
// apply to a listing.
type GetPendingShiftsQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingShiftsQueryHandler creates a handler for pending shift queries.
// Requires a GORM database connection for query execution.
func NewGetPendingShiftsQueryHandler(db *gorm.DB) GetPendingShiftsQueryHandler {
	return GetPendingShiftsQueryHandler{db: db}
}

// Handle executes the query to retrieve all pending shifts.
// Results are sorted oldest first, matching the order the retention sweeper
// would purge them in.
func (h GetPendingShiftsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingShiftsQuery,
) ([]GetPendingShiftsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shifts := make([]GetPendingShiftsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			route_id,
			fecha_programada,
			hora_inicio,
			duracion_minutos,
			created_at
		FROM dynamic_shifts
		WHERE status = ?
		ORDER BY created_at
	`, shift.Pendiente.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var shiftResp GetPendingShiftsQueryResponse

		err = rows.Scan(
			&shiftResp.ID,
			&shiftResp.RouteID,
			&shiftResp.ScheduledDate,
			&shiftResp.StartTime,
			&shiftResp.DurationMinutes,
			&shiftResp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		shifts = append(shifts, shiftResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shifts, nil
}
