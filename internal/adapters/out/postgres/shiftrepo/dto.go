// Package shiftrepo provides data transfer objects and mapping functions for
// dynamic shift persistence. This package implements the repository pattern
// for the shift aggregate and its assignments, handling the conversion
// between domain entities and database representations.
//
// Column names follow the scheduling system of record, which keeps its
// schedule vocabulary in Spanish.
package shiftrepo

import (
	"time"

	"routesync/internal/core/domain/model/shift"
)

// ShiftDTO represents the database structure for persisting shift aggregates.
// The route reference is nullable: shifts synchronized with an undecodable
// tracking token carry no link back to their route.
type ShiftDTO struct {
	ID                        int64      `gorm:"primaryKey;autoIncrement"`
	RouteID                   *int64     `gorm:"index"`
	FechaProgramada           time.Time  `gorm:"column:fecha_programada"`
	HoraInicio                time.Time  `gorm:"column:hora_inicio"`
	DuracionMinutos           int        `gorm:"column:duracion_minutos"`
	ConduccionContinuaMinutos int        `gorm:"column:conduccion_continua_minutos"`
	Status                    string     `gorm:"index"`
	CreationFlow              string     `gorm:"column:creation_flow"`
	CreatedAt                 time.Time  `gorm:"index"`
	AssignedAt                *time.Time
	CompletedAt               *time.Time

	Assignments []AssignmentDTO `gorm:"foreignKey:DynamicShiftID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for shift entities.
func (ShiftDTO) TableName() string {
	return "dynamic_shifts"
}

// AssignmentDTO represents the database structure for persisting shift
// assignments. A driver can hold a given role on a shift only once.
type AssignmentDTO struct {
	ID             int64      `gorm:"primaryKey;autoIncrement"`
	DynamicShiftID int64      `gorm:"column:dynamic_shift_id;uniqueIndex:idx_shift_employee_role"`
	EmployeeID     int64      `gorm:"uniqueIndex:idx_shift_employee_role"`
	RoleInShift    string     `gorm:"column:role_in_shift;uniqueIndex:idx_shift_employee_role"`
	Status         string
	AssignedAt     time.Time
	StartedAt      *time.Time
	CompletedAt    *time.Time
}

// TableName specifies the database table name for assignment entities.
func (AssignmentDTO) TableName() string {
	return "dynamic_shift_assignments"
}

// fromDomain converts a shift domain aggregate to its database representation.
func fromDomain(aggregate *shift.DynamicShift) ShiftDTO {
	return ShiftDTO{
		ID:                        aggregate.ID(),
		RouteID:                   aggregate.RouteID(),
		FechaProgramada:           aggregate.ScheduledDate(),
		HoraInicio:                aggregate.StartTime(),
		DuracionMinutos:           aggregate.DurationMinutes(),
		ConduccionContinuaMinutos: aggregate.ContinuousDrivingMinutes(),
		Status:                    aggregate.Status().String(),
		CreationFlow:              aggregate.Flow().String(),
		CreatedAt:                 aggregate.CreatedAt(),
		AssignedAt:                aggregate.AssignedAt(),
		CompletedAt:               aggregate.CompletedAt(),
	}
}

// toDomain converts a database DTO to a shift domain aggregate.
func toDomain(dto ShiftDTO) (*shift.DynamicShift, error) {
	return shift.RestoreDynamicShift(
		dto.ID,
		dto.RouteID,
		dto.FechaProgramada,
		dto.HoraInicio,
		dto.DuracionMinutos,
		dto.ConduccionContinuaMinutos,
		shift.Status(dto.Status),
		shift.Flow(dto.CreationFlow),
		dto.CreatedAt,
		dto.AssignedAt,
		dto.CompletedAt,
	)
}

// assignmentFromDomain converts an assignment entity to its database representation.
func assignmentFromDomain(assignment *shift.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:             assignment.ID(),
		DynamicShiftID: assignment.ShiftID(),
		EmployeeID:     assignment.EmployeeID(),
		RoleInShift:    assignment.RoleInShift(),
		Status:         assignment.Status().String(),
		AssignedAt:     assignment.AssignedAt(),
		StartedAt:      assignment.StartedAt(),
		CompletedAt:    assignment.CompletedAt(),
	}
}
