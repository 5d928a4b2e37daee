// Package routerepo provides data transfer objects and mapping functions for
// the append-only route computation log.
package routerepo

import (
	"time"

	"routesync/internal/core/domain/model/route"
)

// RecordDTO represents the database structure for persisting route records.
// Payloads are stored as raw JSON text for later inspection.
type RecordDTO struct {
	ID              int64  `gorm:"primaryKey;autoIncrement"`
	Origin          string
	Destination     string
	RequestPayload  string `gorm:"column:request_payload"`
	ResponsePayload string `gorm:"column:response_payload"`
	Status          string `gorm:"index"`
	CreatedAt       time.Time
}

// TableName specifies the database table name for route record entities.
func (RecordDTO) TableName() string {
	return "route_requests"
}

// fromDomain converts a route record aggregate to its database representation.
func fromDomain(aggregate *route.Record) RecordDTO {
	return RecordDTO{
		ID:              aggregate.ID(),
		Origin:          aggregate.Origin(),
		Destination:     aggregate.Destination(),
		RequestPayload:  aggregate.RequestPayload(),
		ResponsePayload: aggregate.ResponsePayload(),
		Status:          aggregate.Status(),
		CreatedAt:       aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a route record aggregate.
func toDomain(dto RecordDTO) (*route.Record, error) {
	return route.RestoreRecord(
		dto.ID,
		dto.Origin,
		dto.Destination,
		dto.RequestPayload,
		dto.ResponsePayload,
		dto.Status,
		dto.CreatedAt,
	)
}
