// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery request persistence. The delivery request is the routing-facing
// mirror of a planned route; its identifier is what tracking tokens encode.
package deliveryrepo

import (
	"time"

	"routesync/internal/core/domain/model/delivery"
)

// RequestDTO represents the database structure for persisting delivery requests.
type RequestDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Origin      string
	Destination string
	DriverID    int64  `gorm:"index"`
	Status      string `gorm:"index"`
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the database table name for delivery request entities.
func (RequestDTO) TableName() string {
	return "delivery_requests"
}

// fromDomain converts a delivery request aggregate to its database representation.
func fromDomain(aggregate *delivery.Request) RequestDTO {
	return RequestDTO{
		ID:          aggregate.ID(),
		Origin:      aggregate.OriginAddress(),
		Destination: aggregate.DestinationAddress(),
		DriverID:    aggregate.DriverID(),
		Status:      aggregate.Status(),
		Notes:       aggregate.Notes(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a delivery request aggregate.
func toDomain(dto RequestDTO) (*delivery.Request, error) {
	return delivery.RestoreRequest(
		dto.ID,
		dto.DriverID,
		dto.Origin,
		dto.Destination,
		dto.Status,
		dto.Notes,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
