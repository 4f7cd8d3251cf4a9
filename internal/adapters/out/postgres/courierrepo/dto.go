// Package courierrepo provides data transfer objects and mapping functions for courier persistence.
// This package implements the repository pattern for the courier domain aggregate, handling
// the conversion between domain entities and database representations.
package courierrepo

import (
	"parceltrack/internal/core/domain/model/courier"
	"parceltrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for persisting courier aggregates.
type CourierDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	VehicleType  string    `gorm:"type:varchar(255);not null"`
	LicensePlate string    `gorm:"type:varchar(32);not null"`
	Status       int       `gorm:"type:int;not null;index"`
}

// TableName specifies the database table name for courier entities.
// Overrides GORM's default naming convention to use "couriers" instead of "courier_dtos".
func (CourierDTO) TableName() string {
	return "couriers"
}

// fromDomain converts a courier domain aggregate to its database representation.
func fromDomain(courier *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:           courier.ID().Bytes(),
		VehicleType:  courier.VehicleType(),
		LicensePlate: courier.LicensePlate(),
		Status:       int(courier.Status()),
	}
}

// toDomain reconstructs a courier domain aggregate from its database representation.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(id, dto.VehicleType, dto.LicensePlate, courier.Status(dto.Status))
}
