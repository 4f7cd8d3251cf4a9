// Package parcelrepo provides data transfer objects and mapping functions for
// parcel persistence. This package implements the repository pattern for the
// parcel domain aggregate, handling the conversion between domain entities and
// database representations.
package parcelrepo

import (
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel aggregates.
// The tracking number carries the unique index that backs the
// generate-then-insert-with-retry scheme at creation time.
type ParcelDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TrackingNumber    string     `gorm:"type:varchar(10);uniqueIndex"`
	SenderRef         string     `gorm:"index"`
	ReceiverRef       string     `gorm:"index"`
	CourierID         *uuid.UUID `gorm:"type:uuid;index"`
	Description       string
	Weight            float64
	Dimensions        string
	Status            int `gorm:"index"`
	PickupAddress     string
	DeliveryAddress   string
	CreatedAt         time.Time
	EstimatedDelivery time.Time
	ActualDeliveryAt  *time.Time
}

// TableName specifies the database table name for parcel entities.
func (ParcelDTO) TableName() string {
	return "parcels"
}

// fromDomain converts a parcel domain aggregate to its database representation.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	return ParcelDTO{
		ID:                aggregate.ID().Bytes(),
		TrackingNumber:    aggregate.TrackingNumber().String(),
		SenderRef:         aggregate.SenderRef(),
		ReceiverRef:       aggregate.ReceiverRef(),
		CourierID:         courierID,
		Description:       aggregate.Description(),
		Weight:            aggregate.Weight(),
		Dimensions:        aggregate.Dimensions(),
		Status:            int(aggregate.Status()),
		PickupAddress:     aggregate.PickupAddress(),
		DeliveryAddress:   aggregate.DeliveryAddress(),
		CreatedAt:         aggregate.CreatedAt(),
		EstimatedDelivery: aggregate.EstimatedDelivery(),
		ActualDeliveryAt:  aggregate.ActualDeliveryAt(),
	}
}

// toDomain converts a database DTO to a parcel domain aggregate using RestoreParcel.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	trackingNumber, err := kernel.TrackingNumberFromString(dto.TrackingNumber)
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}

		courierID = &cID
	}

	return parcel.RestoreParcel(
		id, trackingNumber,
		dto.SenderRef, dto.ReceiverRef, dto.Description,
		dto.Weight, dto.Dimensions,
		dto.PickupAddress, dto.DeliveryAddress,
		parcel.Status(dto.Status), courierID,
		dto.CreatedAt, dto.EstimatedDelivery, dto.ActualDeliveryAt,
	)
}
