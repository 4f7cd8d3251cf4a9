// Package trackingrepo persists the append-only tracking ledger.
// Events are written once and never updated or deleted.
package trackingrepo

import (
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/tracking"

	"github.com/google/uuid"
)

// EventDTO represents the database structure for persisting tracking events.
type EventDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Status    int       `gorm:"type:int;not null"`
	Location  *string   `gorm:"type:varchar(255)"`
	Notes     *string   `gorm:"type:text"`
	Timestamp time.Time `gorm:"not null;index"`
}

// TableName specifies the database table name for tracking events.
func (EventDTO) TableName() string {
	return "tracking_events"
}

// fromDomain converts a tracking event to its database representation.
func fromDomain(event *tracking.Event) EventDTO {
	return EventDTO{
		ID:        event.ID().Bytes(),
		ParcelID:  event.ParcelID().Bytes(),
		Status:    int(event.Status()),
		Location:  event.Location(),
		Notes:     event.Notes(),
		Timestamp: event.Timestamp(),
	}
}

// toDomain reconstructs a tracking event from its database representation.
func toDomain(dto EventDTO) (*tracking.Event, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}

	return tracking.RestoreEvent(id, parcelID, parcel.Status(dto.Status), dto.Location, dto.Notes, dto.Timestamp)
}
