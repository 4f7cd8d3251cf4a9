package trackingrepo

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/tracking"

	"gorm.io/gorm"
)

// GormTrackingEventRepository implements TrackingEventRepository using GORM.
// The ledger is append-only, so the repository exposes no update or delete.
type GormTrackingEventRepository struct {
	db *gorm.DB
}

// NewGormTrackingEventRepository creates a new GORM tracking event repository.
func NewGormTrackingEventRepository(db *gorm.DB) *GormTrackingEventRepository {
	return &GormTrackingEventRepository{db: db}
}

// Add appends an event to the parcel's ledger.
func (r *GormTrackingEventRepository) Add(ctx context.Context, event *tracking.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := fromDomain(event)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetAllByParcel retrieves the full ledger for a parcel, newest first.
func (r *GormTrackingEventRepository) GetAllByParcel(ctx context.Context, parcelID kernel.UUID) ([]*tracking.Event, error) {
	if err := parcelID.Validate(); err != nil {
		return nil, err
	}

	var dtos []EventDTO
	err := r.db.WithContext(ctx).
		Order("timestamp DESC").
		Find(&dtos, "parcel_id = ?", parcelID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	events := make([]*tracking.Event, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	return events, nil
}
