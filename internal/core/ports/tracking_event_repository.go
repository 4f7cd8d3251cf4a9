package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/tracking"
)

// TrackingEventRepository defines the persistence contract for the tracking
// ledger. The ledger is append-only: events are inserted and read, never
// updated or deleted.
type TrackingEventRepository interface {
	// Add appends an event to a parcel's ledger.
	Add(ctx context.Context, event *tracking.Event) error

	// GetAllByParcel retrieves a parcel's complete ledger, newest first.
	// The history is recomputed on each call; concurrent readers see a
	// consistent committed snapshot.
	GetAllByParcel(ctx context.Context, parcelID kernel.UUID) ([]*tracking.Event, error)
}
