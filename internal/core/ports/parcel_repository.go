// Package ports defines repository interfaces for the parcel tracking domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
type ParcelRepository interface {
	// Add persists a new parcel aggregate to storage.
	// The tracking number is protected by a unique constraint; a collision is
	// reported as errs.ErrObjectAlreadyExists so the caller can regenerate
	// and retry.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate.
	// All mutable columns are written, including cleared courier references.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel aggregate by its store-assigned identifier.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetByTrackingNumber retrieves a parcel by its human-facing identifier.
	GetByTrackingNumber(ctx context.Context, trackingNumber kernel.TrackingNumber) (*parcel.Parcel, error)

	// GetAllByCourier retrieves the parcels currently held by a courier,
	// newest first. Given the custody invariant this is the courier's active
	// worklist; completed deliveries live in the tracking ledger.
	GetAllByCourier(ctx context.Context, courierID kernel.UUID) ([]*parcel.Parcel, error)
}
