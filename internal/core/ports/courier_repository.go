package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/courier"
	"parceltrack/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates.
type CourierRepository interface {
	// Add persists a new courier aggregate to storage.
	Add(ctx context.Context, courier *courier.Courier) error

	// Update persists changes to an existing courier aggregate.
	Update(ctx context.Context, courier *courier.Courier) error

	// Get retrieves a courier aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetForUpdate retrieves a courier with a row-level lock held for the
	// remainder of the surrounding transaction (SELECT ... FOR UPDATE).
	//
	// Assignment must read the courier through this method so that the
	// available-status check and the flip to assigned happen under the same
	// lock; otherwise two concurrent assignments could both observe an
	// available courier and both succeed.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetAllAvailable retrieves all couriers currently free to take a parcel.
	GetAllAvailable(ctx context.Context) ([]*courier.Courier, error)
}
