package queries

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOverdueParcelsQueryHandler finds parcels that missed their promised
// delivery time and are still in a non-terminal status.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOverdueParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetOverdueParcelsQueryHandler creates a handler for overdue parcel queries.
// Requires a GORM database connection for query execution.
func NewGetOverdueParcelsQueryHandler(db *gorm.DB) GetOverdueParcelsQueryHandler {
	return GetOverdueParcelsQueryHandler{db: db}
}

// Handle executes the overdue parcel query.
// Returns in-flight parcels whose estimated delivery precedes the query's
// reference time, most overdue first.
func (h GetOverdueParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueParcelsQuery,
) ([]GetOverdueParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	parcels := make([]GetOverdueParcelsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_number,
			status,
			estimated_delivery
		FROM parcels
		WHERE estimated_delivery < ?
		  AND status NOT IN (?, ?)
		ORDER BY estimated_delivery
	`, query.AsOf(), int(parcel.Delivered), int(parcel.Failed)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetOverdueParcelsQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(&id, &entry.TrackingNumber, &status, &entry.EstimatedDelivery)
		if err != nil {
			return nil, err
		}

		parcelID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		entry.ID = parcelID
		entry.Status = parcel.Status(status)
		parcels = append(parcels, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
