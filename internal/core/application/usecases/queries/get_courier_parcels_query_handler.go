package queries

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCourierParcelsQueryHandler retrieves a courier's active worklist from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetCourierParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierParcelsQueryHandler creates a handler for courier worklist queries.
// Requires a GORM database connection for query execution.
func NewGetCourierParcelsQueryHandler(db *gorm.DB) GetCourierParcelsQueryHandler {
	return GetCourierParcelsQueryHandler{db: db}
}

// Handle executes the worklist query.
// Returns the parcels currently held by the courier, newest first. An unknown
// courier simply yields an empty worklist.
func (h GetCourierParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetCourierParcelsQuery,
) ([]GetCourierParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	parcels := make([]GetCourierParcelsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_number,
			status,
			pickup_address,
			delivery_address,
			estimated_delivery
		FROM parcels
		WHERE courier_id = ?
		ORDER BY created_at DESC
	`, query.CourierID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetCourierParcelsQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&entry.TrackingNumber,
			&status,
			&entry.PickupAddress,
			&entry.DeliveryAddress,
			&entry.EstimatedDelivery,
		)
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
