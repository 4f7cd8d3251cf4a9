package queries

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerParcelsQueryHandler retrieves a customer's parcel list from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetCustomerParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerParcelsQueryHandler creates a handler for customer parcel list queries.
// Requires a GORM database connection for query execution.
func NewGetCustomerParcelsQueryHandler(db *gorm.DB) GetCustomerParcelsQueryHandler {
	return GetCustomerParcelsQueryHandler{db: db}
}

// Handle executes the customer parcel list query.
// Returns the parcels the customer sent or is receiving, newest first. An
// unknown reference simply yields an empty list.
func (h GetCustomerParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerParcelsQuery,
) ([]GetCustomerParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	parcels := make([]GetCustomerParcelsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_number,
			status,
			pickup_address,
			delivery_address,
			estimated_delivery,
			actual_delivery_at
		FROM parcels
		WHERE sender_ref = ? OR receiver_ref = ?
		ORDER BY created_at DESC
	`, query.CustomerRef(), query.CustomerRef()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetCustomerParcelsQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&entry.TrackingNumber,
			&status,
			&entry.PickupAddress,
			&entry.DeliveryAddress,
			&entry.EstimatedDelivery,
			&entry.ActualDeliveryAt,
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
