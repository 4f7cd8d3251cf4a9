package queries

import (
	"context"

	"parceltrack/internal/core/domain/model/courier"
	"parceltrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableCouriersQueryHandler retrieves the free courier pool from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAvailableCouriersQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableCouriersQueryHandler creates a handler for available courier queries.
// Requires a GORM database connection for query execution.
func NewGetAvailableCouriersQueryHandler(db *gorm.DB) GetAvailableCouriersQueryHandler {
	return GetAvailableCouriersQueryHandler{db: db}
}

// Handle executes the query to retrieve all available couriers.
// Results are sorted by license plate for consistent output.
func (h GetAvailableCouriersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableCouriersQuery,
) ([]GetAvailableCouriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	couriers := make([]GetAvailableCouriersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			vehicle_type,
			license_plate
		FROM couriers
		WHERE status = ?
		ORDER BY license_plate
	`, int(courier.StatusAvailable)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetAvailableCouriersQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &entry.VehicleType, &entry.LicensePlate); err != nil {
			return nil, err
		}

		courierID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		entry.ID = courierID
		couriers = append(couriers, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return couriers, nil
}
