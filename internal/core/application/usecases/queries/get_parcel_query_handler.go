package queries

import (
	"context"
	"database/sql"
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetParcelQueryHandler retrieves full parcel records from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetParcelQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelQueryHandler creates a handler for parcel detail lookups.
// Requires a GORM database connection for query execution.
func NewGetParcelQueryHandler(db *gorm.DB) GetParcelQueryHandler {
	return GetParcelQueryHandler{db: db}
}

// Handle executes the parcel lookup.
// Returns errs.ObjectNotFoundError when the identifier is unknown.
func (h GetParcelQueryHandler) Handle(
	ctx context.Context,
	query GetParcelQuery,
) (GetParcelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetParcelQueryResponse{}, err
	}

	var response GetParcelQueryResponse
	var id uuid.UUID
	var courierID *uuid.UUID
	var status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_number,
			sender_ref,
			receiver_ref,
			courier_id,
			status,
			weight,
			dimensions,
			description,
			pickup_address,
			delivery_address,
			created_at,
			estimated_delivery,
			actual_delivery_at
		FROM parcels
		WHERE id = ?
	`, query.ParcelID().Bytes()).Row()

	err := row.Scan(
		&id,
		&response.TrackingNumber,
		&response.SenderRef,
		&response.ReceiverRef,
		&courierID,
		&status,
		&response.Weight,
		&response.Dimensions,
		&response.Description,
		&response.PickupAddress,
		&response.DeliveryAddress,
		&response.CreatedAt,
		&response.EstimatedDelivery,
		&response.ActualDeliveryAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetParcelQueryResponse{}, errs.NewObjectNotFoundError(
			"parcel", query.ParcelID().String())
	}
	if err != nil {
		return GetParcelQueryResponse{}, err
	}

	parcelID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetParcelQueryResponse{}, err
	}
	response.ID = parcelID

	if courierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*courierID)[:])
		if courierErr != nil {
			return GetParcelQueryResponse{}, courierErr
		}
		response.CourierID = &cID
	}

	response.Status = parcel.Status(status)

	return response, nil
}
