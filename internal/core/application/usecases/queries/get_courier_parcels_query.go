package queries

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/guard"
)

var ErrGetCourierParcelsQueryIsNotConstructed = errors.New(
	"GetCourierParcelsQuery must be created via NewGetCourierParcelsQuery constructor",
)

// GetCourierParcelsQuery retrieves a courier's active worklist: the parcels
// currently in their custody, newest first. Parcels in terminal statuses hold
// no courier reference, so completed work never shows up here.
//
// Example:
//
//	query, _ := NewGetCourierParcelsQuery(courierID)
//	handler := NewGetCourierParcelsQueryHandler(db)
//
//	worklist, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("worklist lookup failed: %w", err)
//	}
//	fmt.Printf("Courier holds %d parcels\n", len(worklist))
type GetCourierParcelsQuery struct {
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCourierParcelsQuery creates a query for a courier's active worklist.
func NewGetCourierParcelsQuery(courierID kernel.UUID) (GetCourierParcelsQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetCourierParcelsQuery{}, err
	}

	return GetCourierParcelsQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCourierParcelsQueryIsNotConstructed if validation fails.
func (q GetCourierParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierParcelsQueryIsNotConstructed)
}

// CourierID returns the courier whose worklist is requested.
func (q GetCourierParcelsQuery) CourierID() kernel.UUID {
	return q.courierID
}

// GetCourierParcelsQueryResponse is one worklist entry.
type GetCourierParcelsQueryResponse struct {
	ID                kernel.UUID   `json:"id"`
	TrackingNumber    string        `json:"trackingNumber"`
	Status            parcel.Status `json:"status"`
	PickupAddress     string        `json:"pickupAddress"`
	DeliveryAddress   string        `json:"deliveryAddress"`
	EstimatedDelivery time.Time     `json:"estimatedDelivery"`
}
