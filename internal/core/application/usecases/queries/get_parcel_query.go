package queries

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/guard"
)

var ErrGetParcelQueryIsNotConstructed = errors.New(
	"GetParcelQuery must be created via NewGetParcelQuery constructor",
)

// GetParcelQuery retrieves the full parcel record by its store identifier.
// Unlike the public tracking view, the response includes customer references
// and the current courier, so callers must be authorized.
//
// Example:
//
//	query, _ := NewGetParcelQuery(parcelID)
//	handler := NewGetParcelQueryHandler(db)
//
//	record, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("parcel lookup failed: %w", err)
//	}
type GetParcelQuery struct {
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetParcelQuery creates a query to retrieve a parcel by identifier.
func NewGetParcelQuery(parcelID kernel.UUID) (GetParcelQuery, error) {
	if err := parcelID.Validate(); err != nil {
		return GetParcelQuery{}, err
	}

	return GetParcelQuery{
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetParcelQueryIsNotConstructed if validation fails.
func (q GetParcelQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelQueryIsNotConstructed)
}

// ParcelID returns the identifier being looked up.
func (q GetParcelQuery) ParcelID() kernel.UUID {
	return q.parcelID
}

// GetParcelQueryResponse is the full parcel read model for authorized callers.
type GetParcelQueryResponse struct {
	ID                kernel.UUID   `json:"id"`
	TrackingNumber    string        `json:"trackingNumber"`
	SenderRef         string        `json:"senderRef"`
	ReceiverRef       string        `json:"receiverRef"`
	CourierID         *kernel.UUID  `json:"courierId,omitempty"`
	Status            parcel.Status `json:"status"`
	Weight            float64       `json:"weight"`
	Dimensions        string        `json:"dimensions"`
	Description       string        `json:"description"`
	PickupAddress     string        `json:"pickupAddress"`
	DeliveryAddress   string        `json:"deliveryAddress"`
	CreatedAt         time.Time     `json:"createdAt"`
	EstimatedDelivery time.Time     `json:"estimatedDelivery"`
	ActualDeliveryAt  *time.Time    `json:"actualDeliveryAt,omitempty"`
}
