package queries

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrGetCustomerParcelsQueryIsNotConstructed = errors.New(
	"GetCustomerParcelsQuery must be created via NewGetCustomerParcelsQuery constructor",
)

// GetCustomerParcelsQuery retrieves every parcel a customer is party to,
// as sender or as receiver, newest first. Unlike the courier worklist,
// delivered and failed parcels stay in this list; it is the customer's
// shipping history, not an active queue.
type GetCustomerParcelsQuery struct {
	customerRef string

	guard guard.ConstructorGuard
}

// NewGetCustomerParcelsQuery creates a query for a customer's parcel list.
// The reference is the opaque identifier the external customer directory
// issued; an empty reference is rejected.
func NewGetCustomerParcelsQuery(customerRef string) (GetCustomerParcelsQuery, error) {
	if customerRef == "" {
		return GetCustomerParcelsQuery{}, errs.NewValueIsRequiredError("customerRef")
	}

	return GetCustomerParcelsQuery{
		customerRef: customerRef,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCustomerParcelsQueryIsNotConstructed if validation fails.
func (q GetCustomerParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerParcelsQueryIsNotConstructed)
}

// CustomerRef returns the customer directory reference being queried.
func (q GetCustomerParcelsQuery) CustomerRef() string {
	return q.customerRef
}

// GetCustomerParcelsQueryResponse is one entry in a customer's parcel list.
type GetCustomerParcelsQueryResponse struct {
	ID                kernel.UUID   `json:"id"`
	TrackingNumber    string        `json:"trackingNumber"`
	Status            parcel.Status `json:"status"`
	PickupAddress     string        `json:"pickupAddress"`
	DeliveryAddress   string        `json:"deliveryAddress"`
	EstimatedDelivery time.Time     `json:"estimatedDelivery"`
	ActualDeliveryAt  *time.Time    `json:"actualDeliveryAt,omitempty"`
}
