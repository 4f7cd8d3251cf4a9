package queries

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrGetOverdueParcelsQueryIsNotConstructed = errors.New(
	"GetOverdueParcelsQuery must be created via NewGetOverdueParcelsQuery constructor",
)

// GetOverdueParcelsQuery retrieves parcels still in flight past their
// estimated delivery time. Backs the overdue-parcel watch job.
//
// Example:
//
//	query, _ := NewGetOverdueParcelsQuery(time.Now())
//	handler := NewGetOverdueParcelsQueryHandler(db)
//
//	overdue, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("overdue lookup failed: %w", err)
//	}
type GetOverdueParcelsQuery struct {
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewGetOverdueParcelsQuery creates a query for parcels overdue as of the given time.
func NewGetOverdueParcelsQuery(asOf time.Time) (GetOverdueParcelsQuery, error) {
	if asOf.IsZero() {
		return GetOverdueParcelsQuery{}, errs.NewValueIsRequiredError("asOf")
	}

	return GetOverdueParcelsQuery{
		asOf:  asOf,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOverdueParcelsQueryIsNotConstructed if validation fails.
func (q GetOverdueParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueParcelsQueryIsNotConstructed)
}

// AsOf returns the reference time for the overdue check.
func (q GetOverdueParcelsQuery) AsOf() time.Time {
	return q.asOf
}

// GetOverdueParcelsQueryResponse is one overdue parcel in the read model.
type GetOverdueParcelsQueryResponse struct {
	ID                kernel.UUID   `json:"id"`
	TrackingNumber    string        `json:"trackingNumber"`
	Status            parcel.Status `json:"status"`
	EstimatedDelivery time.Time     `json:"estimatedDelivery"`
}
