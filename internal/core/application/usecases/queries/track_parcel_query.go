// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/guard"
)

var ErrTrackParcelQueryIsNotConstructed = errors.New(
	"TrackParcelQuery must be created via NewTrackParcelQuery constructor",
)

// TrackParcelQuery retrieves the public tracking view for a parcel by its
// tracking number. This is the lookup behind the unauthenticated tracking
// endpoint, so the response deliberately omits customer references and
// courier identity.
//
// Example:
//
//	trackingNumber, _ := kernel.TrackingNumberFromString("AB12345678")
//	query, _ := NewTrackParcelQuery(trackingNumber)
//	handler := NewTrackParcelQueryHandler(db)
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("tracking lookup failed: %w", err)
//	}
//	fmt.Printf("Parcel is %s, %d ledger entries\n", view.Status, len(view.History))
type TrackParcelQuery struct {
	trackingNumber kernel.TrackingNumber

	guard guard.ConstructorGuard
}

// NewTrackParcelQuery creates a query for the public tracking view.
// Validates the tracking number format.
func NewTrackParcelQuery(trackingNumber kernel.TrackingNumber) (TrackParcelQuery, error) {
	if err := trackingNumber.Validate(); err != nil {
		return TrackParcelQuery{}, err
	}

	return TrackParcelQuery{
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrTrackParcelQueryIsNotConstructed if validation fails.
func (q TrackParcelQuery) Validate() error {
	return q.guard.Validate(ErrTrackParcelQueryIsNotConstructed)
}

// TrackingNumber returns the tracking number being looked up.
func (q TrackParcelQuery) TrackingNumber() kernel.TrackingNumber {
	return q.trackingNumber
}

// TrackParcelQueryResponse is the public tracking read model.
type TrackParcelQueryResponse struct {
	TrackingNumber    string                    `json:"trackingNumber"`
	Status            parcel.Status             `json:"status"`
	EstimatedDelivery time.Time                 `json:"estimatedDelivery"`
	ActualDeliveryAt  *time.Time                `json:"actualDeliveryAt,omitempty"`
	History           []TrackParcelHistoryEntry `json:"history"`
}

// TrackParcelHistoryEntry is one ledger entry in the public tracking view.
// Entries are ordered newest first.
type TrackParcelHistoryEntry struct {
	Status    parcel.Status `json:"status"`
	Location  *string       `json:"location,omitempty"`
	Notes     *string       `json:"notes,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}
