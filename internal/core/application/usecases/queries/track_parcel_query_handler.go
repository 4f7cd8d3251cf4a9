package queries

import (
	"context"
	"database/sql"
	"errors"

	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrackParcelQueryHandler serves the public tracking lookup from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewTrackParcelQueryHandler(db)
//	query, _ := NewTrackParcelQuery(trackingNumber)
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Tracking lookup failed: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Parcel %s is %s\n", view.TrackingNumber, view.Status)
type TrackParcelQueryHandler struct {
	db *gorm.DB
}

// NewTrackParcelQueryHandler creates a handler for public tracking lookups.
// Requires a GORM database connection for query execution.
func NewTrackParcelQueryHandler(db *gorm.DB) TrackParcelQueryHandler {
	return TrackParcelQueryHandler{db: db}
}

// Handle executes the tracking lookup.
// Returns the parcel's current status, the promised and actual delivery times
// and the full ledger newest first. Returns errs.ObjectNotFoundError when the
// tracking number is unknown.
func (h TrackParcelQueryHandler) Handle(
	ctx context.Context,
	query TrackParcelQuery,
) (TrackParcelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackParcelQueryResponse{}, err
	}

	var response TrackParcelQueryResponse
	var parcelID uuid.UUID
	var status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_number,
			status,
			estimated_delivery,
			actual_delivery_at
		FROM parcels
		WHERE tracking_number = ?
	`, query.TrackingNumber().String()).Row()

	err := row.Scan(
		&parcelID,
		&response.TrackingNumber,
		&status,
		&response.EstimatedDelivery,
		&response.ActualDeliveryAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return TrackParcelQueryResponse{}, errs.NewObjectNotFoundError(
			"trackingNumber", query.TrackingNumber().String())
	}
	if err != nil {
		return TrackParcelQueryResponse{}, err
	}

	response.Status = parcel.Status(status)

	history, err := h.loadHistory(ctx, parcelID)
	if err != nil {
		return TrackParcelQueryResponse{}, err
	}
	response.History = history

	return response, nil
}

// loadHistory reads the parcel's ledger newest first.
func (h TrackParcelQueryHandler) loadHistory(
	ctx context.Context,
	parcelID uuid.UUID,
) ([]TrackParcelHistoryEntry, error) {
	history := make([]TrackParcelHistoryEntry, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			location,
			notes,
			timestamp
		FROM tracking_events
		WHERE parcel_id = ?
		ORDER BY timestamp DESC
	`, parcelID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry TrackParcelHistoryEntry
		var status int

		if err = rows.Scan(&status, &entry.Location, &entry.Notes, &entry.Timestamp); err != nil {
			return nil, err
		}

		entry.Status = parcel.Status(status)
		history = append(history, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
