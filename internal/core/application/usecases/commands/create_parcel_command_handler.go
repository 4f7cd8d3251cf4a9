package commands

import (
	"context"
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/tracking"
	"parceltrack/internal/pkg/errs"
)

// maxTrackingNumberAttempts bounds the insert-retry loop on tracking number collisions.
const maxTrackingNumberAttempts = 5

// ErrTrackingNumberExhausted is returned when repeated tracking number draws all
// collided with existing parcels. With a 2.6 billion number space this signals
// something is wrong with the store, not with the draw.
var ErrTrackingNumberExhausted = errors.New("could not generate a unique tracking number")

// initialLedgerNote is the note recorded on the parcel's very first ledger entry.
const initialLedgerNote = "Package created and awaiting pickup"

// CreateParcelCommandHandler handles the business logic for parcel registration.
// Draws a random tracking number and inserts the parcel, retrying with a fresh
// number when the unique index reports a collision. Each attempt runs in its
// own transaction, together with the parcel's first tracking ledger entry.
//
// Example:
//
//	handler := NewCreateParcelCommandHandler(uowFactory)
//	cmd, _ := NewCreateParcelCommand("cust-42", "cust-77", "books",
//	    2.5, "30x20x10", "1 Origin St", "9 Destination Ave", eta)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("parcel registration failed: %w", err)
//	}
//	// Parcel is now pending pickup under created.TrackingNumber()
type CreateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewCreateParcelCommandHandler creates a handler for parcel registration operations.
// Requires a ParcelUoWFactory for transactional persistence.
func NewCreateParcelCommandHandler(uowFactory ParcelUoWFactory) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the parcel registration command and returns the created parcel.
// Returns ErrTrackingNumberExhausted when every attempt collided with an
// existing tracking number.
func (h CreateParcelCommandHandler) Handle(
	ctx context.Context,
	cmd CreateParcelCommand,
) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	parcelID := kernel.NewUUID()

	for range maxTrackingNumberAttempts {
		created, err := h.tryCreate(ctx, parcelID, cmd)
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			continue
		}
		if err != nil {
			return nil, err
		}

		return created, nil
	}

	return nil, ErrTrackingNumberExhausted
}

// tryCreate performs one insert attempt with a freshly drawn tracking number.
func (h CreateParcelCommandHandler) tryCreate(
	ctx context.Context,
	parcelID kernel.UUID,
	cmd CreateParcelCommand,
) (*parcel.Parcel, error) {
	now := time.Now()

	newParcel, err := parcel.NewParcel(
		parcelID,
		kernel.NewRandomTrackingNumber(),
		cmd.SenderRef(), cmd.ReceiverRef(), cmd.Description(),
		cmd.Weight(), cmd.Dimensions(),
		cmd.PickupAddress(), cmd.DeliveryAddress(),
		now, cmd.EstimatedDelivery(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ParcelRepository().Add(ctx, newParcel); err != nil {
		return nil, err
	}

	notes := initialLedgerNote
	event, err := tracking.NewEvent(
		kernel.NewUUID(), newParcel.ID(), parcel.Pending, nil, &notes, now)
	if err != nil {
		return nil, err
	}

	if err = uow.TrackingEventRepository().Add(ctx, event); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newParcel, nil
}
