package commands

import (
	"context"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/tracking"
)

// UpdateParcelStatusCommandHandler moves a parcel along its lifecycle.
// The aggregate enforces the transition graph; the handler persists the
// change, appends the ledger entry, and releases the courier when the
// parcel reaches a terminal status. Everything happens in one transaction,
// so an illegal transition leaves no ledger entry behind.
//
// Example:
//
//	handler := NewUpdateParcelStatusCommandHandler(uowFactory)
//	cmd, _ := NewUpdateParcelStatusCommand(parcelID, parcel.Delivered, nil, nil)
//	err := handler.Handle(ctx, cmd)
//
//	var transitionErr *parcel.InvalidTransitionError
//	if errors.As(err, &transitionErr) {
//	    log.Printf("Rejected: %v", transitionErr)
//	}
type UpdateParcelStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateParcelStatusCommandHandler creates a handler for status update operations.
// Requires a UoWFactory since terminal transitions also release the courier.
func NewUpdateParcelStatusCommandHandler(uowFactory UoWFactory) UpdateParcelStatusCommandHandler {
	return UpdateParcelStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status update command.
func (h UpdateParcelStatusCommandHandler) Handle(ctx context.Context, command UpdateParcelStatusCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()

	updatedParcel, err := parcelRepo.Get(ctx, command.ParcelID())
	if err != nil {
		return err
	}

	// The transition into a terminal status clears the courier reference
	// on the aggregate, so custody has to be captured before it.
	holdingCourierID := updatedParcel.Courier()

	now := time.Now()
	if err = updatedParcel.TransitionTo(command.Status(), now); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, updatedParcel); err != nil {
		return err
	}

	if updatedParcel.Status().IsTerminal() && holdingCourierID != nil {
		if err = h.releaseCourier(ctx, uow, *holdingCourierID); err != nil {
			return err
		}
	}

	event, err := tracking.NewEvent(
		kernel.NewUUID(), updatedParcel.ID(), updatedParcel.Status(),
		command.Location(), command.Notes(), now)
	if err != nil {
		return err
	}

	if err = uow.TrackingEventRepository().Add(ctx, event); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// releaseCourier returns the courier holding the parcel to the available pool.
func (h UpdateParcelStatusCommandHandler) releaseCourier(
	ctx context.Context,
	uow UoW,
	courierID kernel.UUID,
) error {
	courierRepo := uow.CourierRepository()

	releasedCourier, err := courierRepo.GetForUpdate(ctx, courierID)
	if err != nil {
		return err
	}

	releasedCourier.Release()
	return courierRepo.Update(ctx, releasedCourier)
}
