package commands

import (
	"context"
	"fmt"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/tracking"
)

// AssignCourierCommandHandler hands a pending parcel to a specific courier.
// The courier row is locked for the duration of the transaction, so two
// concurrent assignments of the same courier serialize and the second one
// sees the updated status and fails with courier.ErrCourierNotAvailable.
//
// Example:
//
//	handler := NewAssignCourierCommandHandler(uowFactory)
//	cmd, _ := NewAssignCourierCommand(parcelID, courierID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, courier.ErrCourierNotAvailable):
//	    log.Println("Courier already has a parcel")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	default:
//	    log.Println("Courier assigned")
//	}
type AssignCourierCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignCourierCommandHandler creates a handler for courier assignment operations.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewAssignCourierCommandHandler(uowFactory UoWFactory) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the courier assignment command.
// Loads the parcel, locks and re-checks the courier, moves both aggregates
// into their assigned states and appends a ledger entry, all within a single
// transaction.
func (h AssignCourierCommandHandler) Handle(ctx context.Context, command AssignCourierCommand) error {
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
	courierRepo := uow.CourierRepository()

	assignedParcel, err := parcelRepo.Get(ctx, command.ParcelID())
	if err != nil {
		return err
	}

	assignedCourier, err := courierRepo.GetForUpdate(ctx, command.CourierID())
	if err != nil {
		return err
	}

	if err = assignedCourier.MarkAssigned(); err != nil {
		return err
	}

	if err = assignedParcel.Assign(assignedCourier.ID()); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, assignedParcel); err != nil {
		return err
	}

	if err = courierRepo.Update(ctx, assignedCourier); err != nil {
		return err
	}

	notes := fmt.Sprintf("Courier #%s assigned to package", assignedCourier.ID())
	event, err := tracking.NewEvent(
		kernel.NewUUID(), assignedParcel.ID(), parcel.Assigned, nil, &notes, time.Now())
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
