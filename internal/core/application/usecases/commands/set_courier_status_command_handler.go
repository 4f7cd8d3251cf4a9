package commands

import (
	"context"
)

// SetCourierStatusCommandHandler changes a courier's availability status.
// The courier row is locked while the change is applied, so a concurrent
// assignment cannot slip in between the read and the write.
//
// Example:
//
//	handler := NewSetCourierStatusCommandHandler(uowFactory)
//	cmd, _ := NewSetCourierStatusCommand(courierID, courier.StatusOnBreak)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, courier.ErrCourierOnDelivery):
//	    log.Println("Courier is out with a parcel")
//	case errors.Is(err, courier.ErrStatusNotSettable):
//	    log.Println("Assigned status can only be reached through assignment")
//	case err != nil:
//	    log.Printf("Status change failed: %v", err)
//	}
type SetCourierStatusCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewSetCourierStatusCommandHandler creates a handler for courier status changes.
// Requires a CourierUoWFactory for transactional persistence.
func NewSetCourierStatusCommandHandler(uowFactory CourierUoWFactory) SetCourierStatusCommandHandler {
	return SetCourierStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the courier status change command.
func (h SetCourierStatusCommandHandler) Handle(ctx context.Context, cmd SetCourierStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()

	updatedCourier, err := courierRepo.GetForUpdate(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	if err = updatedCourier.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = courierRepo.Update(ctx, updatedCourier); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
