package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/courier"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrSetCourierStatusCommandIsNotConstructed = errors.New(
	"SetCourierStatusCommand must be created via NewSetCourierStatusCommand constructor",
)

// SetCourierStatusCommand represents a request to change a courier's
// availability. Only available and on_break can be requested directly;
// the assigned status is reserved for the assignment flow, and the
// aggregate rejects it.
//
// Example:
//
//	cmd, err := NewSetCourierStatusCommand(courierID, courier.StatusOnBreak)
//	if err != nil {
//	    return fmt.Errorf("invalid status request: %w", err)
//	}
//
//	handler := NewSetCourierStatusCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("status change failed: %w", err)
//	}
type SetCourierStatusCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	status    courier.Status

	guard guard.ConstructorGuard
}

// NewSetCourierStatusCommand creates a command to change a courier's status.
// Validates the courier identifier and the target status value. Whether the
// change is allowed from the courier's current state is decided by the
// aggregate inside the handler's transaction.
func NewSetCourierStatusCommand(courierID kernel.UUID, status courier.Status) (SetCourierStatusCommand, error) {
	cmd := SetCourierStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCourierID(courierID),
		cmd.setStatus(status),
	); err != nil {
		return SetCourierStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetCourierStatusCommandIsNotConstructed if validation fails.
func (c SetCourierStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetCourierStatusCommandIsNotConstructed)
}

// CourierID returns the identifier of the courier to update.
func (c SetCourierStatusCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Status returns the requested availability status.
func (c SetCourierStatusCommand) Status() courier.Status {
	return c.status
}

func (c *SetCourierStatusCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *SetCourierStatusCommand) setStatus(status courier.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
