package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrAssignCourierCommandIsNotConstructed = errors.New(
	"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
)

// AssignCourierCommand represents a request to hand a pending parcel to a courier.
// Both identifiers are required; availability and lifecycle checks happen in
// the handler under a row lock.
//
// Example:
//
//	cmd, err := NewAssignCourierCommand(parcelID, courierID)
//	if err != nil {
//	    return fmt.Errorf("invalid assignment request: %w", err)
//	}
//
//	handler := NewAssignCourierCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("assignment failed: %w", err)
//	}
type AssignCourierCommand struct { //nolint:recvcheck //using for validation
	parcelID  kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignCourierCommand creates a command to assign a courier to a parcel.
// Validates that both identifiers are valid UUIDs.
func NewAssignCourierCommand(parcelID, courierID kernel.UUID) (AssignCourierCommand, error) {
	cmd := AssignCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setCourierID(courierID),
	); err != nil {
		return AssignCourierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignCourierCommandIsNotConstructed if validation fails.
func (c AssignCourierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCourierCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to assign.
func (c AssignCourierCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// CourierID returns the identifier of the courier taking custody.
func (c AssignCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *AssignCourierCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *AssignCourierCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}
