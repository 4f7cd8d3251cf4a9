package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/guard"
)

var ErrUpdateParcelStatusCommandIsNotConstructed = errors.New(
	"UpdateParcelStatusCommand must be created via NewUpdateParcelStatusCommand constructor",
)

// UpdateParcelStatusCommand represents a request to move a parcel along its
// lifecycle. Location and notes are optional free text recorded on the
// resulting ledger entry.
//
// Example:
//
//	cmd, err := NewUpdateParcelStatusCommand(parcelID, parcel.InTransit, &hub, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid status update: %w", err)
//	}
//
//	handler := NewUpdateParcelStatusCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("status update failed: %w", err)
//	}
type UpdateParcelStatusCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	status   parcel.Status
	location *string
	notes    *string

	guard guard.ConstructorGuard
}

// NewUpdateParcelStatusCommand creates a command to update a parcel's status.
// Validates the parcel identifier and the target status. Whether the
// transition is legal from the parcel's current status is decided by the
// aggregate inside the handler's transaction.
func NewUpdateParcelStatusCommand(
	parcelID kernel.UUID,
	status parcel.Status,
	location, notes *string,
) (UpdateParcelStatusCommand, error) {
	cmd := UpdateParcelStatusCommand{
		location: location,
		notes:    notes,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setStatus(status),
	); err != nil {
		return UpdateParcelStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateParcelStatusCommandIsNotConstructed if validation fails.
func (c UpdateParcelStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelStatusCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to update.
func (c UpdateParcelStatusCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Status returns the target lifecycle status.
func (c UpdateParcelStatusCommand) Status() parcel.Status {
	return c.status
}

// Location returns the optional location text for the ledger entry.
func (c UpdateParcelStatusCommand) Location() *string {
	return c.location
}

// Notes returns the optional notes text for the ledger entry.
func (c UpdateParcelStatusCommand) Notes() *string {
	return c.notes
}

func (c *UpdateParcelStatusCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *UpdateParcelStatusCommand) setStatus(status parcel.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
