package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrCreateCourierCommandIsNotConstructed = errors.New(
		"CreateCourierCommand must be created via NewCreateCourierCommand constructor",
	)
	ErrVehicleTypeIsRequired  = errors.New("vehicle type is required")
	ErrLicensePlateIsRequired = errors.New("license plate is required")
)

// CreateCourierCommand represents a request to register a new courier.
// New couriers always start in the available status.
//
// Example:
//
//	courierID := kernel.NewUUID()
//	cmd, err := NewCreateCourierCommand(courierID, "bike", "AB-123")
//	if err != nil {
//	    return fmt.Errorf("invalid courier data: %w", err)
//	}
//
//	handler := NewCreateCourierCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register courier: %w", err)
//	}
type CreateCourierCommand struct { //nolint:recvcheck //using for validation
	courierID    kernel.UUID
	vehicleType  string
	licensePlate string

	guard guard.ConstructorGuard
}

// NewCreateCourierCommand creates a command to register a new courier.
// Validates that the courier ID is valid and vehicle type and license plate
// are non-empty.
func NewCreateCourierCommand(courierID kernel.UUID, vehicleType, licensePlate string) (CreateCourierCommand, error) {
	cmd := CreateCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCourierID(courierID),
		cmd.setVehicleType(vehicleType),
		cmd.setLicensePlate(licensePlate),
	); err != nil {
		return CreateCourierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateCourierCommandIsNotConstructed if validation fails.
func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

// CourierID returns the unique identifier for the courier.
func (c CreateCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

// VehicleType returns the courier's vehicle type.
func (c CreateCourierCommand) VehicleType() string {
	return c.vehicleType
}

// LicensePlate returns the courier's license plate.
func (c CreateCourierCommand) LicensePlate() string {
	return c.licensePlate
}

func (c *CreateCourierCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *CreateCourierCommand) setVehicleType(vehicleType string) error {
	if vehicleType == "" {
		return ErrVehicleTypeIsRequired
	}

	c.vehicleType = vehicleType
	return nil
}

func (c *CreateCourierCommand) setLicensePlate(licensePlate string) error {
	if licensePlate == "" {
		return ErrLicensePlateIsRequired
	}

	c.licensePlate = licensePlate
	return nil
}
