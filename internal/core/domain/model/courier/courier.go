package courier

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier or RestoreCourier constructor")

	// ErrCourierNotAvailable is returned when attempting to assign a courier
	// who is not in the available status. Callers may retry with another courier.
	ErrCourierNotAvailable = errors.New("courier is not available")

	// ErrStatusNotSettable is returned when a self-service status change
	// attempts to set the derived assigned status directly.
	ErrStatusNotSettable = errors.New("assigned status is derived from custody and cannot be set directly")

	// ErrCourierOnDelivery is returned when a courier holding a parcel
	// attempts a self-service status change.
	ErrCourierOnDelivery = errors.New("courier is on an active delivery")
)

// Courier represents a delivery courier in the system.
// It is an aggregate root that manages courier identity and availability.
//
// Key responsibilities:
//   - Managing courier identity (ID, vehicle type, license plate)
//   - Guarding the availability state machine around parcel custody
//
// Business rules:
//   - Custody may only be taken while the courier is available
//   - Exactly one non-terminal parcel may reference an assigned courier;
//     the aggregate enforces the status side of that invariant, the
//     assignment transaction enforces the exclusivity side
//   - Self-service status changes are limited to available and on_break,
//     and are refused while the courier holds a parcel
//
// Example usage:
//
//	courier, err := NewCourier(kernel.NewUUID(), "van", "KX-4411-M")
//	if err != nil {
//	    // Handle construction error
//	}
//	// Courier starts available and may take assignments
type Courier struct {
	// id uniquely identifies the courier
	id kernel.UUID
	// vehicleType is the kind of vehicle the courier operates
	vehicleType string
	// licensePlate identifies the courier's vehicle
	licensePlate string
	// status is the current availability state
	status Status
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// NewCourier creates a new Courier in the available status.
// This is the only way to create a fresh Courier instance.
//
// Parameters:
//   - id: Unique identifier for the courier (must be a valid UUID)
//   - vehicleType: Kind of vehicle, e.g. "bike", "van" (must be non-empty)
//   - licensePlate: Vehicle registration (must be non-empty)
//
// Returns the courier, or an aggregated validation error if any parameter
// is invalid.
func NewCourier(id kernel.UUID, vehicleType, licensePlate string) (*Courier, error) {
	courier := &Courier{
		status: StatusAvailable,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setVehicleType(vehicleType),
		courier.setLicensePlate(licensePlate),
	); err != nil {
		return nil, err
	}

	return courier, nil
}

// RestoreCourier reconstructs a Courier aggregate from persistent storage,
// preserving its availability state at the time of persistence.
func RestoreCourier(id kernel.UUID, vehicleType, licensePlate string, status Status) (*Courier, error) {
	courier, err := NewCourier(id, vehicleType, licensePlate)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	courier.status = status
	return courier, nil
}

// Validate ensures the Courier instance was properly constructed.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}

	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares two couriers by their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// VehicleType returns the kind of vehicle the courier operates.
func (c *Courier) VehicleType() string {
	return c.vehicleType
}

// LicensePlate returns the courier's vehicle registration.
func (c *Courier) LicensePlate() string {
	return c.licensePlate
}

// Status returns the current availability state.
func (c *Courier) Status() Status {
	return c.status
}

// MarkAssigned moves the courier into the assigned status when custody of a
// parcel is granted.
//
// Returns ErrCourierNotAvailable unless the courier is currently available.
// The caller must perform this check-and-flip under the same transaction that
// records custody, using a locking read, so that two concurrent assignments
// cannot both observe an available courier.
func (c *Courier) MarkAssigned() error {
	if c.status != StatusAvailable {
		return ErrCourierNotAvailable
	}

	c.status = StatusAssigned
	return nil
}

// Release returns the courier to the available status when custody ends
// (parcel delivered or failed).
//
// Release is idempotent: releasing a courier who is not assigned is a no-op,
// not an error. A courier on break stays on break.
func (c *Courier) Release() {
	if c.status == StatusAssigned {
		c.status = StatusAvailable
	}
}

// ChangeStatus performs a self-service availability change, for status
// updates unrelated to an active delivery.
//
// Returns:
//   - ErrStatusNotSettable when newStatus is the derived assigned status
//   - ErrCourierOnDelivery when the courier currently holds a parcel
//   - a validation error when newStatus is not a valid status
func (c *Courier) ChangeStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	if newStatus == StatusAssigned {
		return ErrStatusNotSettable
	}

	if c.status == StatusAssigned {
		return ErrCourierOnDelivery
	}

	c.status = newStatus
	return nil
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setVehicleType(vehicleType string) error {
	if vehicleType == "" {
		return errs.NewValueIsRequiredError("vehicleType")
	}
	c.vehicleType = vehicleType
	return nil
}

func (c *Courier) setLicensePlate(licensePlate string) error {
	if licensePlate == "" {
		return errs.NewValueIsRequiredError("licensePlate")
	}
	c.licensePlate = licensePlate
	return nil
}
