package parcel

import (
	"errors"
	"fmt"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel instance was not created
	// through the NewParcel or RestoreParcel constructors.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel constructor")

	// ErrCourierIsRequired is returned when a transition into Assigned is attempted
	// on a parcel that holds no courier. Custody is only granted through Assign.
	ErrCourierIsRequired = errors.New("courier must hold the parcel before it enters assigned status")

	// ErrCourierIsNotAllowed is returned when restoring a parcel whose persisted
	// state pairs a courier reference with a status that permits none.
	ErrCourierIsNotAllowed = errors.New("parcel status does not permit a courier reference")

	// ErrDeliveryTimeMismatch is returned when the actual delivery time and the
	// delivered status disagree. The two are set atomically and must stay paired.
	ErrDeliveryTimeMismatch = errors.New("actual delivery time must be set exactly when status is delivered")
)

// Parcel represents a physical package moving through the pickup-to-delivery
// pipeline. It is the aggregate root that owns the parcel's identity, immutable
// metadata and lifecycle state.
//
// Parcel maintains these invariants:
//   - Must have a valid unique identifier and tracking number
//   - Sender/receiver references and both addresses must be non-empty
//   - Weight must not be negative
//   - Status transitions follow the graph defined on Status
//   - The courier reference is non-nil exactly while status is
//     Assigned, InTransit or OutForDelivery
//   - The actual delivery time is non-nil exactly when status is Delivered,
//     and is set exactly once
//
// The struct uses private fields to ensure encapsulation; all mutation goes
// through Assign and TransitionTo.
type Parcel struct {
	// id is the store-assigned, immutable identifier
	id kernel.UUID

	// trackingNumber is the globally unique, human-enterable identifier
	trackingNumber kernel.TrackingNumber

	// senderRef and receiverRef are opaque identifiers into the external
	// customer directory
	senderRef   string
	receiverRef string

	// courierID references the courier currently holding custody (nil if none)
	courierID *kernel.UUID

	// status is the current state in the parcel lifecycle
	status Status

	// weight, dimensions and description are immutable shipment metadata
	weight      float64
	dimensions  string
	description string

	// pickupAddress and deliveryAddress are immutable endpoints
	pickupAddress   string
	deliveryAddress string

	// createdAt is set once at registration
	createdAt time.Time

	// estimatedDelivery is set once at registration
	estimatedDelivery time.Time

	// actualDeliveryAt is set exactly once, on the transition into Delivered
	actualDeliveryAt *time.Time

	// isConstructed ensures the parcel was created via a constructor
	isConstructed bool
}

// NewParcel creates a new Parcel in Pending status with validation.
// This is the only way to create a fresh parcel, ensuring all business
// invariants hold from the start.
//
// Parameters:
//   - id: store-assigned unique identifier
//   - trackingNumber: randomly drawn tracking number (uniqueness is enforced at insert)
//   - senderRef, receiverRef: opaque customer directory references (required)
//   - description: free-form contents description (optional)
//   - weight: shipment weight, must not be negative
//   - dimensions: free-form dimensions text (optional)
//   - pickupAddress, deliveryAddress: required endpoints
//   - createdAt: registration time
//   - estimatedDelivery: promised delivery time, must not precede createdAt
//
// Returns the parcel, or an aggregated validation error if any parameter is invalid.
func NewParcel(
	id kernel.UUID,
	trackingNumber kernel.TrackingNumber,
	senderRef, receiverRef, description string,
	weight float64,
	dimensions, pickupAddress, deliveryAddress string,
	createdAt, estimatedDelivery time.Time,
) (*Parcel, error) {
	parcel := &Parcel{
		status:        Pending,
		description:   description,
		dimensions:    dimensions,
		isConstructed: true,
	}

	if err := errors.Join(
		parcel.setID(id),
		parcel.setTrackingNumber(trackingNumber),
		parcel.setSenderRef(senderRef),
		parcel.setReceiverRef(receiverRef),
		parcel.setWeight(weight),
		parcel.setPickupAddress(pickupAddress),
		parcel.setDeliveryAddress(deliveryAddress),
		parcel.setTimes(createdAt, estimatedDelivery),
	); err != nil {
		return nil, err
	}

	return parcel, nil
}

// RestoreParcel reconstructs a Parcel aggregate from persistent storage.
// Unlike NewParcel, which always starts in Pending, this constructor restores
// the persisted lifecycle state and verifies the cross-field invariants hold:
// the courier reference must match the status, and the actual delivery time
// must be present exactly when the status is Delivered.
func RestoreParcel(
	id kernel.UUID,
	trackingNumber kernel.TrackingNumber,
	senderRef, receiverRef, description string,
	weight float64,
	dimensions, pickupAddress, deliveryAddress string,
	status Status,
	courierID *kernel.UUID,
	createdAt, estimatedDelivery time.Time,
	actualDeliveryAt *time.Time,
) (*Parcel, error) {
	parcel, err := NewParcel(id, trackingNumber, senderRef, receiverRef, description,
		weight, dimensions, pickupAddress, deliveryAddress, createdAt, estimatedDelivery)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	if courierID != nil {
		if err = courierID.Validate(); err != nil {
			return nil, err
		}
	}

	parcel.status = status
	parcel.courierID = courierID
	parcel.actualDeliveryAt = actualDeliveryAt

	if err = parcel.validateConsistency(); err != nil {
		return nil, err
	}

	return parcel, nil
}

// Validate ensures the Parcel instance was properly constructed and that its
// cross-field invariants hold. Called by repositories before persisting.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}

	return p.validateConsistency()
}

// IsEqual compares two parcels by their unique identifiers.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's store-assigned identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// TrackingNumber returns the parcel's human-facing identifier.
func (p *Parcel) TrackingNumber() kernel.TrackingNumber {
	return p.trackingNumber
}

// SenderRef returns the opaque reference to the sending customer.
func (p *Parcel) SenderRef() string {
	return p.senderRef
}

// ReceiverRef returns the opaque reference to the receiving customer.
func (p *Parcel) ReceiverRef() string {
	return p.receiverRef
}

// Courier returns the identifier of the courier currently holding custody.
// Returns nil while the parcel is pending or in a terminal status.
func (p *Parcel) Courier() *kernel.UUID {
	return p.courierID
}

// Status returns the current lifecycle status.
func (p *Parcel) Status() Status {
	return p.status
}

// Weight returns the shipment weight.
func (p *Parcel) Weight() float64 {
	return p.weight
}

// Dimensions returns the free-form dimensions text.
func (p *Parcel) Dimensions() string {
	return p.dimensions
}

// Description returns the free-form contents description.
func (p *Parcel) Description() string {
	return p.description
}

// PickupAddress returns the pickup endpoint.
func (p *Parcel) PickupAddress() string {
	return p.pickupAddress
}

// DeliveryAddress returns the delivery endpoint.
func (p *Parcel) DeliveryAddress() string {
	return p.deliveryAddress
}

// CreatedAt returns the registration time.
func (p *Parcel) CreatedAt() time.Time {
	return p.createdAt
}

// EstimatedDelivery returns the promised delivery time.
func (p *Parcel) EstimatedDelivery() time.Time {
	return p.estimatedDelivery
}

// ActualDeliveryAt returns the actual delivery time, or nil while the parcel
// has not been delivered.
func (p *Parcel) ActualDeliveryAt() *time.Time {
	return p.actualDeliveryAt
}

// Assign grants custody of the parcel to a courier and moves the status from
// Pending to Assigned. This is the only path by which a parcel acquires a
// courier reference; the courier registry invokes it after locking and
// re-checking the courier's availability.
//
// Returns:
//   - nil on success
//   - a validation error if courierID is invalid
//   - *InvalidTransitionError if the parcel is not in Pending status
func (p *Parcel) Assign(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	newStatus, err := p.status.TransitionTo(Assigned)
	if err != nil {
		return err
	}

	p.status = newStatus
	p.courierID = &courierID
	return nil
}

// TransitionTo moves the parcel to the next lifecycle status.
//
// Business rules applied:
//   - The transition must be permitted by the status graph; violations return
//     *InvalidTransitionError and leave the parcel untouched
//   - A transition into Assigned requires custody to have been granted via
//     Assign first (ErrCourierIsRequired otherwise)
//   - A transition into Delivered records the actual delivery time (at) and
//     releases the courier reference
//   - A transition into Failed releases the courier reference
//
// Example:
//
//	if err := parcel.TransitionTo(parcel.Delivered, time.Now()); err != nil {
//	    return err // nothing was changed
//	}
//	// parcel.ActualDeliveryAt() is now set, parcel.Courier() is nil
func (p *Parcel) TransitionTo(next Status, at time.Time) error {
	if next == Assigned && p.courierID == nil {
		return ErrCourierIsRequired
	}

	newStatus, err := p.status.TransitionTo(next)
	if err != nil {
		return err
	}

	if newStatus == Delivered && at.IsZero() {
		return errs.NewValueIsRequiredError("deliveredAt")
	}

	p.status = newStatus

	switch newStatus {
	case Delivered:
		deliveredAt := at
		p.actualDeliveryAt = &deliveredAt
		p.courierID = nil
	case Failed:
		p.courierID = nil
	}

	return nil
}

// validateConsistency checks the cross-field invariants that tie the courier
// reference and the actual delivery time to the lifecycle status.
func (p *Parcel) validateConsistency() error {
	hasCourier := p.courierID != nil
	courierAllowed := p.status == Assigned || p.status == InTransit || p.status == OutForDelivery

	if hasCourier && !courierAllowed {
		return fmt.Errorf("%w: status is %s", ErrCourierIsNotAllowed, p.status)
	}

	if !hasCourier && courierAllowed {
		return fmt.Errorf("%w: status is %s", ErrCourierIsRequired, p.status)
	}

	if (p.actualDeliveryAt != nil) != (p.status == Delivered) {
		return fmt.Errorf("%w: status is %s", ErrDeliveryTimeMismatch, p.status)
	}

	return nil
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setTrackingNumber(trackingNumber kernel.TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}
	p.trackingNumber = trackingNumber
	return nil
}

func (p *Parcel) setSenderRef(senderRef string) error {
	if senderRef == "" {
		return errs.NewValueIsRequiredError("senderRef")
	}
	p.senderRef = senderRef
	return nil
}

func (p *Parcel) setReceiverRef(receiverRef string) error {
	if receiverRef == "" {
		return errs.NewValueIsRequiredError("receiverRef")
	}
	p.receiverRef = receiverRef
	return nil
}

func (p *Parcel) setWeight(weight float64) error {
	if weight < 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%g is negative", weight))
	}
	p.weight = weight
	return nil
}

func (p *Parcel) setPickupAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("pickupAddress")
	}
	p.pickupAddress = address
	return nil
}

func (p *Parcel) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	p.deliveryAddress = address
	return nil
}

func (p *Parcel) setTimes(createdAt, estimatedDelivery time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	if estimatedDelivery.IsZero() {
		return errs.NewValueIsRequiredError("estimatedDelivery")
	}
	if estimatedDelivery.Before(createdAt) {
		return errs.NewValueIsInvalidErrorWithCause("estimatedDelivery",
			fmt.Errorf("estimated delivery %s precedes creation %s", estimatedDelivery, createdAt))
	}

	p.createdAt = createdAt
	p.estimatedDelivery = estimatedDelivery
	return nil
}
