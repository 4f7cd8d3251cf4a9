package commands

import (
	"errors"
	"time"

	"parceltrack/internal/pkg/guard"
)

var (
	ErrCreateParcelCommandIsNotConstructed = errors.New(
		"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
	)
	ErrSenderRefIsRequired         = errors.New("sender reference is required")
	ErrReceiverRefIsRequired       = errors.New("receiver reference is required")
	ErrWeightIsInvalid             = errors.New("weight must not be negative")
	ErrPickupAddressIsRequired     = errors.New("pickup address is required")
	ErrDeliveryAddressIsRequired   = errors.New("delivery address is required")
	ErrEstimatedDeliveryIsRequired = errors.New("estimated delivery time is required")
)

// CreateParcelCommand represents a request to register a new parcel.
// Encapsulates the shipment metadata captured at drop-off; the tracking
// number and the initial pending status are assigned by the handler.
//
// Example:
//
//	cmd, err := NewCreateParcelCommand("cust-42", "cust-77", "books",
//	    2.5, "30x20x10", "1 Origin St", "9 Destination Ave",
//	    time.Now().Add(72*time.Hour))
//	if err != nil {
//	    return fmt.Errorf("invalid parcel data: %w", err)
//	}
//
//	handler := NewCreateParcelCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to register parcel: %w", err)
//	}
//	fmt.Printf("Parcel registered with tracking number %s", created.TrackingNumber())
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	senderRef         string
	receiverRef       string
	description       string
	weight            float64
	dimensions        string
	pickupAddress     string
	deliveryAddress   string
	estimatedDelivery time.Time

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to register a new parcel.
// Validates that sender/receiver references and both addresses are non-empty,
// the weight is not negative, and an estimated delivery time is provided.
// Description and dimensions are optional free text.
func NewCreateParcelCommand(
	senderRef, receiverRef, description string,
	weight float64,
	dimensions, pickupAddress, deliveryAddress string,
	estimatedDelivery time.Time,
) (CreateParcelCommand, error) {
	cmd := CreateParcelCommand{
		description: description,
		dimensions:  dimensions,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSenderRef(senderRef),
		cmd.setReceiverRef(receiverRef),
		cmd.setWeight(weight),
		cmd.setPickupAddress(pickupAddress),
		cmd.setDeliveryAddress(deliveryAddress),
		cmd.setEstimatedDelivery(estimatedDelivery),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateParcelCommandIsNotConstructed if validation fails.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// SenderRef returns the opaque reference to the sending customer.
func (c CreateParcelCommand) SenderRef() string {
	return c.senderRef
}

// ReceiverRef returns the opaque reference to the receiving customer.
func (c CreateParcelCommand) ReceiverRef() string {
	return c.receiverRef
}

// Description returns the free-form contents description.
func (c CreateParcelCommand) Description() string {
	return c.description
}

// Weight returns the shipment weight.
func (c CreateParcelCommand) Weight() float64 {
	return c.weight
}

// Dimensions returns the free-form dimensions text.
func (c CreateParcelCommand) Dimensions() string {
	return c.dimensions
}

// PickupAddress returns the pickup endpoint.
func (c CreateParcelCommand) PickupAddress() string {
	return c.pickupAddress
}

// DeliveryAddress returns the delivery endpoint.
func (c CreateParcelCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// EstimatedDelivery returns the promised delivery time.
func (c CreateParcelCommand) EstimatedDelivery() time.Time {
	return c.estimatedDelivery
}

func (c *CreateParcelCommand) setSenderRef(senderRef string) error {
	if senderRef == "" {
		return ErrSenderRefIsRequired
	}

	c.senderRef = senderRef
	return nil
}

func (c *CreateParcelCommand) setReceiverRef(receiverRef string) error {
	if receiverRef == "" {
		return ErrReceiverRefIsRequired
	}

	c.receiverRef = receiverRef
	return nil
}

func (c *CreateParcelCommand) setWeight(weight float64) error {
	if weight < 0 {
		return ErrWeightIsInvalid
	}

	c.weight = weight
	return nil
}

func (c *CreateParcelCommand) setPickupAddress(address string) error {
	if address == "" {
		return ErrPickupAddressIsRequired
	}

	c.pickupAddress = address
	return nil
}

func (c *CreateParcelCommand) setDeliveryAddress(address string) error {
	if address == "" {
		return ErrDeliveryAddressIsRequired
	}

	c.deliveryAddress = address
	return nil
}

func (c *CreateParcelCommand) setEstimatedDelivery(estimatedDelivery time.Time) error {
	if estimatedDelivery.IsZero() {
		return ErrEstimatedDeliveryIsRequired
	}

	c.estimatedDelivery = estimatedDelivery
	return nil
}
