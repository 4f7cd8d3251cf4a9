package tracking

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

// ErrEventIsNotConstructed is returned when using an improperly initialized Event.
var ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent or RestoreEvent constructor")

// Event is a single entry in a parcel's tracking ledger: the status entered,
// where, when, and free-text notes. Events are immutable; the type exposes no
// mutating methods.
//
// The event deliberately does not validate transition legality. The ledger
// records what the parcel aggregate already accepted, keeping the audit trail
// independent from lifecycle rules.
type Event struct {
	// id is the store-assigned identifier
	id kernel.UUID
	// parcelID references the parcel this event belongs to
	parcelID kernel.UUID
	// status is the parcel status entered by the recorded transition
	status parcel.Status
	// location is optional free text describing where the event happened
	location *string
	// notes is optional free text attached by the caller
	notes *string
	// timestamp is when the event was recorded
	timestamp time.Time
	// guard ensures the event was properly constructed
	guard guard.ConstructorGuard
}

// NewEvent creates an immutable ledger entry for a parcel status change.
//
// Parameters:
//   - id: store-assigned identifier
//   - parcelID: the parcel whose ledger this event extends
//   - status: the status the parcel entered
//   - location, notes: optional free text (nil means absent)
//   - timestamp: when the change was recorded (required)
func NewEvent(
	id, parcelID kernel.UUID,
	status parcel.Status,
	location, notes *string,
	timestamp time.Time,
) (*Event, error) {
	if err := errors.Join(
		validateID("id", id),
		validateID("parcelID", parcelID),
		status.Validate(),
		validateTimestamp(timestamp),
	); err != nil {
		return nil, err
	}

	return &Event{
		id:        id,
		parcelID:  parcelID,
		status:    status,
		location:  location,
		notes:     notes,
		timestamp: timestamp,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreEvent reconstructs an Event from persistent storage.
func RestoreEvent(
	id, parcelID kernel.UUID,
	status parcel.Status,
	location, notes *string,
	timestamp time.Time,
) (*Event, error) {
	return NewEvent(id, parcelID, status, location, notes, timestamp)
}

// Validate ensures the Event instance was properly constructed.
func (e *Event) Validate() error {
	if e == nil {
		return ErrEventIsNotConstructed
	}

	return e.guard.Validate(ErrEventIsNotConstructed)
}

// ID returns the event's store-assigned identifier.
func (e *Event) ID() kernel.UUID {
	return e.id
}

// ParcelID returns the identifier of the parcel this event belongs to.
func (e *Event) ParcelID() kernel.UUID {
	return e.parcelID
}

// Status returns the parcel status entered by the recorded transition.
func (e *Event) Status() parcel.Status {
	return e.status
}

// Location returns the optional location text, or nil if absent.
func (e *Event) Location() *string {
	return e.location
}

// Notes returns the optional notes text, or nil if absent.
func (e *Event) Notes() *string {
	return e.notes
}

// Timestamp returns when the event was recorded.
func (e *Event) Timestamp() time.Time {
	return e.timestamp
}

func validateID(paramName string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(paramName, err)
	}
	return nil
}

func validateTimestamp(timestamp time.Time) error {
	if timestamp.IsZero() {
		return errs.NewValueIsRequiredError("timestamp")
	}
	return nil
}
