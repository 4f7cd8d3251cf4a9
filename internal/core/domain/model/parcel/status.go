package parcel

import (
	"errors"
	"fmt"

	"parceltrack/internal/pkg/errs"
)

// ErrInvalidTransition is the sentinel error wrapped by every rejected status
// transition. Use errors.Is to classify transition failures.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status represents the lifecycle state of a parcel.
// It implements a state machine with defined transitions so that out-of-order
// updates (e.g. delivered before assigned) are rejected at the boundary
// instead of silently corrupting the tracking ledger.
//
// State transitions:
//
//	Pending ──> Assigned ──> InTransit ──> OutForDelivery ──> Delivered
//	   │            │            │               │
//	   └────────────┴────────────┴───────────────┴──> Failed
//
// Delivered and Failed are terminal: no further transitions are permitted.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a parcel is first registered.
	// Parcels in this status are awaiting courier assignment and pickup.
	Pending

	// Assigned indicates a courier has taken custody of the parcel.
	Assigned

	// InTransit indicates the parcel is moving through the delivery network.
	InTransit

	// OutForDelivery indicates the parcel is on the courier's final run
	// to the delivery address.
	OutForDelivery

	// Delivered indicates the parcel reached its receiver.
	// This is a terminal status.
	Delivered

	// Failed indicates the delivery was abandoned (refused, lost, undeliverable).
	// This is a terminal status, reachable from any non-terminal status.
	Failed
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Pending:        "pending",
		Assigned:       "assigned",
		InTransit:      "in_transit",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Failed:         "failed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "pending",
		Assigned:       "assigned",
		InTransit:      "in_transit",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Failed:         "failed",
	}
}

// forwardTransitions maps each status to its single forward successor.
// Failed is reachable from every non-terminal status and is handled separately.
func forwardTransitions() map[Status]Status {
	return map[Status]Status{
		Pending:        Assigned,
		Assigned:       InTransit,
		InTransit:      OutForDelivery,
		OutForDelivery: Delivered,
	}
}

// StatusFromString parses a status from its persisted or wire representation.
// Returns an error for unknown strings and for "unknown" itself.
//
// Example:
//
//	status, err := parcel.StatusFromString("in_transit")
//	if err != nil {
//	    return fmt.Errorf("bad status: %w", err)
//	}
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Assigned, InTransit, OutForDelivery,
// Delivered, Failed. Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status.
// Implements fmt.Stringer; safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler so JSON payloads carry
// status names rather than numeric codes.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(b []byte) error {
	parsed, err := StatusFromString(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// IsTerminal reports whether the status permits no further transitions.
// Delivered and Failed are terminal; parcels in these statuses are retained
// for audit but never mutated again.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Failed
}

// CanTransitionTo reports whether the state machine permits moving from the
// current status to next. Forward moves advance exactly one step; Failed is
// allowed from any non-terminal status; terminal statuses allow nothing.
func (s Status) CanTransitionTo(next Status) bool {
	if s.Validate() != nil || next.Validate() != nil {
		return false
	}

	if s.IsTerminal() {
		return false
	}

	if next == Failed {
		return true
	}

	return forwardTransitions()[s] == next
}

// TransitionTo validates and performs a status transition.
//
// Returns:
//   - (next, nil) when the transition is permitted by the graph
//   - (Unknown, *InvalidTransitionError) otherwise; the error wraps
//     ErrInvalidTransition for classification
//
// Example:
//
//	next, err := status.TransitionTo(parcel.InTransit)
//	if err != nil {
//	    var invalid *parcel.InvalidTransitionError
//	    if errors.As(err, &invalid) {
//	        // reject the update, nothing was changed
//	    }
//	}
func (s Status) TransitionTo(next Status) (Status, error) {
	if !s.CanTransitionTo(next) {
		return Unknown, &InvalidTransitionError{From: s, To: next}
	}

	return next, nil
}

// InvalidTransitionError reports a status-graph violation: the requested
// status is not reachable from the current one.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
