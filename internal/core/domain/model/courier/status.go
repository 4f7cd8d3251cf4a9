package courier

import (
	"fmt"

	"parceltrack/internal/pkg/errs"
)

// Status represents a courier's availability state.
//
// Available and OnBreak are chosen by the courier (or an admin); Assigned is
// derived from parcel custody and only ever set by the assignment flow.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusAvailable means the courier is free to take a parcel.
	StatusAvailable

	// StatusAssigned means the courier currently holds custody of a parcel.
	// Derived state: set by assignment, cleared by release.
	StatusAssigned

	// StatusOnBreak means the courier has opted out of new assignments.
	StatusOnBreak
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusAvailable: "available",
		StatusAssigned:  "assigned",
		StatusOnBreak:   "on_break",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusAvailable: "available",
		StatusAssigned:  "assigned",
		StatusOnBreak:   "on_break",
	}
}

// StatusFromString parses a courier status from its persisted or wire form.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}

	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid courier status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid courier status", s))
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
