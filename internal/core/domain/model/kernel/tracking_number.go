package kernel

import (
	"fmt"
	"math/rand/v2"
	"regexp"

	"parceltrack/internal/pkg/errs"
)

const (
	trackingNumberLetters = 2
	trackingNumberDigits  = 8
)

// ErrTrackingNumberIsNotConstructed indicates that a TrackingNumber was not created
// through NewRandomTrackingNumber or TrackingNumberFromString.
var ErrTrackingNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"TrackingNumber must be created via NewRandomTrackingNumber or TrackingNumberFromString",
)

var trackingNumberPattern = regexp.MustCompile(`^[A-Z]{2}[0-9]{8}$`)

// TrackingNumber is a value object representing the human-facing identifier of
// a parcel: two uppercase letters followed by eight digits, e.g. "QK30518762".
//
// A TrackingNumber drawn at random is not unique by construction; global
// uniqueness is enforced at insert time by the storage layer's unique
// constraint together with the bounded regenerate-and-retry loop in the
// create-parcel use case.
//
// The zero value is invalid and fails Validate; use one of the constructors.
type TrackingNumber struct {
	value string
}

// NewRandomTrackingNumber draws a tracking number uniformly at random.
//
// Example:
//
//	number := kernel.NewRandomTrackingNumber()
//	fmt.Println(number.String()) // e.g. "AB12345678"
func NewRandomTrackingNumber() TrackingNumber {
	buf := make([]byte, 0, trackingNumberLetters+trackingNumberDigits)
	for range trackingNumberLetters {
		buf = append(buf, byte('A'+rand.IntN(26)))
	}
	for range trackingNumberDigits {
		buf = append(buf, byte('0'+rand.IntN(10)))
	}

	return TrackingNumber{value: string(buf)}
}

// TrackingNumberFromString parses a tracking number from its string form.
// Returns a validation error if the string does not match the
// two-letters-eight-digits format.
//
// Example:
//
//	number, err := kernel.TrackingNumberFromString("AB12345678")
//	if err != nil {
//	    return fmt.Errorf("invalid tracking number: %w", err)
//	}
func TrackingNumberFromString(s string) (TrackingNumber, error) {
	if s == "" {
		return TrackingNumber{}, errs.NewValueIsRequiredError("trackingNumber")
	}

	if !trackingNumberPattern.MatchString(s) {
		return TrackingNumber{}, errs.NewValueIsInvalidErrorWithCause("trackingNumber",
			fmt.Errorf("%q does not match the 2-letters-8-digits format", s))
	}

	return TrackingNumber{value: s}, nil
}

// String returns the canonical string form of the tracking number.
func (t TrackingNumber) String() string {
	return t.value
}

// IsEqual compares two tracking numbers for equality.
func (t TrackingNumber) IsEqual(other TrackingNumber) bool {
	return t.value == other.value
}

// Validate checks that the tracking number was properly constructed.
func (t TrackingNumber) Validate() error {
	if t.value == "" {
		return ErrTrackingNumberIsNotConstructed
	}

	return nil
}
