package kernel

import (
	"strings"

	"parcelmarket/internal/pkg/errs"

	"github.com/google/uuid"
)

// trackingNumberPrefix marks platform tracking numbers. The format is stable:
// once a number is assigned to a delivery it is never regenerated.
const trackingNumberPrefix = "PM-"

// TrackingNumber is a value object holding the unique, immutable tracking code
// assigned to a delivery at creation. The concrete format is "PM-" followed by
// twelve uppercase hex characters derived from a random UUID; uniqueness is backed
// by a unique index on the deliveries table.
type TrackingNumber struct {
	value string
}

// NewTrackingNumber generates a fresh tracking number.
func NewTrackingNumber() TrackingNumber {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return TrackingNumber{
		value: trackingNumberPrefix + strings.ToUpper(raw[:12]),
	}
}

// TrackingNumberFromString reconstructs a tracking number from persistence or
// external input. The value must be non-empty and carry the platform prefix.
func TrackingNumberFromString(s string) (TrackingNumber, error) {
	if s == "" {
		return TrackingNumber{}, errs.NewValueIsRequiredError("trackingNumber")
	}
	if !strings.HasPrefix(s, trackingNumberPrefix) {
		return TrackingNumber{}, errs.NewValueIsInvalidError("trackingNumber")
	}
	return TrackingNumber{value: s}, nil
}

// String returns the tracking number in its wire format.
func (t TrackingNumber) String() string {
	return t.value
}

// IsEqual compares two tracking numbers by value.
func (t TrackingNumber) IsEqual(other TrackingNumber) bool {
	return t.value == other.value
}

// Validate reports whether the tracking number was properly constructed.
func (t TrackingNumber) Validate() error {
	if t.value == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}
	return nil
}
