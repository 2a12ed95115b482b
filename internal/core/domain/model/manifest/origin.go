package manifest

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Origin identifies which network tier created the manifest: a booking
// office consolidating outbound shipments, or a hub forwarding them.
type Origin int

const (
	// OriginUnknown represents an invalid or undefined origin.
	OriginUnknown Origin = iota

	// OriginBooking marks a manifest created at a booking office.
	OriginBooking

	// OriginHub marks a manifest created at a transfer hub.
	OriginHub
)

func getOriginStrings() map[Origin]string {
	return map[Origin]string{
		OriginUnknown: "unknown",
		OriginBooking: "booking",
		OriginHub:     "hub",
	}
}

// Validate checks that the origin is booking or hub.
func (o Origin) Validate() error {
	if o != OriginBooking && o != OriginHub {
		return errs.NewValueIsInvalidErrorWithCause("origin is invalid", fmt.Errorf("%d is not a valid origin", o))
	}
	return nil
}

// String returns the wire name of the origin ("booking" or "hub").
func (o Origin) String() string {
	if str, ok := getOriginStrings()[o]; ok {
		return str
	}
	return "unknown"
}

// OriginFromString maps the wire name back to an Origin.
func OriginFromString(name string) (Origin, error) {
	switch name {
	case "booking":
		return OriginBooking, nil
	case "hub":
		return OriginHub, nil
	default:
		return OriginUnknown, errs.NewValueIsInvalidErrorWithCause(
			"origin is invalid",
			fmt.Errorf("%q is not a valid origin name", name),
		)
	}
}
