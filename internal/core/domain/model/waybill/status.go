package waybill

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Status represents the lifecycle state of a waybill.
// It implements a state machine with defined transitions so shipments
// follow the booking → transit → delivery workflow.
//
// State transitions:
//
//	Pending ──┬──> InTransit ──> OutForDelivery ──┬──> Delivered
//	          │                                   │
//	          └──> Cancelled                      └──> Returned
//
// Delivered, Returned, and Cancelled are terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status at booking time.
	// Only Pending waybills may join a draft manifest or be deleted.
	StatusPending

	// StatusInTransit indicates the waybill left the booking office on a
	// dispatched manifest.
	StatusInTransit

	// StatusOutForDelivery indicates the waybill was handed to a delivery
	// partner for the last mile.
	StatusOutForDelivery

	// StatusDelivered is a terminal status reached when the receiver signs
	// for the shipment.
	StatusDelivered

	// StatusReturned is a terminal status reached when delivery failed and
	// the shipment went back.
	StatusReturned

	// StatusCancelled is a terminal status for bookings voided before
	// dispatch.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "Unknown",
		StatusPending:        "Pending",
		StatusInTransit:      "In Transit",
		StatusOutForDelivery: "Out for Delivery",
		StatusDelivered:      "Delivered",
		StatusReturned:       "Returned",
		StatusCancelled:      "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:        "Pending",
		StatusInTransit:      "In Transit",
		StatusOutForDelivery: "Out for Delivery",
		StatusDelivered:      "Delivered",
		StatusReturned:       "Returned",
		StatusCancelled:      "Cancelled",
	}
}

// allowedTransitions is the single source of truth for the waybill state
// machine. A status absent from the map is terminal.
func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:        {StatusInTransit, StatusCancelled},
		StatusInTransit:      {StatusOutForDelivery},
		StatusOutForDelivery: {StatusDelivered, StatusReturned},
	}
}

// Validate checks that the Status value is one of the defined states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// CanTransitionTo reports whether the edge s → next exists in the
// transition table.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range allowedTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return len(allowedTransitions()[s]) == 0 && s.Validate() == nil
}

// AllowsDeletion reports whether a waybill in this status may be removed.
// Shipments that ever left Pending (other than by cancellation) are locked.
func (s Status) AllowsDeletion() bool {
	return s == StatusPending || s == StatusCancelled
}

// StatusFromString maps the persisted/display name back to a Status.
// Returns an error for unrecognized names.
func StatusFromString(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status name", name),
	)
}
