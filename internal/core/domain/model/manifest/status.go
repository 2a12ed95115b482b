package manifest

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Status represents the lifecycle state of a manifest.
//
// State transitions:
//
//	Draft ──> Dispatched ──┬──> Received
//	                       │        ↑↓
//	                       └──> ShortReceived
//
// Received and ShortReceived are not locked in: every verification save
// recomputes the status from the scanned-box set, so a manifest may move
// between them until the handoff is confirmed.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusDraft is the initial status while waybills are being grouped.
	// Membership changes are only allowed in Draft.
	StatusDraft

	// StatusDispatched indicates the manifest left on its vehicle leg and
	// its waybills were cascaded to In Transit.
	StatusDispatched

	// StatusReceived indicates every expected box was scanned at the hub.
	StatusReceived

	// StatusShortReceived indicates at least one expected box was missing
	// from the latest verification save.
	StatusShortReceived
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:       "Unknown",
		StatusDraft:         "Draft",
		StatusDispatched:    "Dispatched",
		StatusReceived:      "Received",
		StatusShortReceived: "Short Received",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusDraft:         "Draft",
		StatusDispatched:    "Dispatched",
		StatusReceived:      "Received",
		StatusShortReceived: "Short Received",
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
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsVerifiable reports whether box verification is meaningful in this
// status: the manifest must have been dispatched already.
func (s Status) IsVerifiable() bool {
	return s == StatusDispatched || s == StatusReceived || s == StatusShortReceived
}

// StatusFromString maps the persisted/display name back to a Status.
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
