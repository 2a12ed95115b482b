package kernel

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Role identifies the tier a partner occupies in the courier network.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleBooking marks a booking office partner, where waybills originate.
	RoleBooking

	// RoleHub marks a transfer hub partner, where manifests are verified.
	RoleHub

	// RoleDelivery marks a last-mile delivery partner.
	RoleDelivery
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "Unknown",
		RoleBooking:  "Booking",
		RoleHub:      "Hub",
		RoleDelivery: "Delivery",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleBooking:  "Booking",
		RoleHub:      "Hub",
		RoleDelivery: "Delivery",
	}
}

// Validate checks that the role is one of Booking, Hub, or Delivery.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// RoleFromString maps the wire name back to a Role.
func RoleFromString(name string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == name {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role is invalid",
		fmt.Errorf("%q is not a valid role", name),
	)
}

// ActorContext identifies the partner performing an operation. It replaces
// ambient session state: every command and scoped query receives the acting
// partner explicitly, so authorization and visibility are plain inputs.
//
// ActorContext is a value object; the zero value is invalid and must be
// created via NewActorContext.
type ActorContext struct {
	partnerCode string
	role        Role
}

// NewActorContext creates a validated actor context.
// The partner code is mandatory and the role must be a valid network tier.
func NewActorContext(partnerCode string, role Role) (ActorContext, error) {
	if partnerCode == "" {
		return ActorContext{}, errs.NewValueIsRequiredError("partnerCode")
	}
	if err := role.Validate(); err != nil {
		return ActorContext{}, err
	}

	return ActorContext{
		partnerCode: partnerCode,
		role:        role,
	}, nil
}

// PartnerCode returns the code of the acting partner.
func (a ActorContext) PartnerCode() string {
	return a.partnerCode
}

// Role returns the network tier of the acting partner.
func (a ActorContext) Role() Role {
	return a.role
}

// Validate returns an error for a zero-value actor context.
func (a ActorContext) Validate() error {
	if a.partnerCode == "" {
		return errs.NewValueIsRequiredError("actor context must be created via NewActorContext")
	}
	return a.role.Validate()
}
