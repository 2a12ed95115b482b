// Package routing contains the advisory next-hop table between partner
// tiers. An association only pre-fills a suggested destination partner for
// new manifests; it never blocks manifest creation or dispatch, and the
// target partner's role is deliberately not validated.
package routing

import (
	"errors"
	"fmt"

	"freight/internal/pkg/errs"
)

// AssociationType names the network edge an association describes.
type AssociationType int

const (
	// AssociationUnknown represents an invalid or undefined type.
	AssociationUnknown AssociationType = iota

	// BookingToHub routes a booking office's manifests to a transfer hub.
	BookingToHub

	// HubToHub routes between transfer hubs.
	HubToHub

	// HubToDelivery routes a hub's outbound manifests to a delivery partner.
	HubToDelivery
)

func getAssociationTypeStrings() map[AssociationType]string {
	return map[AssociationType]string{
		AssociationUnknown: "unknown",
		BookingToHub:       "bookingToHub",
		HubToHub:           "hubToHub",
		HubToDelivery:      "hubToDelivery",
	}
}

// Validate checks that the type names a real network edge.
func (t AssociationType) Validate() error {
	if t != BookingToHub && t != HubToHub && t != HubToDelivery {
		return errs.NewValueIsInvalidErrorWithCause(
			"associationType is invalid",
			fmt.Errorf("%d is not a valid association type", t),
		)
	}
	return nil
}

// String returns the wire name of the association type.
func (t AssociationType) String() string {
	if str, ok := getAssociationTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// AssociationTypeFromString maps the wire name back to an AssociationType.
func AssociationTypeFromString(name string) (AssociationType, error) {
	switch name {
	case "bookingToHub":
		return BookingToHub, nil
	case "hubToHub":
		return HubToHub, nil
	case "hubToDelivery":
		return HubToDelivery, nil
	default:
		return AssociationUnknown, errs.NewValueIsInvalidErrorWithCause(
			"associationType is invalid",
			fmt.Errorf("%q is not a valid association type", name),
		)
	}
}

// ErrAssociationIsNotConstructed is returned when an Association was not
// created through NewAssociation.
var ErrAssociationIsNotConstructed = errors.New("Association must be created via NewAssociation constructor")

// Association is one advisory routing entry, keyed by (type, fromCode).
// At most one destination exists per key; setting again overwrites it, and
// no history is kept.
type Association struct {
	associationType AssociationType
	fromPartnerCode string
	toPartnerCode   string

	isConstructed bool
}

// NewAssociation creates a routing entry pointing fromPartnerCode at
// toPartnerCode for the given edge type.
func NewAssociation(associationType AssociationType, fromPartnerCode, toPartnerCode string) (*Association, error) {
	a := &Association{
		isConstructed: true,
	}

	if err := errors.Join(
		a.setType(associationType),
		a.setFromPartnerCode(fromPartnerCode),
		a.setToPartnerCode(toPartnerCode),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate ensures the Association was created through the constructor.
func (a *Association) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAssociationIsNotConstructed
	}
	return nil
}

// Type returns the network edge of the entry.
func (a *Association) Type() AssociationType {
	return a.associationType
}

// FromPartnerCode returns the source partner of the entry.
func (a *Association) FromPartnerCode() string {
	return a.fromPartnerCode
}

// ToPartnerCode returns the suggested destination partner.
func (a *Association) ToPartnerCode() string {
	return a.toPartnerCode
}

func (a *Association) setType(associationType AssociationType) error {
	if err := associationType.Validate(); err != nil {
		return err
	}
	a.associationType = associationType
	return nil
}

func (a *Association) setFromPartnerCode(fromPartnerCode string) error {
	if fromPartnerCode == "" {
		return errs.NewValueIsRequiredError("fromPartnerCode")
	}
	a.fromPartnerCode = fromPartnerCode
	return nil
}

func (a *Association) setToPartnerCode(toPartnerCode string) error {
	if toPartnerCode == "" {
		return errs.NewValueIsRequiredError("toPartnerCode")
	}
	a.toPartnerCode = toPartnerCode
	return nil
}
