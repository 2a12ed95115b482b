package commands

import (
	"errors"

	"freight/internal/core/domain/model/routing"
	"freight/internal/pkg/guard"
)

var ErrSetPartnerAssociationCommandIsNotConstructed = errors.New(
	"SetPartnerAssociationCommand must be created via NewSetPartnerAssociationCommand constructor",
)

// SetPartnerAssociationCommand represents a request to point a routing key
// at a destination partner. The previous destination, if any, is replaced;
// no history is kept.
type SetPartnerAssociationCommand struct { //nolint:recvcheck //using for validation
	association *routing.Association

	guard guard.ConstructorGuard
}

// NewSetPartnerAssociationCommand creates a command to set a routing association.
func NewSetPartnerAssociationCommand(
	associationType routing.AssociationType,
	fromPartnerCode string,
	toPartnerCode string,
) (SetPartnerAssociationCommand, error) {
	association, err := routing.NewAssociation(associationType, fromPartnerCode, toPartnerCode)
	if err != nil {
		return SetPartnerAssociationCommand{}, err
	}

	return SetPartnerAssociationCommand{
		association: association,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetPartnerAssociationCommand) Validate() error {
	return c.guard.Validate(ErrSetPartnerAssociationCommandIsNotConstructed)
}

// Association returns the association to store.
func (c SetPartnerAssociationCommand) Association() *routing.Association {
	return c.association
}
