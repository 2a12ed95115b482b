package queries

import (
	"errors"

	"freight/internal/core/domain/model/routing"
	"freight/internal/pkg/guard"
)

var ErrGetPartnerAssociationQueryIsNotConstructed = errors.New(
	"GetPartnerAssociationQuery must be created via NewGetPartnerAssociationQuery constructor",
)

// GetPartnerAssociationQuery resolves the destination partner for one
// routing key. The result is advisory; manifest creation may override it.
type GetPartnerAssociationQuery struct {
	associationType routing.AssociationType
	fromPartnerCode string

	guard guard.ConstructorGuard
}

// NewGetPartnerAssociationQuery creates a query to resolve a routing key.
func NewGetPartnerAssociationQuery(
	associationType routing.AssociationType,
	fromPartnerCode string,
) (GetPartnerAssociationQuery, error) {
	if err := associationType.Validate(); err != nil {
		return GetPartnerAssociationQuery{}, err
	}
	if fromPartnerCode == "" {
		return GetPartnerAssociationQuery{}, ErrPartnerCodeIsRequired
	}

	return GetPartnerAssociationQuery{
		associationType: associationType,
		fromPartnerCode: fromPartnerCode,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPartnerAssociationQuery) Validate() error {
	return q.guard.Validate(ErrGetPartnerAssociationQueryIsNotConstructed)
}

// AssociationType returns which network leg is being resolved.
func (q GetPartnerAssociationQuery) AssociationType() routing.AssociationType {
	return q.associationType
}

// FromPartnerCode returns the origin partner of the key.
func (q GetPartnerAssociationQuery) FromPartnerCode() string {
	return q.fromPartnerCode
}

// GetPartnerAssociationQueryResponse is the read model for one routing key.
type GetPartnerAssociationQueryResponse struct {
	AssociationType string
	FromPartnerCode string
	ToPartnerCode   string
}
