package queries

import (
	"errors"

	"freight/internal/pkg/guard"
)

var (
	ErrLookupRateQueryIsNotConstructed = errors.New(
		"LookupRateQuery must be created via NewLookupRateQuery constructor",
	)
	ErrStateIsRequired = errors.New("state is required")
	ErrWeightIsInvalid = errors.New("weight must be greater than 0")
)

// LookupRateQuery resolves the freight charge for a partner, destination
// state, and shipment weight against the rate table.
type LookupRateQuery struct {
	partnerCode string
	state       string
	weight      float64

	guard guard.ConstructorGuard
}

// NewLookupRateQuery creates a query to resolve one freight charge.
func NewLookupRateQuery(partnerCode, state string, weight float64) (LookupRateQuery, error) {
	query := LookupRateQuery{
		partnerCode: partnerCode,
		state:       state,
		weight:      weight,
		guard:       guard.NewConstructorGuard(),
	}

	if partnerCode == "" {
		return LookupRateQuery{}, ErrPartnerCodeIsRequired
	}
	if state == "" {
		return LookupRateQuery{}, ErrStateIsRequired
	}
	if weight <= 0 {
		return LookupRateQuery{}, ErrWeightIsInvalid
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q LookupRateQuery) Validate() error {
	return q.guard.Validate(ErrLookupRateQueryIsNotConstructed)
}

// PartnerCode returns the booking partner the rate applies to.
func (q LookupRateQuery) PartnerCode() string {
	return q.partnerCode
}

// State returns the destination state.
func (q LookupRateQuery) State() string {
	return q.state
}

// Weight returns the shipment weight in kilograms.
func (q LookupRateQuery) Weight() float64 {
	return q.weight
}

// LookupRateQueryResponse is the read model for one resolved rate.
type LookupRateQueryResponse struct {
	PartnerCode string
	State       string
	Charge      float64
}
