package queries

import (
	"errors"

	"freight/internal/pkg/guard"
)

var ErrListWaybillsQueryIsNotConstructed = errors.New(
	"ListWaybillsQuery must be created via NewListWaybillsQuery constructor",
)

// ListWaybillsQuery retrieves waybills, optionally narrowed to one booking
// partner. An empty partner code lists the whole registry.
type ListWaybillsQuery struct {
	partnerCode string

	guard guard.ConstructorGuard
}

// NewListWaybillsQuery creates a query to list waybills.
func NewListWaybillsQuery(partnerCode string) ListWaybillsQuery {
	return ListWaybillsQuery{
		partnerCode: partnerCode,
		guard:       guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListWaybillsQuery) Validate() error {
	return q.guard.Validate(ErrListWaybillsQueryIsNotConstructed)
}

// PartnerCode returns the partner filter, empty for no filter.
func (q ListWaybillsQuery) PartnerCode() string {
	return q.partnerCode
}
