package queries

import (
	"errors"

	"freight/internal/pkg/guard"
)

var (
	ErrListAvailableInventoryQueryIsNotConstructed = errors.New(
		"ListAvailableInventoryQuery must be created via NewListAvailableInventoryQuery constructor",
	)
	ErrPartnerCodeIsRequired = errors.New("partner code is required")
)

// ListAvailableInventoryQuery lists unused reserved numbers visible to a
// caller. Partner scoping is mandatory and applied first; within a partner,
// company-pinned numbers are visible only to that company while market
// numbers are visible to everyone.
type ListAvailableInventoryQuery struct {
	partnerCode string
	companyCode string
	marketOnly  bool

	guard guard.ConstructorGuard
}

// NewListAvailableInventoryQuery creates a query to list available numbers.
// companyCode widens the view to one company's pinned numbers plus the
// market pool; marketOnly narrows it to the market pool regardless of
// companyCode.
func NewListAvailableInventoryQuery(partnerCode, companyCode string, marketOnly bool) (ListAvailableInventoryQuery, error) {
	if partnerCode == "" {
		return ListAvailableInventoryQuery{}, ErrPartnerCodeIsRequired
	}

	return ListAvailableInventoryQuery{
		partnerCode: partnerCode,
		companyCode: companyCode,
		marketOnly:  marketOnly,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListAvailableInventoryQuery) Validate() error {
	return q.guard.Validate(ErrListAvailableInventoryQueryIsNotConstructed)
}

// PartnerCode returns the mandatory partner scope.
func (q ListAvailableInventoryQuery) PartnerCode() string {
	return q.partnerCode
}

// CompanyCode returns the selected company, empty for none.
func (q ListAvailableInventoryQuery) CompanyCode() string {
	return q.companyCode
}

// MarketOnly reports whether the view is narrowed to the market pool.
func (q ListAvailableInventoryQuery) MarketOnly() bool {
	return q.marketOnly
}

// ListAvailableInventoryQueryResponse is the read model for one available number.
type ListAvailableInventoryQueryResponse struct {
	WaybillNumber string
	PartnerCode   string
	CompanyCode   string
}
