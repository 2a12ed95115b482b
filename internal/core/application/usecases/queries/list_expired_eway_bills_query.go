package queries

import (
	"errors"
	"time"

	"freight/internal/pkg/guard"
)

var ErrListExpiredEWayBillsQueryIsNotConstructed = errors.New(
	"ListExpiredEWayBillsQuery must be created via NewListExpiredEWayBillsQuery constructor",
)

// ListExpiredEWayBillsQuery finds waybills still in flight whose e-way bill
// validity lapsed before the given cutoff. Delivered and cancelled waybills
// are out of scope: their movement is over.
type ListExpiredEWayBillsQuery struct {
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewListExpiredEWayBillsQuery creates a query for lapsed e-way bills.
func NewListExpiredEWayBillsQuery(asOf time.Time) (ListExpiredEWayBillsQuery, error) {
	if asOf.IsZero() {
		return ListExpiredEWayBillsQuery{}, errors.New("asOf time is required")
	}

	return ListExpiredEWayBillsQuery{
		asOf:  asOf,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListExpiredEWayBillsQuery) Validate() error {
	return q.guard.Validate(ErrListExpiredEWayBillsQueryIsNotConstructed)
}

// AsOf returns the expiry cutoff.
func (q ListExpiredEWayBillsQuery) AsOf() time.Time {
	return q.asOf
}

// ExpiredEWayBillResponse is the read model for one lapsed e-way bill.
type ExpiredEWayBillResponse struct {
	WaybillNumber      string
	PartnerCode        string
	Status             string
	EWayBillExpiryDate time.Time
}
