// Package queries contains read-only operations against the freight store.
// Implements the Query side of the CQRS architecture: handlers read with
// raw SQL through GORM and return flat read models, bypassing the
// aggregates entirely.
package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrGetWaybillQueryIsNotConstructed = errors.New(
	"GetWaybillQuery must be created via NewGetWaybillQuery constructor",
)

// GetWaybillQuery retrieves a single waybill by its identifier.
type GetWaybillQuery struct {
	waybillID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetWaybillQuery creates a query to retrieve one waybill.
func NewGetWaybillQuery(waybillID kernel.UUID) (GetWaybillQuery, error) {
	if err := waybillID.Validate(); err != nil {
		return GetWaybillQuery{}, err
	}

	return GetWaybillQuery{
		waybillID: waybillID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWaybillQuery) Validate() error {
	return q.guard.Validate(ErrGetWaybillQueryIsNotConstructed)
}

// WaybillID returns the identifier to look up.
func (q GetWaybillQuery) WaybillID() kernel.UUID {
	return q.waybillID
}

// GetWaybillQueryResponse is the read model for a single waybill.
type GetWaybillQueryResponse struct {
	ID                 kernel.UUID
	WaybillNumber      string
	PartnerCode        string
	NumberOfBoxes      int
	PackageWeight      float64
	ReceiverCity       string
	ReceiverState      string
	Status             string
	ShippingDate       time.Time
	DeliveryDate       *time.Time
	ReceivedBy         string
	EWayBillExpiryDate *time.Time
}
