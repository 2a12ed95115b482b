package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrListManifestsQueryIsNotConstructed = errors.New(
	"ListManifestsQuery must be created via NewListManifestsQuery constructor",
)

// ListManifestsQuery lists manifests, optionally narrowed to one status
// and/or one origin.
type ListManifestsQuery struct {
	status string
	origin string

	guard guard.ConstructorGuard
}

// NewListManifestsQuery creates a query to list manifests.
// Empty filters list everything.
func NewListManifestsQuery(status, origin string) ListManifestsQuery {
	return ListManifestsQuery{
		status: status,
		origin: origin,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListManifestsQuery) Validate() error {
	return q.guard.Validate(ErrListManifestsQueryIsNotConstructed)
}

// Status returns the status filter, empty for no filter.
func (q ListManifestsQuery) Status() string {
	return q.status
}

// Origin returns the origin filter, empty for no filter.
func (q ListManifestsQuery) Origin() string {
	return q.origin
}

// ListManifestsQueryResponse is the read model for one manifest row.
// Box counts are projections: WaybillCount counts members, VerifiedBoxCount
// counts scanned snapshot entries.
type ListManifestsQueryResponse struct {
	ID                  kernel.UUID
	ManifestNo          string
	Date                time.Time
	Origin              string
	Status              string
	VehicleNo           string
	DriverName          string
	DriverContact       string
	CreatorPartnerCode  string
	DeliveryPartnerCode string
	WaybillCount        int
	VerifiedBoxCount    int
}
