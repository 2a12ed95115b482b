package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrListWaybillsByManifestQueryIsNotConstructed = errors.New(
	"ListWaybillsByManifestQuery must be created via NewListWaybillsByManifestQuery constructor",
)

// ListWaybillsByManifestQuery retrieves the member waybills of a manifest
// in membership order.
type ListWaybillsByManifestQuery struct {
	manifestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListWaybillsByManifestQuery creates a query to list a manifest's waybills.
func NewListWaybillsByManifestQuery(manifestID kernel.UUID) (ListWaybillsByManifestQuery, error) {
	if err := manifestID.Validate(); err != nil {
		return ListWaybillsByManifestQuery{}, err
	}

	return ListWaybillsByManifestQuery{
		manifestID: manifestID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListWaybillsByManifestQuery) Validate() error {
	return q.guard.Validate(ErrListWaybillsByManifestQueryIsNotConstructed)
}

// ManifestID returns the identifier of the manifest to expand.
func (q ListWaybillsByManifestQuery) ManifestID() kernel.UUID {
	return q.manifestID
}
