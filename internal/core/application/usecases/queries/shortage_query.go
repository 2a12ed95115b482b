package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrShortageQueryIsNotConstructed = errors.New(
	"ShortageQuery must be created via NewShortageQuery constructor",
)

// ShortageQuery lists the boxes of a manifest that have not been scanned.
type ShortageQuery struct {
	manifestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewShortageQuery creates a query to compute a manifest's shortage.
func NewShortageQuery(manifestID kernel.UUID) (ShortageQuery, error) {
	if err := manifestID.Validate(); err != nil {
		return ShortageQuery{}, err
	}

	return ShortageQuery{
		manifestID: manifestID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ShortageQuery) Validate() error {
	return q.guard.Validate(ErrShortageQueryIsNotConstructed)
}

// ManifestID returns the identifier of the manifest to inspect.
func (q ShortageQuery) ManifestID() kernel.UUID {
	return q.manifestID
}
