package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrExpectedBoxesQueryIsNotConstructed = errors.New(
	"ExpectedBoxesQuery must be created via NewExpectedBoxesQuery constructor",
)

// ExpectedBoxesQuery derives the full scannable box set of a manifest.
// Boxes are never stored; the set is recomputed from the member waybills
// on every call.
type ExpectedBoxesQuery struct {
	manifestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewExpectedBoxesQuery creates a query to derive a manifest's box set.
func NewExpectedBoxesQuery(manifestID kernel.UUID) (ExpectedBoxesQuery, error) {
	if err := manifestID.Validate(); err != nil {
		return ExpectedBoxesQuery{}, err
	}

	return ExpectedBoxesQuery{
		manifestID: manifestID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ExpectedBoxesQuery) Validate() error {
	return q.guard.Validate(ErrExpectedBoxesQueryIsNotConstructed)
}

// ManifestID returns the identifier of the manifest to expand.
func (q ExpectedBoxesQuery) ManifestID() kernel.UUID {
	return q.manifestID
}

// BoxResponse is the read model for one derived box.
type BoxResponse struct {
	BoxID         string
	WaybillNumber string
	BoxNumber     int
	Destination   string
	Verified      bool
}
