package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/manifest"
)

// ManifestRepository defines the persistence contract for manifest aggregates.
// Provides methods for storing, retrieving, and querying manifest entities
// with their complete membership and verification snapshot.
type ManifestRepository interface {
	// Add persists a new manifest aggregate to storage.
	// The manifest must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *manifest.Manifest) error

	// Update persists changes to an existing manifest aggregate,
	// including its waybill membership and verified-box snapshot.
	Update(ctx context.Context, aggregate *manifest.Manifest) error

	// Get retrieves a manifest aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*manifest.Manifest, error)

	// IsWaybillManifested reports whether the waybill is already a member
	// of any manifest. A waybill belongs to at most one manifest at a
	// time, so membership anywhere blocks insertion elsewhere.
	IsWaybillManifested(ctx context.Context, waybillID kernel.UUID) (bool, error)
}
