// Package ports defines repository interfaces for the freight domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/waybill"
)

// WaybillRepository defines the persistence contract for waybill aggregates.
// Provides methods for storing, retrieving, and querying waybill entities
// across the whole registry regardless of partner scope.
type WaybillRepository interface {
	// Add persists a new waybill aggregate to storage.
	// Returns waybill.ErrDuplicateWaybillNumber when the waybill number
	// is already taken anywhere in the registry.
	Add(ctx context.Context, aggregate *waybill.Waybill) error

	// Update persists changes to an existing waybill aggregate.
	// The waybill must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *waybill.Waybill) error

	// Get retrieves a waybill aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*waybill.Waybill, error)

	// GetByNumber retrieves a waybill aggregate by its waybill number.
	GetByNumber(ctx context.Context, waybillNumber string) (*waybill.Waybill, error)

	// GetAllByIDs retrieves the waybill aggregates for the given identifiers.
	// Used to load a manifest's full membership in one round trip; a missing
	// id is not an error, the caller checks coverage against the manifest.
	GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*waybill.Waybill, error)

	// Delete removes a waybill aggregate from storage.
	// Callers must check waybill.EnsureDeletable first; the repository
	// does not re-apply the lifecycle rule.
	Delete(ctx context.Context, id kernel.UUID) error
}
