package ports

import (
	"context"

	"freight/internal/core/domain/model/routing"
)

// RoutingRepository defines the persistence contract for partner routing
// associations. Each (associationType, fromPartnerCode) key maps to at
// most one destination; writes replace the previous value with no history.
type RoutingRepository interface {
	// Upsert stores the association, replacing any existing destination
	// for the same (associationType, fromPartnerCode) key.
	Upsert(ctx context.Context, association *routing.Association) error

	// Get retrieves the association for the given key.
	Get(ctx context.Context, associationType routing.AssociationType, fromPartnerCode string) (*routing.Association, error)
}
