package queries

import (
	"context"

	"gorm.io/gorm"
)

// ShortageQueryHandler computes the unscanned remainder of a manifest's
// expected box set. An empty shortage means the next verification save
// marks the manifest Received.
type ShortageQueryHandler struct {
	db *gorm.DB
}

// NewShortageQueryHandler creates a handler for shortage computation.
// Requires a GORM database connection for query execution.
func NewShortageQueryHandler(db *gorm.DB) ShortageQueryHandler {
	return ShortageQueryHandler{db: db}
}

// Handle executes the computation.
// Returns errs.ErrObjectNotFound when the manifest is unknown.
func (h ShortageQueryHandler) Handle(
	ctx context.Context,
	query ShortageQuery,
) ([]BoxResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	expected, err := loadExpectedBoxes(ctx, h.db, query.ManifestID())
	if err != nil {
		return nil, err
	}

	shortage := make([]BoxResponse, 0)
	for _, box := range expected {
		if !box.Verified {
			shortage = append(shortage, box)
		}
	}

	return shortage, nil
}
