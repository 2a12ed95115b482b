package queries

import (
	"context"
	"database/sql"
	"errors"

	"freight/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetPartnerAssociationQueryHandler resolves routing keys from the database.
type GetPartnerAssociationQueryHandler struct {
	db *gorm.DB
}

// NewGetPartnerAssociationQueryHandler creates a handler for routing lookups.
// Requires a GORM database connection for query execution.
func NewGetPartnerAssociationQueryHandler(db *gorm.DB) GetPartnerAssociationQueryHandler {
	return GetPartnerAssociationQueryHandler{db: db}
}

// Handle executes the lookup.
// Returns errs.ErrObjectNotFound when the key has no destination.
func (h GetPartnerAssociationQueryHandler) Handle(
	ctx context.Context,
	query GetPartnerAssociationQuery,
) (GetPartnerAssociationQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPartnerAssociationQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT association_type, from_partner_code, to_partner_code
		FROM partner_associations
		WHERE association_type = ? AND from_partner_code = ?
	`, query.AssociationType().String(), query.FromPartnerCode()).Row()

	var response GetPartnerAssociationQueryResponse
	err := row.Scan(&response.AssociationType, &response.FromPartnerCode, &response.ToPartnerCode)
	if errors.Is(err, sql.ErrNoRows) {
		return GetPartnerAssociationQueryResponse{}, errs.NewObjectNotFoundError(
			"fromPartnerCode", query.FromPartnerCode(),
		)
	}
	if err != nil {
		return GetPartnerAssociationQueryResponse{}, err
	}

	return response, nil
}
