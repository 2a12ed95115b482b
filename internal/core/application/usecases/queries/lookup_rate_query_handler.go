package queries

import (
	"context"
	"database/sql"
	"errors"

	"freight/internal/pkg/errs"

	"gorm.io/gorm"
)

// LookupRateQueryHandler resolves freight charges from the rate table.
// The table is reporting data fed in through snapshot import; the engine
// never computes charges itself.
type LookupRateQueryHandler struct {
	db *gorm.DB
}

// NewLookupRateQueryHandler creates a handler for rate lookups.
// Requires a GORM database connection for query execution.
func NewLookupRateQueryHandler(db *gorm.DB) LookupRateQueryHandler {
	return LookupRateQueryHandler{db: db}
}

// Handle executes the lookup.
// The narrowest weight band containing the shipment weight wins; returns
// errs.ErrObjectNotFound when no band matches.
func (h LookupRateQueryHandler) Handle(
	ctx context.Context,
	query LookupRateQuery,
) (LookupRateQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return LookupRateQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT partner_code, state, charge
		FROM rates
		WHERE partner_code = ? AND state = ? AND weight_from <= ? AND weight_to >= ?
		ORDER BY weight_to - weight_from, seq
		LIMIT 1
	`, query.PartnerCode(), query.State(), query.Weight(), query.Weight()).Row()

	var response LookupRateQueryResponse
	err := row.Scan(&response.PartnerCode, &response.State, &response.Charge)
	if errors.Is(err, sql.ErrNoRows) {
		return LookupRateQueryResponse{}, errs.NewObjectNotFoundError("rate", query.PartnerCode())
	}
	if err != nil {
		return LookupRateQueryResponse{}, err
	}

	return response, nil
}
