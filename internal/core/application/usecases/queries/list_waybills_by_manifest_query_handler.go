package queries

import (
	"context"
	"database/sql"
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ListWaybillsByManifestQueryHandler expands a manifest's membership into
// waybill read models. The manifest stores its member ids as an ordered
// array; rows come back in that order, not in table order.
type ListWaybillsByManifestQueryHandler struct {
	db *gorm.DB
}

// NewListWaybillsByManifestQueryHandler creates a handler for manifest
// membership listings. Requires a GORM database connection.
func NewListWaybillsByManifestQueryHandler(db *gorm.DB) ListWaybillsByManifestQueryHandler {
	return ListWaybillsByManifestQueryHandler{db: db}
}

// Handle executes the expansion.
// Returns errs.ErrObjectNotFound when the manifest is unknown.
func (h ListWaybillsByManifestQueryHandler) Handle(
	ctx context.Context,
	query ListWaybillsByManifestQuery,
) ([]GetWaybillQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	memberIDs, err := loadManifestMemberIDs(ctx, h.db, query.ManifestID())
	if err != nil {
		return nil, err
	}
	if len(memberIDs) == 0 {
		return []GetWaybillQueryResponse{}, nil
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			waybill_number,
			partner_code,
			number_of_boxes,
			package_weight,
			receiver_city,
			receiver_state,
			status,
			shipping_date,
			delivery_date,
			received_by,
			eway_expiry_date
		FROM waybills
		WHERE id::text = ANY(?)
	`, pq.Array(memberIDs)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byID := make(map[string]GetWaybillQueryResponse, len(memberIDs))
	for rows.Next() {
		response, scanErr := scanWaybillRow(rows.Scan)
		if scanErr != nil {
			return nil, scanErr
		}
		byID[response.ID.String()] = response
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	waybills := make([]GetWaybillQueryResponse, 0, len(memberIDs))
	for _, memberID := range memberIDs {
		if response, ok := byID[memberID]; ok {
			waybills = append(waybills, response)
		}
	}

	return waybills, nil
}

// loadManifestMemberIDs reads the ordered member-id array off one manifest.
func loadManifestMemberIDs(ctx context.Context, db *gorm.DB, manifestID kernel.UUID) ([]string, error) {
	var memberIDs pq.StringArray

	row := db.WithContext(ctx).Raw(`
		SELECT waybill_ids FROM manifests WHERE id = ?
	`, manifestID.Bytes()).Row()

	err := row.Scan(&memberIDs)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("manifestId", manifestID)
	}
	if err != nil {
		return nil, err
	}

	return memberIDs, nil
}
