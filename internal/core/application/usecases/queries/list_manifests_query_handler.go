package queries

import (
	"context"
	"strings"

	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListManifestsQueryHandler lists manifest read models from the database.
type ListManifestsQueryHandler struct {
	db *gorm.DB
}

// NewListManifestsQueryHandler creates a handler for manifest listings.
// Requires a GORM database connection for query execution.
func NewListManifestsQueryHandler(db *gorm.DB) ListManifestsQueryHandler {
	return ListManifestsQueryHandler{db: db}
}

// Handle executes the listing.
// Results are sorted by manifest number for consistent output.
func (h ListManifestsQueryHandler) Handle(
	ctx context.Context,
	query ListManifestsQuery,
) ([]ListManifestsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			manifest_no,
			date,
			origin,
			status,
			vehicle_no,
			driver_name,
			driver_contact,
			creator_partner_code,
			delivery_partner_code,
			COALESCE(array_length(waybill_ids, 1), 0),
			COALESCE(array_length(verified_box_ids, 1), 0)
		FROM manifests
	`
	conditions := make([]string, 0, 2)
	args := make([]any, 0, 2)
	if query.Status() != "" {
		conditions = append(conditions, `status = ?`)
		args = append(args, query.Status())
	}
	if query.Origin() != "" {
		conditions = append(conditions, `origin = ?`)
		args = append(args, query.Origin())
	}
	if len(conditions) > 0 {
		sql += ` WHERE ` + strings.Join(conditions, ` AND `)
	}
	sql += ` ORDER BY manifest_no`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	manifests := make([]ListManifestsQueryResponse, 0)
	for rows.Next() {
		var response ListManifestsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&response.ManifestNo,
			&response.Date,
			&response.Origin,
			&response.Status,
			&response.VehicleNo,
			&response.DriverName,
			&response.DriverContact,
			&response.CreatorPartnerCode,
			&response.DeliveryPartnerCode,
			&response.WaybillCount,
			&response.VerifiedBoxCount,
		)
		if err != nil {
			return nil, err
		}

		manifestID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = manifestID
		manifests = append(manifests, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return manifests, nil
}
