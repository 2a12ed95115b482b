package queries

import (
	"context"

	"freight/internal/core/domain/model/waybill"

	"gorm.io/gorm"
)

// ListExpiredEWayBillsQueryHandler lists in-flight waybills with lapsed
// e-way bills from the database.
type ListExpiredEWayBillsQueryHandler struct {
	db *gorm.DB
}

// NewListExpiredEWayBillsQueryHandler creates a handler for expiry sweeps.
// Requires a GORM database connection for query execution.
func NewListExpiredEWayBillsQueryHandler(db *gorm.DB) ListExpiredEWayBillsQueryHandler {
	return ListExpiredEWayBillsQueryHandler{db: db}
}

// Handle executes the sweep. Results are sorted by expiry date so the oldest
// violations surface first.
func (h ListExpiredEWayBillsQueryHandler) Handle(
	ctx context.Context,
	query ListExpiredEWayBillsQuery,
) ([]ExpiredEWayBillResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			waybill_number,
			partner_code,
			status,
			eway_expiry_date
		FROM waybills
		WHERE eway_expiry_date IS NOT NULL
		  AND eway_expiry_date < ?
		  AND status NOT IN (?, ?)
		ORDER BY eway_expiry_date, waybill_number
	`

	rows, err := h.db.WithContext(ctx).Raw(
		sql,
		query.AsOf(),
		waybill.StatusDelivered.String(),
		waybill.StatusCancelled.String(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expired := make([]ExpiredEWayBillResponse, 0)
	for rows.Next() {
		var response ExpiredEWayBillResponse
		if scanErr := rows.Scan(
			&response.WaybillNumber,
			&response.PartnerCode,
			&response.Status,
			&response.EWayBillExpiryDate,
		); scanErr != nil {
			return nil, scanErr
		}
		expired = append(expired, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return expired, nil
}
