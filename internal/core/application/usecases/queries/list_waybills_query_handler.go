package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListWaybillsQueryHandler lists waybill read models from the database.
type ListWaybillsQueryHandler struct {
	db *gorm.DB
}

// NewListWaybillsQueryHandler creates a handler for waybill listings.
// Requires a GORM database connection for query execution.
func NewListWaybillsQueryHandler(db *gorm.DB) ListWaybillsQueryHandler {
	return ListWaybillsQueryHandler{db: db}
}

// Handle executes the listing.
// Results are sorted by waybill number for consistent output.
func (h ListWaybillsQueryHandler) Handle(
	ctx context.Context,
	query ListWaybillsQuery,
) ([]GetWaybillQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
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
	`
	args := make([]any, 0, 1)
	if query.PartnerCode() != "" {
		sql += ` WHERE partner_code = ?`
		args = append(args, query.PartnerCode())
	}
	sql += ` ORDER BY waybill_number`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	waybills := make([]GetWaybillQueryResponse, 0)
	for rows.Next() {
		response, scanErr := scanWaybillRow(rows.Scan)
		if scanErr != nil {
			return nil, scanErr
		}
		waybills = append(waybills, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return waybills, nil
}
