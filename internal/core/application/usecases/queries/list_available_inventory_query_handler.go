package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListAvailableInventoryQueryHandler lists unused reserved numbers with
// three-tier visibility: partner first, then company or market scope.
type ListAvailableInventoryQueryHandler struct {
	db *gorm.DB
}

// NewListAvailableInventoryQueryHandler creates a handler for inventory
// listings. Requires a GORM database connection for query execution.
func NewListAvailableInventoryQueryHandler(db *gorm.DB) ListAvailableInventoryQueryHandler {
	return ListAvailableInventoryQueryHandler{db: db}
}

// Handle executes the listing.
// Without a selected company only market numbers are visible; a selected
// company sees its own pinned numbers plus the market pool.
func (h ListAvailableInventoryQueryHandler) Handle(
	ctx context.Context,
	query ListAvailableInventoryQuery,
) ([]ListAvailableInventoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT waybill_number, partner_code, company_code
		FROM inventory_items
		WHERE partner_code = ? AND is_used = false
	`
	args := []any{query.PartnerCode()}

	switch {
	case query.MarketOnly():
		sql += ` AND company_code = ''`
	case query.CompanyCode() != "":
		sql += ` AND (company_code = ? OR company_code = '')`
		args = append(args, query.CompanyCode())
	default:
		sql += ` AND company_code = ''`
	}
	sql += ` ORDER BY waybill_number`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]ListAvailableInventoryQueryResponse, 0)
	for rows.Next() {
		var item ListAvailableInventoryQueryResponse

		if err = rows.Scan(&item.WaybillNumber, &item.PartnerCode, &item.CompanyCode); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
