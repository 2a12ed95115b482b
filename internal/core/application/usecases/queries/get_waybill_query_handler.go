package queries

import (
	"context"
	"database/sql"
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetWaybillQueryHandler retrieves one waybill read model from the database.
type GetWaybillQueryHandler struct {
	db *gorm.DB
}

// NewGetWaybillQueryHandler creates a handler for single waybill lookups.
// Requires a GORM database connection for query execution.
func NewGetWaybillQueryHandler(db *gorm.DB) GetWaybillQueryHandler {
	return GetWaybillQueryHandler{db: db}
}

// Handle executes the lookup.
// Returns errs.ErrObjectNotFound when the identifier is unknown.
func (h GetWaybillQueryHandler) Handle(
	ctx context.Context,
	query GetWaybillQuery,
) (GetWaybillQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetWaybillQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
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
		WHERE id = ?
	`, query.WaybillID().Bytes()).Row()

	response, err := scanWaybillRow(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return GetWaybillQueryResponse{}, errs.NewObjectNotFoundError("waybillId", query.WaybillID())
	}
	if err != nil {
		return GetWaybillQueryResponse{}, err
	}

	return response, nil
}

// scanWaybillRow maps one waybills row onto the shared read model shape.
func scanWaybillRow(scan func(dest ...any) error) (GetWaybillQueryResponse, error) {
	var response GetWaybillQueryResponse
	var id uuid.UUID

	err := scan(
		&id,
		&response.WaybillNumber,
		&response.PartnerCode,
		&response.NumberOfBoxes,
		&response.PackageWeight,
		&response.ReceiverCity,
		&response.ReceiverState,
		&response.Status,
		&response.ShippingDate,
		&response.DeliveryDate,
		&response.ReceivedBy,
		&response.EWayBillExpiryDate,
	)
	if err != nil {
		return GetWaybillQueryResponse{}, err
	}

	waybillID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetWaybillQueryResponse{}, err
	}
	response.ID = waybillID

	return response, nil
}
