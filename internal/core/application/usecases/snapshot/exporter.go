package snapshot

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Exporter reads the whole persisted state into a Document.
// Every array is read in a stable order (waybill number, manifest number,
// insertion sequence) so repeated exports of the same state are identical.
type Exporter struct {
	db *gorm.DB
}

// NewExporter creates an exporter over the given database connection.
func NewExporter(db *gorm.DB) Exporter {
	return Exporter{db: db}
}

// Export assembles the full snapshot document.
func (e Exporter) Export(ctx context.Context) (*Document, error) {
	document := &Document{
		Waybills:            make([]WaybillRecord, 0),
		Manifests:           make([]ManifestRecord, 0),
		WaybillInventory:    make([]InventoryRecord, 0),
		Users:               make([]json.RawMessage, 0),
		Rates:               make([]json.RawMessage, 0),
		PartnerAssociations: make(map[string]map[string]string),
	}

	if err := e.exportWaybills(ctx, document); err != nil {
		return nil, err
	}
	if err := e.exportManifests(ctx, document); err != nil {
		return nil, err
	}
	if err := e.exportInventory(ctx, document); err != nil {
		return nil, err
	}
	if err := e.exportPayloads(ctx, `SELECT payload FROM user_records ORDER BY seq`, &document.Users); err != nil {
		return nil, err
	}
	if err := e.exportPayloads(ctx, `SELECT payload FROM rates ORDER BY seq`, &document.Rates); err != nil {
		return nil, err
	}
	if err := e.exportAssociations(ctx, document); err != nil {
		return nil, err
	}

	return document, nil
}

func (e Exporter) exportWaybills(ctx context.Context, document *Document) error {
	rows, err := e.db.WithContext(ctx).Raw(`
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
		ORDER BY waybill_number
	`).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var record WaybillRecord
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&record.WaybillNumber,
			&record.PartnerCode,
			&record.NumberOfBoxes,
			&record.PackageWeight,
			&record.ReceiverCity,
			&record.ReceiverState,
			&record.Status,
			&record.ShippingDate,
			&record.DeliveryDate,
			&record.ReceivedBy,
			&record.EWayBillExpiryDate,
		)
		if err != nil {
			return err
		}

		record.ID = id.String()
		document.Waybills = append(document.Waybills, record)
	}

	return rows.Err()
}

func (e Exporter) exportManifests(ctx context.Context, document *Document) error {
	rows, err := e.db.WithContext(ctx).Raw(`
		SELECT
			id,
			manifest_no,
			date,
			origin,
			status,
			waybill_ids,
			verified_box_ids,
			vehicle_no,
			driver_name,
			driver_contact,
			creator_partner_code,
			delivery_partner_code
		FROM manifests
		ORDER BY manifest_no
	`).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var record ManifestRecord
		var id uuid.UUID
		var waybillIDs, verifiedBoxIDs pq.StringArray

		err = rows.Scan(
			&id,
			&record.ManifestNo,
			&record.Date,
			&record.Origin,
			&record.Status,
			&waybillIDs,
			&verifiedBoxIDs,
			&record.VehicleNo,
			&record.DriverName,
			&record.DriverContact,
			&record.CreatorPartnerCode,
			&record.DeliveryPartnerCode,
		)
		if err != nil {
			return err
		}

		record.ID = id.String()
		record.WaybillIDs = waybillIDs
		if record.WaybillIDs == nil {
			record.WaybillIDs = []string{}
		}
		record.VerifiedBoxIDs = verifiedBoxIDs
		if record.VerifiedBoxIDs == nil {
			record.VerifiedBoxIDs = []string{}
		}
		document.Manifests = append(document.Manifests, record)
	}

	return rows.Err()
}

func (e Exporter) exportInventory(ctx context.Context, document *Document) error {
	rows, err := e.db.WithContext(ctx).Raw(`
		SELECT waybill_number, partner_code, company_code, is_used
		FROM inventory_items
		ORDER BY waybill_number
	`).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var record InventoryRecord

		err = rows.Scan(&record.WaybillNumber, &record.PartnerCode, &record.CompanyCode, &record.IsUsed)
		if err != nil {
			return err
		}
		document.WaybillInventory = append(document.WaybillInventory, record)
	}

	return rows.Err()
}

// exportPayloads reads opaque pass-through records in insertion order.
func (e Exporter) exportPayloads(ctx context.Context, query string, out *[]json.RawMessage) error {
	rows, err := e.db.WithContext(ctx).Raw(query).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var payload []byte

		if err = rows.Scan(&payload); err != nil {
			return err
		}
		*out = append(*out, json.RawMessage(payload))
	}

	return rows.Err()
}

func (e Exporter) exportAssociations(ctx context.Context, document *Document) error {
	rows, err := e.db.WithContext(ctx).Raw(`
		SELECT association_type, from_partner_code, to_partner_code
		FROM partner_associations
		ORDER BY association_type, from_partner_code
	`).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var associationType, fromCode, toCode string

		if err = rows.Scan(&associationType, &fromCode, &toCode); err != nil {
			return err
		}

		byFrom, ok := document.PartnerAssociations[associationType]
		if !ok {
			byFrom = make(map[string]string)
			document.PartnerAssociations[associationType] = byFrom
		}
		byFrom[fromCode] = toCode
	}

	return rows.Err()
}
