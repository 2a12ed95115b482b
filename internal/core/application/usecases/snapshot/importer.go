package snapshot

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Importer replaces the whole persisted state with the contents of a
// Document. The swap happens in one transaction: either the new state
// lands completely or the previous state survives untouched.
type Importer struct {
	db *gorm.DB
}

// NewImporter creates an importer over the given database connection.
func NewImporter(db *gorm.DB) Importer {
	return Importer{db: db}
}

// ratePayload is the subset of a rate record the lookup query needs.
// Anything else in the payload is preserved verbatim.
type ratePayload struct {
	PartnerCode string  `json:"partnerCode"`
	State       string  `json:"state"`
	WeightFrom  float64 `json:"weightFrom"`
	WeightTo    float64 `json:"weightTo"`
	Charge      float64 `json:"charge"`
}

// Import wipes the current state and writes the document in its place.
func (i Importer) Import(ctx context.Context, document *Document) error {
	return i.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range []string{
			"manifests", "waybills", "inventory_items", "user_records", "rates", "partner_associations",
		} {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return err
			}
		}

		if err := importWaybills(tx, document.Waybills); err != nil {
			return err
		}
		if err := importManifests(tx, document.Manifests); err != nil {
			return err
		}
		if err := importInventory(tx, document.WaybillInventory); err != nil {
			return err
		}
		if err := importUsers(tx, document.Users); err != nil {
			return err
		}
		if err := importRates(tx, document.Rates); err != nil {
			return err
		}

		return importAssociations(tx, document.PartnerAssociations)
	})
}

func importWaybills(tx *gorm.DB, records []WaybillRecord) error {
	for _, record := range records {
		id, err := uuid.Parse(record.ID)
		if err != nil {
			return fmt.Errorf("waybill %s: %w", record.WaybillNumber, err)
		}

		err = tx.Exec(`
			INSERT INTO waybills (
				id, waybill_number, partner_code, number_of_boxes, package_weight,
				receiver_city, receiver_state, status, shipping_date, delivery_date,
				received_by, eway_expiry_date
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
			id, record.WaybillNumber, record.PartnerCode, record.NumberOfBoxes, record.PackageWeight,
			record.ReceiverCity, record.ReceiverState, record.Status, record.ShippingDate, record.DeliveryDate,
			record.ReceivedBy, record.EWayBillExpiryDate,
		).Error
		if err != nil {
			return err
		}
	}

	return nil
}

func importManifests(tx *gorm.DB, records []ManifestRecord) error {
	for _, record := range records {
		id, err := uuid.Parse(record.ID)
		if err != nil {
			return fmt.Errorf("manifest %s: %w", record.ManifestNo, err)
		}

		err = tx.Exec(`
			INSERT INTO manifests (
				id, manifest_no, date, origin, status, waybill_ids, verified_box_ids,
				vehicle_no, driver_name, driver_contact, creator_partner_code, delivery_partner_code
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
			id, record.ManifestNo, record.Date, record.Origin, record.Status,
			pq.StringArray(record.WaybillIDs), pq.StringArray(record.VerifiedBoxIDs),
			record.VehicleNo, record.DriverName, record.DriverContact,
			record.CreatorPartnerCode, record.DeliveryPartnerCode,
		).Error
		if err != nil {
			return err
		}
	}

	return nil
}

func importInventory(tx *gorm.DB, records []InventoryRecord) error {
	for _, record := range records {
		err := tx.Exec(`
			INSERT INTO inventory_items (id, waybill_number, partner_code, company_code, is_used)
			VALUES (?, ?, ?, ?, ?)
		`,
			uuid.New(), record.WaybillNumber, record.PartnerCode, record.CompanyCode, record.IsUsed,
		).Error
		if err != nil {
			return err
		}
	}

	return nil
}

func importUsers(tx *gorm.DB, payloads []json.RawMessage) error {
	for _, payload := range payloads {
		if err := tx.Exec(`INSERT INTO user_records (payload) VALUES (?)`, []byte(payload)).Error; err != nil {
			return err
		}
	}

	return nil
}

// importRates parses each payload for the lookup columns and stores the
// payload itself verbatim, so a later export returns the original bytes.
func importRates(tx *gorm.DB, payloads []json.RawMessage) error {
	for _, payload := range payloads {
		var parsed ratePayload
		if err := json.Unmarshal(payload, &parsed); err != nil {
			return fmt.Errorf("rate payload: %w", err)
		}

		err := tx.Exec(`
			INSERT INTO rates (partner_code, state, weight_from, weight_to, charge, payload)
			VALUES (?, ?, ?, ?, ?, ?)
		`,
			parsed.PartnerCode, parsed.State, parsed.WeightFrom, parsed.WeightTo, parsed.Charge, []byte(payload),
		).Error
		if err != nil {
			return err
		}
	}

	return nil
}

func importAssociations(tx *gorm.DB, associations map[string]map[string]string) error {
	for associationType, byFrom := range associations {
		for fromCode, toCode := range byFrom {
			err := tx.Exec(`
				INSERT INTO partner_associations (association_type, from_partner_code, to_partner_code)
				VALUES (?, ?, ?)
			`, associationType, fromCode, toCode).Error
			if err != nil {
				return err
			}
		}
	}

	return nil
}
