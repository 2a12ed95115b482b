// Package snapshot implements the backup/restore contract: the whole
// persisted state travels as one JSON document with fixed top-level keys.
// Encoding is deterministic, so an export of an imported document
// reproduces it byte for byte.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrMissingKey is returned when an imported document omits one of the
	// required top-level keys. Empty arrays are fine; absent keys are not.
	ErrMissingKey = errors.New("snapshot document is missing a required key")
)

// WaybillRecord is the wire form of one waybill.
type WaybillRecord struct {
	ID                 string     `json:"id"`
	WaybillNumber      string     `json:"waybillNumber"`
	PartnerCode        string     `json:"partnerCode"`
	NumberOfBoxes      int        `json:"numberOfBoxes"`
	PackageWeight      float64    `json:"packageWeight"`
	ReceiverCity       string     `json:"receiverCity"`
	ReceiverState      string     `json:"receiverState"`
	Status             string     `json:"status"`
	ShippingDate       time.Time  `json:"shippingDate"`
	DeliveryDate       *time.Time `json:"deliveryDate"`
	ReceivedBy         string     `json:"receivedBy"`
	EWayBillExpiryDate *time.Time `json:"eWayBillExpiryDate"`
}

// ManifestRecord is the wire form of one manifest, including its ordered
// membership and the verified-box snapshot.
type ManifestRecord struct {
	ID                  string    `json:"id"`
	ManifestNo          string    `json:"manifestNo"`
	Date                time.Time `json:"date"`
	Origin              string    `json:"origin"`
	Status              string    `json:"status"`
	WaybillIDs          []string  `json:"waybillIds"`
	VerifiedBoxIDs      []string  `json:"verifiedBoxIds"`
	VehicleNo           string    `json:"vehicleNo"`
	DriverName          string    `json:"driverName"`
	DriverContact       string    `json:"driverContact"`
	CreatorPartnerCode  string    `json:"creatorPartnerCode"`
	DeliveryPartnerCode string    `json:"deliveryPartnerCode"`
}

// InventoryRecord is the wire form of one reserved waybill number.
// Row identifiers are storage detail and stay out of the document.
type InventoryRecord struct {
	WaybillNumber string `json:"waybillNumber"`
	PartnerCode   string `json:"partnerCode"`
	CompanyCode   string `json:"companyCode"`
	IsUsed        bool   `json:"isUsed"`
}

// Document is the complete persisted state. Users and rates belong to
// collaborators outside the engine and pass through opaquely; partner
// associations are keyed associationType → fromCode → toCode.
type Document struct {
	Waybills            []WaybillRecord              `json:"waybills"`
	Manifests           []ManifestRecord             `json:"manifests"`
	WaybillInventory    []InventoryRecord            `json:"waybillInventory"`
	Users               []json.RawMessage            `json:"users"`
	Rates               []json.RawMessage            `json:"rates"`
	PartnerAssociations map[string]map[string]string `json:"partnerAssociations"`
}

// Encode renders the document deterministically. Arrays keep their stored
// order and map keys are sorted by the encoder, so equal documents always
// produce equal bytes.
func (d *Document) Encode() ([]byte, error) {
	return json.Marshal(d)
}

// DecodeDocument parses and validates an incoming document.
// All six top-level keys must be present; any array may be empty.
func DecodeDocument(data []byte) (*Document, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return nil, err
	}

	for _, key := range []string{
		"waybills", "manifests", "waybillInventory", "users", "rates", "partnerAssociations",
	} {
		if _, ok := keys[key]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingKey, key)
		}
	}

	var document Document
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, err
	}

	return &document, nil
}
