package http

import (
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
)

// WaybillResponse is the wire form of one waybill read model.
type WaybillResponse struct {
	ID                 string     `json:"id"`
	WaybillNumber      string     `json:"waybillNumber"`
	PartnerCode        string     `json:"partnerCode"`
	NumberOfBoxes      int        `json:"numberOfBoxes"`
	PackageWeight      float64    `json:"packageWeight"`
	ReceiverCity       string     `json:"receiverCity"`
	ReceiverState      string     `json:"receiverState"`
	Status             string     `json:"status"`
	ShippingDate       time.Time  `json:"shippingDate"`
	DeliveryDate       *time.Time `json:"deliveryDate,omitempty"`
	ReceivedBy         string     `json:"receivedBy,omitempty"`
	EWayBillExpiryDate *time.Time `json:"eWayBillExpiryDate,omitempty"`
}

func toWaybillResponse(r queries.GetWaybillQueryResponse) WaybillResponse {
	return WaybillResponse{
		ID:                 r.ID.String(),
		WaybillNumber:      r.WaybillNumber,
		PartnerCode:        r.PartnerCode,
		NumberOfBoxes:      r.NumberOfBoxes,
		PackageWeight:      r.PackageWeight,
		ReceiverCity:       r.ReceiverCity,
		ReceiverState:      r.ReceiverState,
		Status:             r.Status,
		ShippingDate:       r.ShippingDate,
		DeliveryDate:       r.DeliveryDate,
		ReceivedBy:         r.ReceivedBy,
		EWayBillExpiryDate: r.EWayBillExpiryDate,
	}
}

func toWaybillResponses(rs []queries.GetWaybillQueryResponse) []WaybillResponse {
	responses := make([]WaybillResponse, len(rs))
	for i, r := range rs {
		responses[i] = toWaybillResponse(r)
	}
	return responses
}

// ManifestResponse is the wire form of one manifest listing row.
type ManifestResponse struct {
	ID                  string    `json:"id"`
	ManifestNo          string    `json:"manifestNo"`
	Date                time.Time `json:"date"`
	Origin              string    `json:"origin"`
	Status              string    `json:"status"`
	VehicleNo           string    `json:"vehicleNo"`
	DriverName          string    `json:"driverName"`
	DriverContact       string    `json:"driverContact"`
	CreatorPartnerCode  string    `json:"creatorPartnerCode"`
	DeliveryPartnerCode string    `json:"deliveryPartnerCode,omitempty"`
	WaybillCount        int       `json:"waybillCount"`
	VerifiedBoxCount    int       `json:"verifiedBoxCount"`
}

func toManifestResponses(rs []queries.ListManifestsQueryResponse) []ManifestResponse {
	responses := make([]ManifestResponse, len(rs))
	for i, r := range rs {
		responses[i] = ManifestResponse{
			ID:                  r.ID.String(),
			ManifestNo:          r.ManifestNo,
			Date:                r.Date,
			Origin:              r.Origin,
			Status:              r.Status,
			VehicleNo:           r.VehicleNo,
			DriverName:          r.DriverName,
			DriverContact:       r.DriverContact,
			CreatorPartnerCode:  r.CreatorPartnerCode,
			DeliveryPartnerCode: r.DeliveryPartnerCode,
			WaybillCount:        r.WaybillCount,
			VerifiedBoxCount:    r.VerifiedBoxCount,
		}
	}
	return responses
}

// BoxResponse is the wire form of one derived box.
type BoxResponse struct {
	BoxID         string `json:"boxId"`
	WaybillNumber string `json:"waybillNumber"`
	BoxNumber     int    `json:"boxNumber"`
	Destination   string `json:"destination"`
	Verified      bool   `json:"verified"`
}

func toBoxResponses(rs []queries.BoxResponse) []BoxResponse {
	responses := make([]BoxResponse, len(rs))
	for i, r := range rs {
		responses[i] = BoxResponse{
			BoxID:         r.BoxID,
			WaybillNumber: r.WaybillNumber,
			BoxNumber:     r.BoxNumber,
			Destination:   r.Destination,
			Verified:      r.Verified,
		}
	}
	return responses
}

// InventoryItemResponse is the wire form of one available reserved number.
type InventoryItemResponse struct {
	WaybillNumber string `json:"waybillNumber"`
	PartnerCode   string `json:"partnerCode"`
	CompanyCode   string `json:"companyCode,omitempty"`
}

func toInventoryItemResponses(rs []queries.ListAvailableInventoryQueryResponse) []InventoryItemResponse {
	responses := make([]InventoryItemResponse, len(rs))
	for i, r := range rs {
		responses[i] = InventoryItemResponse{
			WaybillNumber: r.WaybillNumber,
			PartnerCode:   r.PartnerCode,
			CompanyCode:   r.CompanyCode,
		}
	}
	return responses
}

// AssociationResponse is the wire form of one routing association.
type AssociationResponse struct {
	AssociationType string `json:"associationType"`
	FromPartnerCode string `json:"fromPartnerCode"`
	ToPartnerCode   string `json:"toPartnerCode"`
}

// RateResponse is the wire form of one resolved freight charge.
type RateResponse struct {
	PartnerCode string  `json:"partnerCode"`
	State       string  `json:"state"`
	Charge      float64 `json:"charge"`
}

// AllocationResultResponse is the wire form of a range allocation outcome.
type AllocationResultResponse struct {
	AddedCount   int `json:"addedCount"`
	SkippedCount int `json:"skippedCount"`
}

func toAllocationResultResponse(result commands.AllocateInventoryRangeResult) AllocationResultResponse {
	return AllocationResultResponse{
		AddedCount:   result.AddedCount,
		SkippedCount: result.SkippedCount,
	}
}

// CreatedResponse returns the identifier of a newly created entity.
type CreatedResponse struct {
	ID string `json:"id"`
}
