package http

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RequestValidator plugs go-playground/validator into Echo so request DTOs
// are checked before any command is constructed.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates the shared validator instance.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(422, err.Error())
	}
	return nil
}

// CreateWaybillRequest is the body of POST /api/v1/waybills.
type CreateWaybillRequest struct {
	WaybillNumber      string     `json:"waybillNumber" validate:"required"`
	NumberOfBoxes      int        `json:"numberOfBoxes" validate:"required,gt=0"`
	PackageWeight      float64    `json:"packageWeight" validate:"required,gt=0"`
	ReceiverCity       string     `json:"receiverCity" validate:"required"`
	ReceiverState      string     `json:"receiverState" validate:"required"`
	ShippingDate       time.Time  `json:"shippingDate" validate:"required"`
	EWayBillExpiryDate *time.Time `json:"eWayBillExpiryDate"`
	FromInventory      bool       `json:"fromInventory"`
}

// TransitionWaybillStatusRequest is the body of POST /api/v1/waybills/:waybillId/status.
type TransitionWaybillStatusRequest struct {
	NewStatus  string    `json:"newStatus" validate:"required"`
	ReceivedBy string    `json:"receivedBy"`
	OccurredAt time.Time `json:"occurredAt"`
}

// CreateManifestRequest is the body of POST /api/v1/manifests.
type CreateManifestRequest struct {
	ManifestNo          string    `json:"manifestNo" validate:"required"`
	Date                time.Time `json:"date" validate:"required"`
	Origin              string    `json:"origin" validate:"required"`
	VehicleNo           string    `json:"vehicleNo"`
	DriverName          string    `json:"driverName"`
	DriverContact       string    `json:"driverContact"`
	DeliveryPartnerCode string    `json:"deliveryPartnerCode"`
}

// AddWaybillToManifestRequest is the body of POST /api/v1/manifests/:manifestId/waybills.
type AddWaybillToManifestRequest struct {
	WaybillNumber string `json:"waybillNumber" validate:"required"`
}

// VerifyBoxRequest is the body of POST /api/v1/manifests/:manifestId/verified-boxes.
type VerifyBoxRequest struct {
	BoxID string `json:"boxId" validate:"required"`
}

// AllocateInventoryRangeRequest is the body of POST /api/v1/inventory/ranges.
type AllocateInventoryRangeRequest struct {
	CompanyCode string `json:"companyCode"`
	Prefix      string `json:"prefix"`
	Start       int    `json:"start" validate:"gte=0"`
	End         int    `json:"end" validate:"gtefield=Start"`
}

// ConsumeInventoryRequest is the body of POST /api/v1/inventory/consume.
type ConsumeInventoryRequest struct {
	WaybillNumber string `json:"waybillNumber" validate:"required"`
}

// SetPartnerAssociationRequest is the body of PUT /api/v1/associations.
type SetPartnerAssociationRequest struct {
	AssociationType string `json:"associationType" validate:"required"`
	FromPartnerCode string `json:"fromPartnerCode" validate:"required"`
	ToPartnerCode   string `json:"toPartnerCode" validate:"required"`
}
