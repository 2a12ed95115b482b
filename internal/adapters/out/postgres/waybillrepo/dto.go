// Package waybillrepo provides data transfer objects and mapping functions for waybill persistence.
// This package implements the repository pattern for the waybill domain aggregate, handling
// the conversion between domain entities and database representations.
package waybillrepo

import (
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/waybill"

	"github.com/google/uuid"
)

// WaybillDTO represents the database structure for persisting waybill aggregates.
// The waybill number carries a unique index; the registry-wide uniqueness
// rule is enforced by the database, not re-checked in application code.
type WaybillDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	WaybillNumber  string    `gorm:"type:text;uniqueIndex;not null"`
	PartnerCode    string    `gorm:"type:text;index;not null"`
	NumberOfBoxes  int       `gorm:"not null"`
	PackageWeight  float64   `gorm:"not null"`
	ReceiverCity   string    `gorm:"type:text;not null"`
	ReceiverState  string    `gorm:"type:text;not null"`
	Status         string    `gorm:"type:varchar(32);index;not null"`
	ShippingDate   time.Time `gorm:"not null"`
	DeliveryDate   *time.Time
	ReceivedBy     string `gorm:"type:text;not null;default:''"`
	EwayExpiryDate *time.Time `gorm:"column:eway_expiry_date"`
}

// TableName specifies the database table name for waybill entities.
// Overrides GORM's default naming convention to use "waybills".
func (WaybillDTO) TableName() string {
	return "waybills"
}

// fromDomain converts a waybill domain aggregate to its database representation.
func fromDomain(aggregate *waybill.Waybill) WaybillDTO {
	return WaybillDTO{
		ID:             aggregate.ID().Bytes(),
		WaybillNumber:  aggregate.WaybillNumber(),
		PartnerCode:    aggregate.PartnerCode(),
		NumberOfBoxes:  aggregate.NumberOfBoxes(),
		PackageWeight:  aggregate.PackageWeight(),
		ReceiverCity:   aggregate.ReceiverCity(),
		ReceiverState:  aggregate.ReceiverState(),
		Status:         aggregate.Status().String(),
		ShippingDate:   aggregate.ShippingDate(),
		DeliveryDate:   aggregate.DeliveryDate(),
		ReceivedBy:     aggregate.ReceivedBy(),
		EwayExpiryDate: aggregate.EWayBillExpiryDate(),
	}
}

// toDomain converts a database DTO to a waybill domain aggregate.
// Reconstructs the complete aggregate including its stored status using RestoreWaybill.
func toDomain(dto WaybillDTO) (*waybill.Waybill, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := waybill.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return waybill.RestoreWaybill(
		id,
		dto.WaybillNumber,
		dto.PartnerCode,
		dto.NumberOfBoxes,
		dto.PackageWeight,
		dto.ReceiverCity,
		dto.ReceiverState,
		status,
		dto.ShippingDate,
		dto.DeliveryDate,
		dto.ReceivedBy,
		dto.EwayExpiryDate,
	)
}
