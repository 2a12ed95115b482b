// Package inventoryrepo provides data transfer objects and mapping functions for
// reserved waybill-number persistence. The unique index on the waybill number
// makes the pool-wide uniqueness rule a database guarantee.
package inventoryrepo

import (
	"freight/internal/core/domain/model/inventory"
	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ItemDTO represents the database structure for persisting inventory items.
// An empty company code marks a market number usable by any company under
// the partner.
type ItemDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	WaybillNumber string    `gorm:"type:text;uniqueIndex;not null"`
	PartnerCode   string    `gorm:"type:text;index;not null"`
	CompanyCode   string    `gorm:"type:text;not null;default:''"`
	IsUsed        bool      `gorm:"not null;default:false"`
}

// TableName specifies the database table name for inventory items.
// Overrides GORM's default naming convention to use "inventory_items".
func (ItemDTO) TableName() string {
	return "inventory_items"
}

// fromDomain converts an inventory item to its database representation.
func fromDomain(item *inventory.Item) ItemDTO {
	return ItemDTO{
		ID:            item.ID().Bytes(),
		WaybillNumber: item.WaybillNumber(),
		PartnerCode:   item.PartnerCode(),
		CompanyCode:   item.CompanyCode(),
		IsUsed:        item.IsUsed(),
	}
}

// toDomain converts a database DTO to an inventory item using RestoreItem.
func toDomain(dto ItemDTO) (*inventory.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return inventory.RestoreItem(id, dto.WaybillNumber, dto.PartnerCode, dto.CompanyCode, dto.IsUsed)
}
