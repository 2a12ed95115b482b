// Package routingrepo provides data transfer objects and mapping functions for
// partner routing associations. The (associationType, fromPartnerCode) pair
// is the primary key, so a write always replaces the previous destination.
package routingrepo

import (
	"freight/internal/core/domain/model/routing"
)

// AssociationDTO represents the database structure for routing associations.
type AssociationDTO struct {
	AssociationType string `gorm:"type:varchar(32);primaryKey"`
	FromPartnerCode string `gorm:"type:text;primaryKey"`
	ToPartnerCode   string `gorm:"type:text;not null"`
}

// TableName specifies the database table name for routing associations.
// Overrides GORM's default naming convention to use "partner_associations".
func (AssociationDTO) TableName() string {
	return "partner_associations"
}

// fromDomain converts a routing association to its database representation.
func fromDomain(association *routing.Association) AssociationDTO {
	return AssociationDTO{
		AssociationType: association.Type().String(),
		FromPartnerCode: association.FromPartnerCode(),
		ToPartnerCode:   association.ToPartnerCode(),
	}
}

// toDomain converts a database DTO to a routing association.
func toDomain(dto AssociationDTO) (*routing.Association, error) {
	associationType, err := routing.AssociationTypeFromString(dto.AssociationType)
	if err != nil {
		return nil, err
	}

	return routing.NewAssociation(associationType, dto.FromPartnerCode, dto.ToPartnerCode)
}
