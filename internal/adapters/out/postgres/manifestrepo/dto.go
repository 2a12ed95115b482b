// Package manifestrepo provides data transfer objects and mapping functions for manifest persistence.
// Membership and the verified-box snapshot are stored as Postgres arrays on
// the manifest row itself; boxes are never persisted as rows of their own.
package manifestrepo

import (
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/manifest"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ManifestDTO represents the database structure for persisting manifest aggregates.
// WaybillIDs keeps membership order; VerifiedBoxIDs is the sparse scan snapshot.
type ManifestDTO struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primaryKey"`
	ManifestNo          string         `gorm:"type:text;uniqueIndex;not null"`
	Date                time.Time      `gorm:"not null"`
	Origin              string         `gorm:"type:varchar(16);not null"`
	Status              string         `gorm:"type:varchar(32);index;not null"`
	WaybillIDs          pq.StringArray `gorm:"type:text[];not null"`
	VerifiedBoxIDs      pq.StringArray `gorm:"type:text[];not null"`
	VehicleNo           string         `gorm:"type:text;not null;default:''"`
	DriverName          string         `gorm:"type:text;not null;default:''"`
	DriverContact       string         `gorm:"type:text;not null;default:''"`
	CreatorPartnerCode  string         `gorm:"type:text;index;not null"`
	DeliveryPartnerCode string         `gorm:"type:text;not null;default:''"`
}

// TableName specifies the database table name for manifest entities.
// Overrides GORM's default naming convention to use "manifests".
func (ManifestDTO) TableName() string {
	return "manifests"
}

// fromDomain converts a manifest domain aggregate to its database representation.
func fromDomain(aggregate *manifest.Manifest) ManifestDTO {
	memberIDs := aggregate.WaybillIDs()
	waybillIDs := make(pq.StringArray, 0, len(memberIDs))
	for _, memberID := range memberIDs {
		waybillIDs = append(waybillIDs, memberID.String())
	}

	return ManifestDTO{
		ID:                  aggregate.ID().Bytes(),
		ManifestNo:          aggregate.ManifestNo(),
		Date:                aggregate.Date(),
		Origin:              aggregate.Origin().String(),
		Status:              aggregate.Status().String(),
		WaybillIDs:          waybillIDs,
		VerifiedBoxIDs:      pq.StringArray(aggregate.VerifiedBoxIDs()),
		VehicleNo:           aggregate.VehicleNo(),
		DriverName:          aggregate.DriverName(),
		DriverContact:       aggregate.DriverContact(),
		CreatorPartnerCode:  aggregate.CreatorPartnerCode(),
		DeliveryPartnerCode: aggregate.DeliveryPartnerCode(),
	}
}

// toDomain converts a database DTO to a manifest domain aggregate.
// Reconstructs the complete aggregate including membership order and the
// scan snapshot using RestoreManifest.
func toDomain(dto ManifestDTO) (*manifest.Manifest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	origin, err := manifest.OriginFromString(dto.Origin)
	if err != nil {
		return nil, err
	}

	status, err := manifest.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	waybillIDs := make([]kernel.UUID, 0, len(dto.WaybillIDs))
	for _, raw := range dto.WaybillIDs {
		waybillID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return nil, idErr
		}
		waybillIDs = append(waybillIDs, waybillID)
	}

	return manifest.RestoreManifest(
		id,
		dto.ManifestNo,
		dto.Date,
		origin,
		status,
		waybillIDs,
		dto.VerifiedBoxIDs,
		dto.VehicleNo,
		dto.DriverName,
		dto.DriverContact,
		dto.CreatorPartnerCode,
		dto.DeliveryPartnerCode,
	)
}
