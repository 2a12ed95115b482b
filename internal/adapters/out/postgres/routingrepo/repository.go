package routingrepo

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/routing"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRoutingRepository implements RoutingRepository using GORM.
type GormRoutingRepository struct {
	db *gorm.DB
}

// NewGormRoutingRepository creates a new GORM routing repository.
func NewGormRoutingRepository(db *gorm.DB) *GormRoutingRepository {
	return &GormRoutingRepository{db: db}
}

// Upsert stores the association, replacing any existing destination for the
// same key. Last write wins; no history is kept.
func (r *GormRoutingRepository) Upsert(ctx context.Context, association *routing.Association) error {
	if err := association.Validate(); err != nil {
		return err
	}

	dto := fromDomain(association)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "association_type"}, {Name: "from_partner_code"}},
			DoUpdates: clause.AssignmentColumns([]string{"to_partner_code"}),
		}).
		Create(&dto).Error
}

// Get retrieves the association for the given key.
func (r *GormRoutingRepository) Get(
	ctx context.Context,
	associationType routing.AssociationType,
	fromPartnerCode string,
) (*routing.Association, error) {
	if err := associationType.Validate(); err != nil {
		return nil, err
	}

	var dto AssociationDTO
	err := r.db.WithContext(ctx).
		First(&dto, "association_type = ? AND from_partner_code = ?", associationType.String(), fromPartnerCode).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("partnerAssociation", fromPartnerCode)
		}
		return nil, err
	}

	return toDomain(dto)
}
