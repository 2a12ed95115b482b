package waybillrepo

import (
	"context"
	"errors"
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/waybill"
	"freight/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// uniqueViolation is the Postgres error code for unique constraint violations.
const uniqueViolation = "23505"

// GormWaybillRepository implements WaybillRepository using GORM.
type GormWaybillRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormWaybillRepository creates a new GORM waybill repository.
func NewGormWaybillRepository(db *gorm.DB, tracker aggregateTracker) *GormWaybillRepository {
	return &GormWaybillRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new waybill to the database.
// A unique-index violation on the waybill number surfaces as
// waybill.ErrDuplicateWaybillNumber.
func (r *GormWaybillRepository) Add(ctx context.Context, aggregate *waybill.Waybill) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return fmt.Errorf("%w: %s", waybill.ErrDuplicateWaybillNumber, aggregate.WaybillNumber())
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing waybill to the database.
func (r *GormWaybillRepository) Update(ctx context.Context, aggregate *waybill.Waybill) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&WaybillDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a waybill by ID.
func (r *GormWaybillRepository) Get(ctx context.Context, id kernel.UUID) (*waybill.Waybill, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WaybillDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("waybill", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByNumber retrieves a waybill by its waybill number.
func (r *GormWaybillRepository) GetByNumber(ctx context.Context, waybillNumber string) (*waybill.Waybill, error) {
	var dto WaybillDTO
	if err := r.db.WithContext(ctx).First(&dto, "waybill_number = ?", waybillNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("waybill", waybillNumber)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByIDs retrieves the waybills for the given identifiers.
// Missing ids are not an error; the caller checks coverage.
func (r *GormWaybillRepository) GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*waybill.Waybill, error) {
	if len(ids) == 0 {
		return []*waybill.Waybill{}, nil
	}

	rawIDs := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		rawIDs = append(rawIDs, id.Bytes())
	}

	var dtos []WaybillDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", rawIDs).Error; err != nil {
		return nil, err
	}

	waybills := make([]*waybill.Waybill, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		waybills = append(waybills, aggregate)
	}

	return waybills, nil
}

// Delete removes a waybill from the database.
// The lifecycle rule (Pending/Cancelled only) is enforced by the caller.
func (r *GormWaybillRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&WaybillDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("waybill", id.String())
	}

	return nil
}
