package inventoryrepo

import (
	"context"
	"errors"
	"fmt"

	"freight/internal/core/domain/model/inventory"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInventoryRepository implements InventoryRepository using GORM.
type GormInventoryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormInventoryRepository creates a new GORM inventory repository.
func NewGormInventoryRepository(db *gorm.DB, tracker aggregateTracker) *GormInventoryRepository {
	return &GormInventoryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new inventory item to the database.
// Inserts use ON CONFLICT DO NOTHING so a duplicate number inside a bulk
// allocation does not abort the surrounding transaction; the duplicate is
// reported as inventory.ErrDuplicateNumber instead.
func (r *GormInventoryRepository) Add(ctx context.Context, item *inventory.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "waybill_number"}},
			DoNothing: true,
		}).
		Create(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", inventory.ErrDuplicateNumber, item.WaybillNumber())
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

// Update saves an existing inventory item to the database.
func (r *GormInventoryRepository) Update(ctx context.Context, item *inventory.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	result := r.db.WithContext(ctx).Model(&ItemDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

// GetByNumber retrieves an inventory item by its waybill number.
func (r *GormInventoryRepository) GetByNumber(ctx context.Context, waybillNumber string) (*inventory.Item, error) {
	var dto ItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "waybill_number = ?", waybillNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("inventoryItem", waybillNumber)
		}
		return nil, err
	}

	return toDomain(dto)
}
