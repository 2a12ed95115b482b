package ports

import (
	"context"

	"freight/internal/core/domain/model/inventory"
)

// InventoryRepository defines the persistence contract for reserved
// waybill-number inventory items. Waybill numbers are unique across the
// whole allocator, independent of partner or company scope.
type InventoryRepository interface {
	// Add persists a new inventory item to storage.
	// Returns inventory.ErrDuplicateNumber when the waybill number is
	// already reserved, regardless of scope.
	Add(ctx context.Context, aggregate *inventory.Item) error

	// Update persists changes to an existing inventory item.
	Update(ctx context.Context, aggregate *inventory.Item) error

	// GetByNumber retrieves an inventory item by its waybill number.
	GetByNumber(ctx context.Context, waybillNumber string) (*inventory.Item, error)
}
