package commands

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/inventory"
	"freight/internal/core/domain/model/kernel"
)

// AllocateInventoryRangeResult reports how a range allocation went.
// Skipped counts numbers that were already reserved somewhere in the pool;
// a fully-skipped range is a successful call, not an error.
type AllocateInventoryRangeResult struct {
	AddedCount   int
	SkippedCount int
}

// AllocateInventoryRangeCommandHandler handles bulk number reservation.
// The whole range is inserted in one transaction; duplicates are skipped
// item by item while everything else is rolled back on failure.
type AllocateInventoryRangeCommandHandler struct {
	uowFactory InventoryUoWFactory
	rangeLimit int
}

// NewAllocateInventoryRangeCommandHandler creates a handler for range
// allocation. rangeLimit caps the expanded range size and comes from
// configuration.
func NewAllocateInventoryRangeCommandHandler(uowFactory InventoryUoWFactory, rangeLimit int) AllocateInventoryRangeCommandHandler {
	return AllocateInventoryRangeCommandHandler{
		uowFactory: uowFactory,
		rangeLimit: rangeLimit,
	}
}

// Handle processes the allocation command.
// Returns inventory.ErrRangeTooLarge when the expanded range exceeds the
// configured ceiling; already-reserved numbers count as skipped.
func (h AllocateInventoryRangeCommandHandler) Handle(
	ctx context.Context,
	command AllocateInventoryRangeCommand,
) (AllocateInventoryRangeResult, error) {
	if err := command.Validate(); err != nil {
		return AllocateInventoryRangeResult{}, err
	}

	numbers, err := inventory.ExpandRange(command.Prefix(), command.Start(), command.End(), h.rangeLimit)
	if err != nil {
		return AllocateInventoryRangeResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return AllocateInventoryRangeResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	inventoryRepo := uow.InventoryRepository()

	var result AllocateInventoryRangeResult
	for _, number := range numbers {
		item, itemErr := inventory.NewItem(
			kernel.NewUUID(),
			number,
			command.Actor().PartnerCode(),
			command.CompanyCode(),
		)
		if itemErr != nil {
			return AllocateInventoryRangeResult{}, itemErr
		}

		addErr := inventoryRepo.Add(ctx, item)
		if errors.Is(addErr, inventory.ErrDuplicateNumber) {
			result.SkippedCount++
			continue
		}
		if addErr != nil {
			return AllocateInventoryRangeResult{}, addErr
		}

		result.AddedCount++
	}

	if err = uow.Commit(ctx); err != nil {
		return AllocateInventoryRangeResult{}, err
	}

	return result, nil
}
