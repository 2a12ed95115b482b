package commands

import (
	"context"
)

// ConsumeInventoryCommandHandler handles single number draws from the pool.
type ConsumeInventoryCommandHandler struct {
	uowFactory InventoryUoWFactory
}

// NewConsumeInventoryCommandHandler creates a handler for inventory
// consumption. Requires an InventoryUoWFactory for transactional persistence.
func NewConsumeInventoryCommandHandler(uowFactory InventoryUoWFactory) ConsumeInventoryCommandHandler {
	return ConsumeInventoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the consumption command.
// Returns errs.ErrObjectNotFound when the number was never reserved and
// inventory.ErrAlreadyUsed when it was drawn before.
func (h ConsumeInventoryCommandHandler) Handle(ctx context.Context, command ConsumeInventoryCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	inventoryRepo := uow.InventoryRepository()

	item, err := inventoryRepo.GetByNumber(ctx, command.WaybillNumber())
	if err != nil {
		return err
	}

	if err = item.Consume(); err != nil {
		return err
	}

	if err = inventoryRepo.Update(ctx, item); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
