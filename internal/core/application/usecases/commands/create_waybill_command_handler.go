package commands

import (
	"context"

	"freight/internal/core/domain/model/waybill"
)

// CreateWaybillCommandHandler handles the business logic for waybill creation.
// Registers the waybill in Pending status under the acting partner and,
// when the number comes from the reserved pool, consumes the inventory item
// in the same transaction so the number can never be drawn twice.
type CreateWaybillCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateWaybillCommandHandler creates a handler for waybill creation operations.
// Requires a UoWFactory for transactional persistence across waybill and inventory.
func NewCreateWaybillCommandHandler(uowFactory UoWFactory) CreateWaybillCommandHandler {
	return CreateWaybillCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the waybill creation command.
// Returns waybill.ErrDuplicateWaybillNumber when the number is already
// registered anywhere, and the inventory errors when a pool draw fails.
func (h CreateWaybillCommandHandler) Handle(ctx context.Context, command CreateWaybillCommand) error {
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

	if command.FromInventory() {
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
	}

	aggregate, err := waybill.NewWaybill(
		command.WaybillID(),
		command.WaybillNumber(),
		command.Actor().PartnerCode(),
		command.NumberOfBoxes(),
		command.PackageWeight(),
		command.ReceiverCity(),
		command.ReceiverState(),
		command.ShippingDate(),
		command.EWayBillExpiryDate(),
	)
	if err != nil {
		return err
	}

	if err = uow.WaybillRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
