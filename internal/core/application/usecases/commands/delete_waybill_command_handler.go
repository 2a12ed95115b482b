package commands

import (
	"context"
)

// DeleteWaybillCommandHandler handles waybill removal.
// Loads the aggregate first so the lifecycle rule is checked against the
// stored status, not the caller's view of it.
type DeleteWaybillCommandHandler struct {
	uowFactory WaybillUoWFactory
}

// NewDeleteWaybillCommandHandler creates a handler for waybill deletion.
// Requires a WaybillUoWFactory for transactional persistence.
func NewDeleteWaybillCommandHandler(uowFactory WaybillUoWFactory) DeleteWaybillCommandHandler {
	return DeleteWaybillCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
// Returns errs.ErrObjectNotFound when the waybill is unknown and
// waybill.ErrWaybillLocked when it already left Pending/Cancelled.
func (h DeleteWaybillCommandHandler) Handle(ctx context.Context, command DeleteWaybillCommand) error {
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

	waybillRepo := uow.WaybillRepository()

	aggregate, err := waybillRepo.Get(ctx, command.WaybillID())
	if err != nil {
		return err
	}

	if err = aggregate.EnsureDeletable(); err != nil {
		return err
	}

	if err = waybillRepo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
