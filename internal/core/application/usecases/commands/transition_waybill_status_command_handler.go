package commands

import (
	"context"

	"freight/internal/core/domain/model/waybill"
)

// TransitionWaybillStatusCommandHandler handles waybill lifecycle moves.
// The transition table itself lives on the aggregate; the handler only
// loads, applies, and persists.
type TransitionWaybillStatusCommandHandler struct {
	uowFactory WaybillUoWFactory
}

// NewTransitionWaybillStatusCommandHandler creates a handler for waybill
// status transitions. Requires a WaybillUoWFactory for transactional persistence.
func NewTransitionWaybillStatusCommandHandler(uowFactory WaybillUoWFactory) TransitionWaybillStatusCommandHandler {
	return TransitionWaybillStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transition command.
// Returns errs.ErrObjectNotFound when the waybill is unknown and
// waybill.ErrInvalidTransition when the requested edge is off the table.
func (h TransitionWaybillStatusCommandHandler) Handle(ctx context.Context, command TransitionWaybillStatusCommand) error {
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

	meta := waybill.TransitionMeta{
		ReceivedBy: command.ReceivedBy(),
		OccurredAt: command.OccurredAt(),
	}
	if err = aggregate.TransitionTo(command.NewStatus(), meta); err != nil {
		return err
	}

	if err = waybillRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
