package commands

import (
	"context"
)

// SetPartnerAssociationCommandHandler handles routing association writes.
// Last write wins per (associationType, fromPartnerCode) key.
type SetPartnerAssociationCommandHandler struct {
	uowFactory RoutingUoWFactory
}

// NewSetPartnerAssociationCommandHandler creates a handler for routing
// association writes. Requires a RoutingUoWFactory for transactional persistence.
func NewSetPartnerAssociationCommandHandler(uowFactory RoutingUoWFactory) SetPartnerAssociationCommandHandler {
	return SetPartnerAssociationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the association write command.
func (h SetPartnerAssociationCommandHandler) Handle(ctx context.Context, command SetPartnerAssociationCommand) error {
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

	if err := uow.RoutingRepository().Upsert(ctx, command.Association()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
