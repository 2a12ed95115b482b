package commands

import (
	"context"

	"freight/internal/core/domain/services"
)

// DispatchManifestCommandHandler orchestrates the dispatch cascade.
// The manifest and all of its member waybills are loaded, mutated through
// ManifestDispatcher, and persisted inside one unit of work so the cascade
// is all-or-nothing in storage as well as in memory.
type DispatchManifestCommandHandler struct {
	uowFactory UoWFactory
}

// NewDispatchManifestCommandHandler creates a handler for manifest dispatch.
// Requires a UoWFactory spanning the manifest and waybill aggregates.
func NewDispatchManifestCommandHandler(uowFactory UoWFactory) DispatchManifestCommandHandler {
	return DispatchManifestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispatch command.
// Returns manifest.ErrInvalidTransition when the manifest already left
// Draft and manifest.ErrInconsistentManifest when any member is missing
// or not Pending; in both cases nothing is persisted.
func (h DispatchManifestCommandHandler) Handle(ctx context.Context, command DispatchManifestCommand) error {
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

	manifestRepo := uow.ManifestRepository()
	waybillRepo := uow.WaybillRepository()

	aggregate, err := manifestRepo.Get(ctx, command.ManifestID())
	if err != nil {
		return err
	}

	members, err := waybillRepo.GetAllByIDs(ctx, aggregate.WaybillIDs())
	if err != nil {
		return err
	}

	if err = services.NewManifestDispatcher().Dispatch(aggregate, members); err != nil {
		return err
	}

	if err = manifestRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	for _, member := range members {
		if err = waybillRepo.Update(ctx, member); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
