package commands

import (
	"context"
)

// RemoveWaybillFromManifestCommandHandler handles manifest membership removals.
type RemoveWaybillFromManifestCommandHandler struct {
	uowFactory ManifestUoWFactory
}

// NewRemoveWaybillFromManifestCommandHandler creates a handler for removing
// waybills from manifests. Requires a ManifestUoWFactory for transactional persistence.
func NewRemoveWaybillFromManifestCommandHandler(uowFactory ManifestUoWFactory) RemoveWaybillFromManifestCommandHandler {
	return RemoveWaybillFromManifestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal command.
// Returns manifest.ErrNotEligible when the manifest already left Draft and
// errs.ErrObjectNotFound when the waybill is not a member.
func (h RemoveWaybillFromManifestCommandHandler) Handle(ctx context.Context, command RemoveWaybillFromManifestCommand) error {
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

	aggregate, err := manifestRepo.Get(ctx, command.ManifestID())
	if err != nil {
		return err
	}

	if err = aggregate.RemoveWaybill(command.WaybillID()); err != nil {
		return err
	}

	if err = manifestRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
