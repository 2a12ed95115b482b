package commands

import (
	"context"
	"fmt"

	"freight/internal/core/domain/model/manifest"
)

// AddWaybillToManifestCommandHandler handles manifest membership additions.
// Eligibility is checked in two layers: the aggregate enforces Draft status
// and Pending members, the handler enforces the one-manifest-at-a-time rule
// that no single aggregate can see.
type AddWaybillToManifestCommandHandler struct {
	uowFactory UoWFactory
}

// NewAddWaybillToManifestCommandHandler creates a handler for adding
// waybills to manifests. Requires a UoWFactory spanning both aggregates.
func NewAddWaybillToManifestCommandHandler(uowFactory UoWFactory) AddWaybillToManifestCommandHandler {
	return AddWaybillToManifestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the membership command.
// Returns manifest.ErrNotEligible when the manifest is not Draft, the
// waybill is not Pending, or the waybill already sits on another manifest.
func (h AddWaybillToManifestCommandHandler) Handle(ctx context.Context, command AddWaybillToManifestCommand) error {
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

	member, err := uow.WaybillRepository().GetByNumber(ctx, command.WaybillNumber())
	if err != nil {
		return err
	}

	manifested, err := manifestRepo.IsWaybillManifested(ctx, member.ID())
	if err != nil {
		return err
	}
	if manifested {
		return fmt.Errorf("%w: waybill %s is already on a manifest",
			manifest.ErrNotEligible, member.WaybillNumber())
	}

	if err = aggregate.AddWaybill(member); err != nil {
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
