package commands

import (
	"context"

	"freight/internal/core/domain/services"
)

// VerifyBoxCommandHandler handles single box scans.
// The expected box set is recomputed from the member waybills on every
// scan; only the scanned-id snapshot is written back.
type VerifyBoxCommandHandler struct {
	uowFactory UoWFactory
}

// NewVerifyBoxCommandHandler creates a handler for box scans.
// Requires a UoWFactory spanning the manifest and waybill aggregates.
func NewVerifyBoxCommandHandler(uowFactory UoWFactory) VerifyBoxCommandHandler {
	return VerifyBoxCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the scan command.
// Returns manifest.ErrBoxNotInManifest for a box outside the manifest and
// manifest.ErrNotVerifiable when the manifest was never dispatched.
func (h VerifyBoxCommandHandler) Handle(ctx context.Context, command VerifyBoxCommand) error {
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

	members, err := uow.WaybillRepository().GetAllByIDs(ctx, aggregate.WaybillIDs())
	if err != nil {
		return err
	}

	if err = services.NewBoxVerifier().VerifyBox(aggregate, members, command.BoxID()); err != nil {
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
