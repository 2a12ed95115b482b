package commands

import (
	"context"

	"freight/internal/core/domain/services"
)

// SaveVerificationCommandHandler closes a scan session.
// Recomputes Received/Short Received from the current snapshot; the
// status stays a projection of the scanned set, never a one-way latch.
type SaveVerificationCommandHandler struct {
	uowFactory UoWFactory
}

// NewSaveVerificationCommandHandler creates a handler for saving
// verification passes. Requires a UoWFactory spanning both aggregates.
func NewSaveVerificationCommandHandler(uowFactory UoWFactory) SaveVerificationCommandHandler {
	return SaveVerificationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the save command.
// Returns manifest.ErrNotVerifiable when the manifest was never dispatched.
func (h SaveVerificationCommandHandler) Handle(ctx context.Context, command SaveVerificationCommand) error {
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

	if err = services.NewBoxVerifier().SaveVerification(aggregate, members); err != nil {
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
