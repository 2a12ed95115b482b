package commands

import (
	"context"

	"freight/internal/core/domain/model/manifest"
)

// CreateManifestCommandHandler handles manifest creation.
// Opens an empty Draft manifest owned by the acting partner.
type CreateManifestCommandHandler struct {
	uowFactory ManifestUoWFactory
}

// NewCreateManifestCommandHandler creates a handler for manifest creation.
// Requires a ManifestUoWFactory for transactional persistence.
func NewCreateManifestCommandHandler(uowFactory ManifestUoWFactory) CreateManifestCommandHandler {
	return CreateManifestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the manifest creation command.
func (h CreateManifestCommandHandler) Handle(ctx context.Context, command CreateManifestCommand) error {
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

	aggregate, err := manifest.NewManifest(
		command.ManifestID(),
		command.ManifestNo(),
		command.Date(),
		command.Origin(),
		command.VehicleNo(),
		command.DriverName(),
		command.DriverContact(),
		command.Actor().PartnerCode(),
		command.DeliveryPartnerCode(),
	)
	if err != nil {
		return err
	}

	if err = uow.ManifestRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
