package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrRemoveWaybillFromManifestCommandIsNotConstructed = errors.New(
	"RemoveWaybillFromManifestCommand must be created via NewRemoveWaybillFromManifestCommand constructor",
)

// RemoveWaybillFromManifestCommand represents a request to drop a waybill
// from a Draft manifest. Dispatched manifests are immutable.
type RemoveWaybillFromManifestCommand struct { //nolint:recvcheck //using for validation
	manifestID kernel.UUID
	waybillID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveWaybillFromManifestCommand creates a command to remove a waybill
// from a manifest.
func NewRemoveWaybillFromManifestCommand(manifestID, waybillID kernel.UUID) (RemoveWaybillFromManifestCommand, error) {
	command := RemoveWaybillFromManifestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setManifestID(manifestID),
		command.setWaybillID(waybillID),
	); err != nil {
		return RemoveWaybillFromManifestCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveWaybillFromManifestCommand) Validate() error {
	return c.guard.Validate(ErrRemoveWaybillFromManifestCommandIsNotConstructed)
}

// ManifestID returns the identifier of the target manifest.
func (c RemoveWaybillFromManifestCommand) ManifestID() kernel.UUID {
	return c.manifestID
}

// WaybillID returns the identifier of the waybill to remove.
func (c RemoveWaybillFromManifestCommand) WaybillID() kernel.UUID {
	return c.waybillID
}

func (c *RemoveWaybillFromManifestCommand) setManifestID(manifestID kernel.UUID) error {
	if err := manifestID.Validate(); err != nil {
		return err
	}

	c.manifestID = manifestID
	return nil
}

func (c *RemoveWaybillFromManifestCommand) setWaybillID(waybillID kernel.UUID) error {
	if err := waybillID.Validate(); err != nil {
		return err
	}

	c.waybillID = waybillID
	return nil
}
