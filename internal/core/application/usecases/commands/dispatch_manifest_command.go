package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrDispatchManifestCommandIsNotConstructed = errors.New(
	"DispatchManifestCommand must be created via NewDispatchManifestCommand constructor",
)

// DispatchManifestCommand represents a request to dispatch a Draft manifest,
// moving every member waybill to In Transit in the same transaction.
type DispatchManifestCommand struct { //nolint:recvcheck //using for validation
	manifestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDispatchManifestCommand creates a command to dispatch a manifest.
func NewDispatchManifestCommand(manifestID kernel.UUID) (DispatchManifestCommand, error) {
	command := DispatchManifestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setManifestID(manifestID); err != nil {
		return DispatchManifestCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchManifestCommand) Validate() error {
	return c.guard.Validate(ErrDispatchManifestCommandIsNotConstructed)
}

// ManifestID returns the identifier of the manifest to dispatch.
func (c DispatchManifestCommand) ManifestID() kernel.UUID {
	return c.manifestID
}

func (c *DispatchManifestCommand) setManifestID(manifestID kernel.UUID) error {
	if err := manifestID.Validate(); err != nil {
		return err
	}

	c.manifestID = manifestID
	return nil
}
