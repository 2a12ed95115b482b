package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrAddWaybillToManifestCommandIsNotConstructed = errors.New(
	"AddWaybillToManifestCommand must be created via NewAddWaybillToManifestCommand constructor",
)

// AddWaybillToManifestCommand represents a request to add a waybill,
// looked up by its number, to a Draft manifest.
type AddWaybillToManifestCommand struct { //nolint:recvcheck //using for validation
	manifestID    kernel.UUID
	waybillNumber string

	guard guard.ConstructorGuard
}

// NewAddWaybillToManifestCommand creates a command to add a waybill to a manifest.
func NewAddWaybillToManifestCommand(manifestID kernel.UUID, waybillNumber string) (AddWaybillToManifestCommand, error) {
	command := AddWaybillToManifestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setManifestID(manifestID),
		command.setWaybillNumber(waybillNumber),
	); err != nil {
		return AddWaybillToManifestCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddWaybillToManifestCommand) Validate() error {
	return c.guard.Validate(ErrAddWaybillToManifestCommandIsNotConstructed)
}

// ManifestID returns the identifier of the target manifest.
func (c AddWaybillToManifestCommand) ManifestID() kernel.UUID {
	return c.manifestID
}

// WaybillNumber returns the number of the waybill to add.
func (c AddWaybillToManifestCommand) WaybillNumber() string {
	return c.waybillNumber
}

func (c *AddWaybillToManifestCommand) setManifestID(manifestID kernel.UUID) error {
	if err := manifestID.Validate(); err != nil {
		return err
	}

	c.manifestID = manifestID
	return nil
}

func (c *AddWaybillToManifestCommand) setWaybillNumber(waybillNumber string) error {
	if waybillNumber == "" {
		return ErrWaybillNumberIsRequired
	}

	c.waybillNumber = waybillNumber
	return nil
}
