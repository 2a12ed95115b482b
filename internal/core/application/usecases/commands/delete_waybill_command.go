package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrDeleteWaybillCommandIsNotConstructed = errors.New(
	"DeleteWaybillCommand must be created via NewDeleteWaybillCommand constructor",
)

// DeleteWaybillCommand represents a request to remove a waybill from the
// registry. Only Pending and Cancelled waybills may be removed; anything
// in flight is locked.
type DeleteWaybillCommand struct { //nolint:recvcheck //using for validation
	waybillID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteWaybillCommand creates a command to delete a waybill.
func NewDeleteWaybillCommand(waybillID kernel.UUID) (DeleteWaybillCommand, error) {
	command := DeleteWaybillCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setWaybillID(waybillID); err != nil {
		return DeleteWaybillCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteWaybillCommand) Validate() error {
	return c.guard.Validate(ErrDeleteWaybillCommandIsNotConstructed)
}

// WaybillID returns the identifier of the waybill to delete.
func (c DeleteWaybillCommand) WaybillID() kernel.UUID {
	return c.waybillID
}

func (c *DeleteWaybillCommand) setWaybillID(waybillID kernel.UUID) error {
	if err := waybillID.Validate(); err != nil {
		return err
	}

	c.waybillID = waybillID
	return nil
}
