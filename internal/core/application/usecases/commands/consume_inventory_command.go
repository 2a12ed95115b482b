package commands

import (
	"errors"

	"freight/internal/pkg/guard"
)

var ErrConsumeInventoryCommandIsNotConstructed = errors.New(
	"ConsumeInventoryCommand must be created via NewConsumeInventoryCommand constructor",
)

// ConsumeInventoryCommand represents a request to draw one reserved waybill
// number from the pool. The flip is one-way; a consumed number is never
// returned to circulation.
type ConsumeInventoryCommand struct { //nolint:recvcheck //using for validation
	waybillNumber string

	guard guard.ConstructorGuard
}

// NewConsumeInventoryCommand creates a command to consume a reserved number.
func NewConsumeInventoryCommand(waybillNumber string) (ConsumeInventoryCommand, error) {
	command := ConsumeInventoryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setWaybillNumber(waybillNumber); err != nil {
		return ConsumeInventoryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ConsumeInventoryCommand) Validate() error {
	return c.guard.Validate(ErrConsumeInventoryCommandIsNotConstructed)
}

// WaybillNumber returns the number to consume.
func (c ConsumeInventoryCommand) WaybillNumber() string {
	return c.waybillNumber
}

func (c *ConsumeInventoryCommand) setWaybillNumber(waybillNumber string) error {
	if waybillNumber == "" {
		return ErrWaybillNumberIsRequired
	}

	c.waybillNumber = waybillNumber
	return nil
}
