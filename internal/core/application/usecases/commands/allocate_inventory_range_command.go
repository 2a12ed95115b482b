package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrAllocateInventoryRangeCommandIsNotConstructed = errors.New(
		"AllocateInventoryRangeCommand must be created via NewAllocateInventoryRangeCommand constructor",
	)
	ErrRangeIsInvalid = errors.New("range bounds are invalid")
)

// AllocateInventoryRangeCommand represents a request to reserve the waybill
// numbers prefix+start .. prefix+end for the acting partner. An empty
// companyCode reserves market numbers usable by any company under the
// partner.
type AllocateInventoryRangeCommand struct { //nolint:recvcheck //using for validation
	actor       kernel.ActorContext
	companyCode string
	prefix      string
	start       int
	end         int

	guard guard.ConstructorGuard
}

// NewAllocateInventoryRangeCommand creates a command to reserve a number range.
// The range is inclusive on both ends; the size ceiling is enforced by the
// handler against its configured limit, not here.
func NewAllocateInventoryRangeCommand(
	actor kernel.ActorContext,
	companyCode string,
	prefix string,
	start int,
	end int,
) (AllocateInventoryRangeCommand, error) {
	command := AllocateInventoryRangeCommand{
		companyCode: companyCode,
		prefix:      prefix,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActor(actor),
		command.setRange(start, end),
	); err != nil {
		return AllocateInventoryRangeCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AllocateInventoryRangeCommand) Validate() error {
	return c.guard.Validate(ErrAllocateInventoryRangeCommandIsNotConstructed)
}

// Actor returns the acting partner context.
func (c AllocateInventoryRangeCommand) Actor() kernel.ActorContext {
	return c.actor
}

// CompanyCode returns the pinned company, or empty for market numbers.
func (c AllocateInventoryRangeCommand) CompanyCode() string {
	return c.companyCode
}

// Prefix returns the string prepended to every number in the range.
func (c AllocateInventoryRangeCommand) Prefix() string {
	return c.prefix
}

// Start returns the inclusive lower bound of the range.
func (c AllocateInventoryRangeCommand) Start() int {
	return c.start
}

// End returns the inclusive upper bound of the range.
func (c AllocateInventoryRangeCommand) End() int {
	return c.end
}

func (c *AllocateInventoryRangeCommand) setActor(actor kernel.ActorContext) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *AllocateInventoryRangeCommand) setRange(start, end int) error {
	if start < 0 || end < start {
		return ErrRangeIsInvalid
	}

	c.start = start
	c.end = end
	return nil
}
