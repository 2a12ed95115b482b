package commands

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/waybill"
	"freight/internal/pkg/guard"
)

var (
	ErrTransitionWaybillStatusCommandIsNotConstructed = errors.New(
		"TransitionWaybillStatusCommand must be created via NewTransitionWaybillStatusCommand constructor",
	)
	ErrNewStatusIsInvalid = errors.New("new status is invalid")
)

// TransitionWaybillStatusCommand represents a request to move a waybill
// along its lifecycle. The allowed edges are fixed; anything off the table
// fails with waybill.ErrInvalidTransition at handling time.
type TransitionWaybillStatusCommand struct { //nolint:recvcheck //using for validation
	waybillID  kernel.UUID
	newStatus  waybill.Status
	receivedBy string
	occurredAt time.Time

	guard guard.ConstructorGuard
}

// NewTransitionWaybillStatusCommand creates a command to transition a waybill.
// receivedBy is mandatory only for transitions into Delivered; occurredAt
// stamps the delivery or return date and defaults to now when zero.
func NewTransitionWaybillStatusCommand(
	waybillID kernel.UUID,
	newStatus waybill.Status,
	receivedBy string,
	occurredAt time.Time,
) (TransitionWaybillStatusCommand, error) {
	command := TransitionWaybillStatusCommand{
		receivedBy: receivedBy,
		occurredAt: occurredAt,
		guard:      guard.NewConstructorGuard(),
	}

	if command.occurredAt.IsZero() {
		command.occurredAt = time.Now().UTC()
	}

	if err := errors.Join(
		command.setWaybillID(waybillID),
		command.setNewStatus(newStatus),
	); err != nil {
		return TransitionWaybillStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionWaybillStatusCommand) Validate() error {
	return c.guard.Validate(ErrTransitionWaybillStatusCommandIsNotConstructed)
}

// WaybillID returns the identifier of the waybill to transition.
func (c TransitionWaybillStatusCommand) WaybillID() kernel.UUID {
	return c.waybillID
}

// NewStatus returns the requested target status.
func (c TransitionWaybillStatusCommand) NewStatus() waybill.Status {
	return c.newStatus
}

// ReceivedBy returns who signed for the shipment on delivery.
func (c TransitionWaybillStatusCommand) ReceivedBy() string {
	return c.receivedBy
}

// OccurredAt returns when the transition took effect.
func (c TransitionWaybillStatusCommand) OccurredAt() time.Time {
	return c.occurredAt
}

func (c *TransitionWaybillStatusCommand) setWaybillID(waybillID kernel.UUID) error {
	if err := waybillID.Validate(); err != nil {
		return err
	}

	c.waybillID = waybillID
	return nil
}

func (c *TransitionWaybillStatusCommand) setNewStatus(newStatus waybill.Status) error {
	if err := newStatus.Validate(); err != nil {
		return ErrNewStatusIsInvalid
	}

	c.newStatus = newStatus
	return nil
}
