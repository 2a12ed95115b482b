package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrVerifyBoxCommandIsNotConstructed = errors.New(
		"VerifyBoxCommand must be created via NewVerifyBoxCommand constructor",
	)
	ErrBoxIDIsRequired = errors.New("box id is required")
)

// VerifyBoxCommand represents a hub scan of one box against a dispatched
// manifest's expected box set.
type VerifyBoxCommand struct { //nolint:recvcheck //using for validation
	manifestID kernel.UUID
	boxID      string

	guard guard.ConstructorGuard
}

// NewVerifyBoxCommand creates a command to record one box scan.
func NewVerifyBoxCommand(manifestID kernel.UUID, boxID string) (VerifyBoxCommand, error) {
	command := VerifyBoxCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setManifestID(manifestID),
		command.setBoxID(boxID),
	); err != nil {
		return VerifyBoxCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyBoxCommand) Validate() error {
	return c.guard.Validate(ErrVerifyBoxCommandIsNotConstructed)
}

// ManifestID returns the identifier of the manifest being verified.
func (c VerifyBoxCommand) ManifestID() kernel.UUID {
	return c.manifestID
}

// BoxID returns the scanned box identifier.
func (c VerifyBoxCommand) BoxID() string {
	return c.boxID
}

func (c *VerifyBoxCommand) setManifestID(manifestID kernel.UUID) error {
	if err := manifestID.Validate(); err != nil {
		return err
	}

	c.manifestID = manifestID
	return nil
}

func (c *VerifyBoxCommand) setBoxID(boxID string) error {
	if boxID == "" {
		return ErrBoxIDIsRequired
	}

	c.boxID = boxID
	return nil
}
