package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrSaveVerificationCommandIsNotConstructed = errors.New(
	"SaveVerificationCommand must be created via NewSaveVerificationCommand constructor",
)

// SaveVerificationCommand represents a request to close a scan session and
// recompute the manifest's received status from the scanned-box snapshot.
// A manifest may be re-verified and re-saved any number of times.
type SaveVerificationCommand struct { //nolint:recvcheck //using for validation
	manifestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSaveVerificationCommand creates a command to save a verification pass.
func NewSaveVerificationCommand(manifestID kernel.UUID) (SaveVerificationCommand, error) {
	command := SaveVerificationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setManifestID(manifestID); err != nil {
		return SaveVerificationCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SaveVerificationCommand) Validate() error {
	return c.guard.Validate(ErrSaveVerificationCommandIsNotConstructed)
}

// ManifestID returns the identifier of the manifest being verified.
func (c SaveVerificationCommand) ManifestID() kernel.UUID {
	return c.manifestID
}

func (c *SaveVerificationCommand) setManifestID(manifestID kernel.UUID) error {
	if err := manifestID.Validate(); err != nil {
		return err
	}

	c.manifestID = manifestID
	return nil
}
