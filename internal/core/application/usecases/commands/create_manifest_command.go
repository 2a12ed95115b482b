package commands

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/manifest"
	"freight/internal/pkg/guard"
)

var (
	ErrCreateManifestCommandIsNotConstructed = errors.New(
		"CreateManifestCommand must be created via NewCreateManifestCommand constructor",
	)
	ErrManifestNoIsRequired   = errors.New("manifest number is required")
	ErrManifestDateIsRequired = errors.New("manifest date is required")
)

// CreateManifestCommand represents a request to open a new Draft manifest
// for the acting partner. The delivery partner code is set only for
// outbound hub legs; the routing resolver may suggest it, the caller decides.
type CreateManifestCommand struct { //nolint:recvcheck //using for validation
	manifestID          kernel.UUID
	actor               kernel.ActorContext
	manifestNo          string
	date                time.Time
	origin              manifest.Origin
	vehicleNo           string
	driverName          string
	driverContact       string
	deliveryPartnerCode string

	guard guard.ConstructorGuard
}

// NewCreateManifestCommand creates a command to open a Draft manifest.
// Validates the identifier, the acting partner, the manifest number, the
// date, and the origin leg.
func NewCreateManifestCommand(
	manifestID kernel.UUID,
	actor kernel.ActorContext,
	manifestNo string,
	date time.Time,
	origin manifest.Origin,
	vehicleNo string,
	driverName string,
	driverContact string,
	deliveryPartnerCode string,
) (CreateManifestCommand, error) {
	command := CreateManifestCommand{
		vehicleNo:           vehicleNo,
		driverName:          driverName,
		driverContact:       driverContact,
		deliveryPartnerCode: deliveryPartnerCode,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setManifestID(manifestID),
		command.setActor(actor),
		command.setManifestNo(manifestNo),
		command.setDate(date),
		command.setOrigin(origin),
	); err != nil {
		return CreateManifestCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateManifestCommand) Validate() error {
	return c.guard.Validate(ErrCreateManifestCommandIsNotConstructed)
}

// ManifestID returns the unique identifier for the manifest.
func (c CreateManifestCommand) ManifestID() kernel.UUID {
	return c.manifestID
}

// Actor returns the acting partner context.
func (c CreateManifestCommand) Actor() kernel.ActorContext {
	return c.actor
}

// ManifestNo returns the human-readable manifest number.
func (c CreateManifestCommand) ManifestNo() string {
	return c.manifestNo
}

// Date returns the manifest date.
func (c CreateManifestCommand) Date() time.Time {
	return c.date
}

// Origin returns which leg of the network opened the manifest.
func (c CreateManifestCommand) Origin() manifest.Origin {
	return c.origin
}

// VehicleNo returns the carrying vehicle's registration number.
func (c CreateManifestCommand) VehicleNo() string {
	return c.vehicleNo
}

// DriverName returns the driver's name.
func (c CreateManifestCommand) DriverName() string {
	return c.driverName
}

// DriverContact returns the driver's contact number.
func (c CreateManifestCommand) DriverContact() string {
	return c.driverContact
}

// DeliveryPartnerCode returns the destination delivery partner, if any.
func (c CreateManifestCommand) DeliveryPartnerCode() string {
	return c.deliveryPartnerCode
}

func (c *CreateManifestCommand) setManifestID(manifestID kernel.UUID) error {
	if err := manifestID.Validate(); err != nil {
		return err
	}

	c.manifestID = manifestID
	return nil
}

func (c *CreateManifestCommand) setActor(actor kernel.ActorContext) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateManifestCommand) setManifestNo(manifestNo string) error {
	if manifestNo == "" {
		return ErrManifestNoIsRequired
	}

	c.manifestNo = manifestNo
	return nil
}

func (c *CreateManifestCommand) setDate(date time.Time) error {
	if date.IsZero() {
		return ErrManifestDateIsRequired
	}

	c.date = date
	return nil
}

func (c *CreateManifestCommand) setOrigin(origin manifest.Origin) error {
	if err := origin.Validate(); err != nil {
		return err
	}

	c.origin = origin
	return nil
}
