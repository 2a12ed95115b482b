package commands

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrCreateWaybillCommandIsNotConstructed = errors.New(
		"CreateWaybillCommand must be created via NewCreateWaybillCommand constructor",
	)
	ErrWaybillNumberIsRequired = errors.New("waybill number is required")
	ErrNumberOfBoxesIsInvalid  = errors.New("number of boxes must be greater than 0")
	ErrPackageWeightIsInvalid  = errors.New("package weight must be greater than 0")
	ErrReceiverCityIsRequired  = errors.New("receiver city is required")
	ErrReceiverStateIsRequired = errors.New("receiver state is required")
	ErrShippingDateIsRequired  = errors.New("shipping date is required")
)

// CreateWaybillCommand represents a request to register a new waybill.
// The waybill is owned by the acting partner and starts in Pending status.
// When fromInventory is set, the waybill number must be drawn from the
// reserved-number pool and is consumed in the same transaction.
type CreateWaybillCommand struct { //nolint:recvcheck //using for validation
	waybillID          kernel.UUID
	actor              kernel.ActorContext
	waybillNumber      string
	numberOfBoxes      int
	packageWeight      float64
	receiverCity       string
	receiverState      string
	shippingDate       time.Time
	eWayBillExpiryDate *time.Time
	fromInventory      bool

	guard guard.ConstructorGuard
}

// NewCreateWaybillCommand creates a command to register a new waybill.
// Validates the identifier, the acting partner, and the shipment fields.
// Returns an error if any validation fails.
func NewCreateWaybillCommand(
	waybillID kernel.UUID,
	actor kernel.ActorContext,
	waybillNumber string,
	numberOfBoxes int,
	packageWeight float64,
	receiverCity string,
	receiverState string,
	shippingDate time.Time,
	eWayBillExpiryDate *time.Time,
	fromInventory bool,
) (CreateWaybillCommand, error) {
	command := CreateWaybillCommand{
		eWayBillExpiryDate: eWayBillExpiryDate,
		fromInventory:      fromInventory,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setWaybillID(waybillID),
		command.setActor(actor),
		command.setWaybillNumber(waybillNumber),
		command.setNumberOfBoxes(numberOfBoxes),
		command.setPackageWeight(packageWeight),
		command.setReceiverCity(receiverCity),
		command.setReceiverState(receiverState),
		command.setShippingDate(shippingDate),
	); err != nil {
		return CreateWaybillCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateWaybillCommandIsNotConstructed if validation fails.
func (c CreateWaybillCommand) Validate() error {
	return c.guard.Validate(ErrCreateWaybillCommandIsNotConstructed)
}

// WaybillID returns the unique identifier for the waybill.
func (c CreateWaybillCommand) WaybillID() kernel.UUID {
	return c.waybillID
}

// Actor returns the acting partner context.
func (c CreateWaybillCommand) Actor() kernel.ActorContext {
	return c.actor
}

// WaybillNumber returns the requested waybill number.
func (c CreateWaybillCommand) WaybillNumber() string {
	return c.waybillNumber
}

// NumberOfBoxes returns how many boxes the shipment splits into.
func (c CreateWaybillCommand) NumberOfBoxes() int {
	return c.numberOfBoxes
}

// PackageWeight returns the shipment weight in kilograms.
func (c CreateWaybillCommand) PackageWeight() float64 {
	return c.packageWeight
}

// ReceiverCity returns the destination city.
func (c CreateWaybillCommand) ReceiverCity() string {
	return c.receiverCity
}

// ReceiverState returns the destination state.
func (c CreateWaybillCommand) ReceiverState() string {
	return c.receiverState
}

// ShippingDate returns the booking date of the shipment.
func (c CreateWaybillCommand) ShippingDate() time.Time {
	return c.shippingDate
}

// EWayBillExpiryDate returns the optional e-way bill expiry date.
func (c CreateWaybillCommand) EWayBillExpiryDate() *time.Time {
	return c.eWayBillExpiryDate
}

// FromInventory reports whether the number is drawn from the reserved pool.
func (c CreateWaybillCommand) FromInventory() bool {
	return c.fromInventory
}

func (c *CreateWaybillCommand) setWaybillID(waybillID kernel.UUID) error {
	if err := waybillID.Validate(); err != nil {
		return err
	}

	c.waybillID = waybillID
	return nil
}

func (c *CreateWaybillCommand) setActor(actor kernel.ActorContext) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateWaybillCommand) setWaybillNumber(waybillNumber string) error {
	if waybillNumber == "" {
		return ErrWaybillNumberIsRequired
	}

	c.waybillNumber = waybillNumber
	return nil
}

func (c *CreateWaybillCommand) setNumberOfBoxes(numberOfBoxes int) error {
	if numberOfBoxes <= 0 {
		return ErrNumberOfBoxesIsInvalid
	}

	c.numberOfBoxes = numberOfBoxes
	return nil
}

func (c *CreateWaybillCommand) setPackageWeight(packageWeight float64) error {
	if packageWeight <= 0 {
		return ErrPackageWeightIsInvalid
	}

	c.packageWeight = packageWeight
	return nil
}

func (c *CreateWaybillCommand) setReceiverCity(receiverCity string) error {
	if receiverCity == "" {
		return ErrReceiverCityIsRequired
	}

	c.receiverCity = receiverCity
	return nil
}

func (c *CreateWaybillCommand) setReceiverState(receiverState string) error {
	if receiverState == "" {
		return ErrReceiverStateIsRequired
	}

	c.receiverState = receiverState
	return nil
}

func (c *CreateWaybillCommand) setShippingDate(shippingDate time.Time) error {
	if shippingDate.IsZero() {
		return ErrShippingDateIsRequired
	}

	c.shippingDate = shippingDate
	return nil
}
