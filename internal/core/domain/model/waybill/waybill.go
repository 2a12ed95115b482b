package waybill

import (
	"errors"
	"fmt"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

var (
	// ErrWaybillIsNotConstructed is returned when a Waybill instance was not
	// created through NewWaybill or RestoreWaybill.
	ErrWaybillIsNotConstructed = errors.New("Waybill must be created via NewWaybill constructor")

	// ErrDuplicateWaybillNumber is returned when a waybill number already
	// exists anywhere in the registry, regardless of partner or company scope.
	ErrDuplicateWaybillNumber = errors.New("waybill number already exists")

	// ErrInvalidTransition is returned when a status change does not match an
	// edge in the transition table.
	ErrInvalidTransition = errors.New("status transition is not allowed")

	// ErrWaybillLocked is returned when deleting a waybill that already left
	// the Pending/Cancelled states. In-flight shipments cannot be removed.
	ErrWaybillLocked = errors.New("waybill is locked and cannot be deleted")

	// ErrReceivedByIsRequired is returned when transitioning to Delivered
	// without naming who signed for the shipment.
	ErrReceivedByIsRequired = errors.New("receivedBy is required for delivery")
)

// Waybill represents a single shipment: one shipper/receiver pair and N
// physical boxes travelling under one globally-unique waybill number.
// It is the aggregate root of the shipment lifecycle.
//
// Waybill follows these invariants:
//   - waybillNumber is unique across the entire registry
//   - numberOfBoxes is at least 1
//   - status transitions follow the table in Status
//   - deliveryDate and receivedBy are only set on terminal delivery/return
//   - can only be created through NewWaybill or RestoreWaybill
type Waybill struct {
	id                 kernel.UUID
	waybillNumber      string
	partnerCode        string
	numberOfBoxes      int
	packageWeight      float64
	receiverCity       string
	receiverState      string
	status             Status
	shippingDate       time.Time
	deliveryDate       *time.Time
	receivedBy         string
	eWayBillExpiryDate *time.Time

	isConstructed bool
}

// NewWaybill creates a waybill in Pending status.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - waybillNumber: globally unique shipment number (uniqueness is enforced
//     at the registry boundary; the aggregate only requires presence)
//   - partnerCode: the booking partner that owns the shipment
//   - numberOfBoxes: physical parcel count, at least 1
//   - packageWeight: total weight, must be positive
//   - receiverCity, receiverState: destination
//   - shippingDate: booking date
//   - eWayBillExpiryDate: optional statutory e-way bill expiry
func NewWaybill(
	id kernel.UUID,
	waybillNumber string,
	partnerCode string,
	numberOfBoxes int,
	packageWeight float64,
	receiverCity string,
	receiverState string,
	shippingDate time.Time,
	eWayBillExpiryDate *time.Time,
) (*Waybill, error) {
	w := &Waybill{
		status:             StatusPending,
		shippingDate:       shippingDate,
		eWayBillExpiryDate: eWayBillExpiryDate,
		isConstructed:      true,
	}

	if err := errors.Join(
		w.setID(id),
		w.setWaybillNumber(waybillNumber),
		w.setPartnerCode(partnerCode),
		w.setNumberOfBoxes(numberOfBoxes),
		w.setPackageWeight(packageWeight),
		w.setReceiver(receiverCity, receiverState),
	); err != nil {
		return nil, err
	}

	return w, nil
}

// RestoreWaybill reconstructs a waybill from persistence without applying
// the Pending-only rules of NewWaybill. The stored status must be valid.
func RestoreWaybill(
	id kernel.UUID,
	waybillNumber string,
	partnerCode string,
	numberOfBoxes int,
	packageWeight float64,
	receiverCity string,
	receiverState string,
	status Status,
	shippingDate time.Time,
	deliveryDate *time.Time,
	receivedBy string,
	eWayBillExpiryDate *time.Time,
) (*Waybill, error) {
	w, err := NewWaybill(
		id, waybillNumber, partnerCode, numberOfBoxes, packageWeight,
		receiverCity, receiverState, shippingDate, eWayBillExpiryDate,
	)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	w.status = status
	w.deliveryDate = deliveryDate
	w.receivedBy = receivedBy
	return w, nil
}

// Validate ensures the Waybill was created through a constructor.
func (w *Waybill) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWaybillIsNotConstructed
	}
	return nil
}

// IsEqual compares two waybills by identifier.
func (w *Waybill) IsEqual(other *Waybill) bool {
	return other != nil && w.id.IsEqual(other.id)
}

// ID returns the waybill's unique identifier.
func (w *Waybill) ID() kernel.UUID {
	return w.id
}

// WaybillNumber returns the globally unique shipment number.
func (w *Waybill) WaybillNumber() string {
	return w.waybillNumber
}

// PartnerCode returns the owning booking partner's code.
func (w *Waybill) PartnerCode() string {
	return w.partnerCode
}

// NumberOfBoxes returns the physical parcel count.
func (w *Waybill) NumberOfBoxes() int {
	return w.numberOfBoxes
}

// PackageWeight returns the total shipment weight.
func (w *Waybill) PackageWeight() float64 {
	return w.packageWeight
}

// ReceiverCity returns the destination city.
func (w *Waybill) ReceiverCity() string {
	return w.receiverCity
}

// ReceiverState returns the destination state.
func (w *Waybill) ReceiverState() string {
	return w.receiverState
}

// Status returns the current lifecycle status.
func (w *Waybill) Status() Status {
	return w.status
}

// ShippingDate returns the booking date.
func (w *Waybill) ShippingDate() time.Time {
	return w.shippingDate
}

// DeliveryDate returns the terminal delivery/return date, or nil while the
// shipment is still moving.
func (w *Waybill) DeliveryDate() *time.Time {
	return w.deliveryDate
}

// ReceivedBy returns who signed for the shipment. Empty unless Delivered.
func (w *Waybill) ReceivedBy() string {
	return w.receivedBy
}

// EWayBillExpiryDate returns the optional statutory e-way bill expiry.
func (w *Waybill) EWayBillExpiryDate() *time.Time {
	return w.eWayBillExpiryDate
}

// TransitionMeta carries the event data attached to a status change.
// ReceivedBy is mandatory for Delivered and ignored otherwise.
// OccurredAt stamps deliveryDate on terminal delivery/return.
type TransitionMeta struct {
	ReceivedBy string
	OccurredAt time.Time
}

// TransitionTo moves the waybill along one edge of the state machine.
//
// On transition into Delivered, deliveryDate and receivedBy are set from
// meta; receivedBy is mandatory. On transition into Returned, deliveryDate
// is set and receivedBy stays empty. Any edge not in the table fails with
// ErrInvalidTransition.
func (w *Waybill) TransitionTo(newStatus Status, meta TransitionMeta) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	if !w.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, w.status, newStatus)
	}

	switch newStatus {
	case StatusDelivered:
		if meta.ReceivedBy == "" {
			return ErrReceivedByIsRequired
		}
		at := meta.OccurredAt
		w.deliveryDate = &at
		w.receivedBy = meta.ReceivedBy
	case StatusReturned:
		at := meta.OccurredAt
		w.deliveryDate = &at
		w.receivedBy = ""
	case StatusUnknown, StatusPending, StatusInTransit, StatusOutForDelivery, StatusCancelled:
		// No event data beyond the status itself.
	}

	w.status = newStatus
	return nil
}

// MarkInTransit is the dispatch cascade edge, Pending → InTransit.
// Fails with ErrInvalidTransition when the waybill already left Pending.
func (w *Waybill) MarkInTransit() error {
	return w.TransitionTo(StatusInTransit, TransitionMeta{})
}

// EnsureDeletable returns ErrWaybillLocked unless the waybill is still in
// Pending or Cancelled status.
func (w *Waybill) EnsureDeletable() error {
	if !w.status.AllowsDeletion() {
		return fmt.Errorf("%w: status is %s", ErrWaybillLocked, w.status)
	}
	return nil
}

func (w *Waybill) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *Waybill) setWaybillNumber(waybillNumber string) error {
	if waybillNumber == "" {
		return errs.NewValueIsRequiredError("waybillNumber")
	}
	w.waybillNumber = waybillNumber
	return nil
}

func (w *Waybill) setPartnerCode(partnerCode string) error {
	if partnerCode == "" {
		return errs.NewValueIsRequiredError("partnerCode")
	}
	w.partnerCode = partnerCode
	return nil
}

func (w *Waybill) setNumberOfBoxes(numberOfBoxes int) error {
	if numberOfBoxes < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"numberOfBoxes is invalid",
			fmt.Errorf("%d is not at least 1", numberOfBoxes),
		)
	}
	w.numberOfBoxes = numberOfBoxes
	return nil
}

func (w *Waybill) setPackageWeight(packageWeight float64) error {
	if packageWeight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"packageWeight is invalid",
			fmt.Errorf("%v is not greater than 0", packageWeight),
		)
	}
	w.packageWeight = packageWeight
	return nil
}

func (w *Waybill) setReceiver(city, state string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("receiverCity")
	}
	if state == "" {
		return errs.NewValueIsRequiredError("receiverState")
	}
	w.receiverCity = city
	w.receiverState = state
	return nil
}
