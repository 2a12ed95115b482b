package manifest

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/waybill"
	"freight/internal/pkg/errs"
)

var (
	// ErrManifestIsNotConstructed is returned when a Manifest instance was
	// not created through NewManifest or RestoreManifest.
	ErrManifestIsNotConstructed = errors.New("Manifest must be created via NewManifest constructor")

	// ErrNotEligible is returned when a waybill cannot join or leave a
	// manifest: the manifest is not Draft, the waybill is not Pending, or it
	// already belongs to an active manifest.
	ErrNotEligible = errors.New("waybill is not eligible for this manifest operation")

	// ErrInvalidTransition is returned when a manifest status change does
	// not match the Draft → Dispatched → {Received, Short Received} flow.
	ErrInvalidTransition = errors.New("manifest status transition is not allowed")

	// ErrBoxNotInManifest is returned when a scanned box id does not belong
	// to the manifest's expected box set.
	ErrBoxNotInManifest = errors.New("box does not belong to manifest")

	// ErrInconsistentManifest is returned when dispatch finds a member
	// waybill that is no longer Pending. The whole dispatch fails rather
	// than partially applying the cascade.
	ErrInconsistentManifest = errors.New("manifest members are not all pending")

	// ErrNotVerifiable is returned when verification is attempted on a
	// manifest that has not been dispatched yet.
	ErrNotVerifiable = errors.New("manifest has not been dispatched")
)

// Manifest represents a batch of waybills moving together on one vehicle
// leg. It is the unit of dispatch and of scan-based verification at the
// receiving hub.
//
// Manifest follows these invariants:
//   - waybillIDs is an ordered set with no duplicates
//   - membership changes only while Draft
//   - a waybill must be Pending when inserted
//   - once Dispatched, only the verification snapshot may change
//   - verifiedBoxIDs only ever contains ids from the expected box set
type Manifest struct {
	id                  kernel.UUID
	manifestNo          string
	date                time.Time
	origin              Origin
	status              Status
	waybillIDs          []kernel.UUID
	verifiedBoxIDs      map[string]struct{}
	vehicleNo           string
	driverName          string
	driverContact       string
	creatorPartnerCode  string
	deliveryPartnerCode string

	isConstructed bool
}

// NewManifest creates an empty Draft manifest.
//
// Parameters:
//   - id: unique identifier
//   - manifestNo: human-readable unique number
//   - date: manifest date
//   - origin: booking or hub
//   - vehicleNo, driverName, driverContact: transport leg details, optional
//   - creatorPartnerCode: the partner assembling the manifest
//   - deliveryPartnerCode: destination partner for an outbound hub leg,
//     empty otherwise
func NewManifest(
	id kernel.UUID,
	manifestNo string,
	date time.Time,
	origin Origin,
	vehicleNo string,
	driverName string,
	driverContact string,
	creatorPartnerCode string,
	deliveryPartnerCode string,
) (*Manifest, error) {
	m := &Manifest{
		status:              StatusDraft,
		date:                date,
		vehicleNo:           vehicleNo,
		driverName:          driverName,
		driverContact:       driverContact,
		deliveryPartnerCode: deliveryPartnerCode,
		waybillIDs:          make([]kernel.UUID, 0),
		verifiedBoxIDs:      make(map[string]struct{}),
		isConstructed:       true,
	}

	if err := errors.Join(
		m.setID(id),
		m.setManifestNo(manifestNo),
		m.setOrigin(origin),
		m.setCreatorPartnerCode(creatorPartnerCode),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreManifest reconstructs a manifest from persistence, including its
// membership and verification snapshot.
func RestoreManifest(
	id kernel.UUID,
	manifestNo string,
	date time.Time,
	origin Origin,
	status Status,
	waybillIDs []kernel.UUID,
	verifiedBoxIDs []string,
	vehicleNo string,
	driverName string,
	driverContact string,
	creatorPartnerCode string,
	deliveryPartnerCode string,
) (*Manifest, error) {
	m, err := NewManifest(
		id, manifestNo, date, origin,
		vehicleNo, driverName, driverContact,
		creatorPartnerCode, deliveryPartnerCode,
	)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	m.status = status

	for _, waybillID := range waybillIDs {
		if err = waybillID.Validate(); err != nil {
			return nil, err
		}
		if m.isMember(waybillID) {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"waybillIDs is invalid",
				fmt.Errorf("duplicate waybill id %s", waybillID),
			)
		}
		m.waybillIDs = append(m.waybillIDs, waybillID)
	}

	for _, boxID := range verifiedBoxIDs {
		m.verifiedBoxIDs[boxID] = struct{}{}
	}

	return m, nil
}

// Validate ensures the Manifest was created through a constructor.
func (m *Manifest) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrManifestIsNotConstructed
	}
	return nil
}

// IsEqual compares two manifests by identifier.
func (m *Manifest) IsEqual(other *Manifest) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the manifest's unique identifier.
func (m *Manifest) ID() kernel.UUID {
	return m.id
}

// ManifestNo returns the human-readable manifest number.
func (m *Manifest) ManifestNo() string {
	return m.manifestNo
}

// Date returns the manifest date.
func (m *Manifest) Date() time.Time {
	return m.date
}

// Origin returns whether the manifest was created at a booking office or hub.
func (m *Manifest) Origin() Origin {
	return m.origin
}

// Status returns the current lifecycle status.
func (m *Manifest) Status() Status {
	return m.status
}

// WaybillIDs returns the member waybill ids in insertion order.
func (m *Manifest) WaybillIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(m.waybillIDs))
	copy(ids, m.waybillIDs)
	return ids
}

// VerifiedBoxIDs returns the persisted scan snapshot, sorted for stable
// output.
func (m *Manifest) VerifiedBoxIDs() []string {
	ids := make([]string, 0, len(m.verifiedBoxIDs))
	for id := range m.verifiedBoxIDs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// IsBoxVerified reports whether a box id is in the scan snapshot.
func (m *Manifest) IsBoxVerified(boxID string) bool {
	_, ok := m.verifiedBoxIDs[boxID]
	return ok
}

// VehicleNo returns the vehicle registration for the leg.
func (m *Manifest) VehicleNo() string {
	return m.vehicleNo
}

// DriverName returns the driver's name.
func (m *Manifest) DriverName() string {
	return m.driverName
}

// DriverContact returns the driver's contact number.
func (m *Manifest) DriverContact() string {
	return m.driverContact
}

// CreatorPartnerCode returns the partner that assembled the manifest.
func (m *Manifest) CreatorPartnerCode() string {
	return m.creatorPartnerCode
}

// DeliveryPartnerCode returns the destination partner of an outbound
// hub → delivery leg, or empty.
func (m *Manifest) DeliveryPartnerCode() string {
	return m.deliveryPartnerCode
}

// AddWaybill inserts a Pending waybill into a Draft manifest.
// Membership in other active manifests is checked at the registry boundary;
// the aggregate enforces its own status rules and the no-duplicates set.
func (m *Manifest) AddWaybill(w *waybill.Waybill) error {
	if err := w.Validate(); err != nil {
		return err
	}

	if m.status != StatusDraft {
		return fmt.Errorf("%w: manifest is %s, not Draft", ErrNotEligible, m.status)
	}

	if w.Status() != waybill.StatusPending {
		return fmt.Errorf("%w: waybill %s is %s, not Pending", ErrNotEligible, w.WaybillNumber(), w.Status())
	}

	if m.isMember(w.ID()) {
		return fmt.Errorf("%w: waybill %s is already on this manifest", ErrNotEligible, w.WaybillNumber())
	}

	m.waybillIDs = append(m.waybillIDs, w.ID())
	return nil
}

// RemoveWaybill removes a member waybill. Allowed only while Draft.
func (m *Manifest) RemoveWaybill(waybillID kernel.UUID) error {
	if m.status != StatusDraft {
		return fmt.Errorf("%w: manifest is %s, not Draft", ErrNotEligible, m.status)
	}

	for i, id := range m.waybillIDs {
		if id.IsEqual(waybillID) {
			m.waybillIDs = append(m.waybillIDs[:i], m.waybillIDs[i+1:]...)
			return nil
		}
	}

	return errs.NewObjectNotFoundError("waybillId", waybillID.String())
}

// Dispatch transitions the manifest Draft → Dispatched. The waybill cascade
// is performed by the dispatch domain service inside one transaction.
func (m *Manifest) Dispatch() error {
	if m.status != StatusDraft {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.status, StatusDispatched)
	}

	m.status = StatusDispatched
	return nil
}

// VerifyBox records a scanned box into the verification snapshot.
// The box must be in the expected set; re-scanning an already verified box
// is a no-op, not an error.
func (m *Manifest) VerifyBox(boxID string, expected []waybill.Box) error {
	if !m.status.IsVerifiable() {
		return fmt.Errorf("%w: manifest is %s", ErrNotVerifiable, m.status)
	}

	found := false
	for _, box := range expected {
		if box.BoxID == boxID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrBoxNotInManifest, boxID)
	}

	m.verifiedBoxIDs[boxID] = struct{}{}
	return nil
}

// SaveVerification recomputes the manifest status from the scan snapshot:
// Received when every expected box was scanned, Short Received otherwise.
// May be called any number of times; the status is a projection, not a lock.
func (m *Manifest) SaveVerification(expected []waybill.Box) error {
	if !m.status.IsVerifiable() {
		return fmt.Errorf("%w: manifest is %s", ErrNotVerifiable, m.status)
	}

	if len(m.Shortage(expected)) == 0 {
		m.status = StatusReceived
	} else {
		m.status = StatusShortReceived
	}
	return nil
}

// Shortage returns the expected boxes that have not been scanned, in
// expected order. Empty exactly when the manifest is fully received.
func (m *Manifest) Shortage(expected []waybill.Box) []waybill.Box {
	missing := make([]waybill.Box, 0)
	for _, box := range expected {
		if !m.IsBoxVerified(box.BoxID) {
			missing = append(missing, box)
		}
	}
	return missing
}

func (m *Manifest) isMember(waybillID kernel.UUID) bool {
	for _, id := range m.waybillIDs {
		if id.IsEqual(waybillID) {
			return true
		}
	}
	return false
}

func (m *Manifest) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Manifest) setManifestNo(manifestNo string) error {
	if manifestNo == "" {
		return errs.NewValueIsRequiredError("manifestNo")
	}
	m.manifestNo = manifestNo
	return nil
}

func (m *Manifest) setOrigin(origin Origin) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	m.origin = origin
	return nil
}

func (m *Manifest) setCreatorPartnerCode(creatorPartnerCode string) error {
	if creatorPartnerCode == "" {
		return errs.NewValueIsRequiredError("creatorPartnerCode")
	}
	m.creatorPartnerCode = creatorPartnerCode
	return nil
}
