package services

import (
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/manifest"
	"freight/internal/core/domain/model/waybill"
)

// ManifestDispatcher is a domain service coordinating the dispatch cascade:
// the manifest moves Draft → Dispatched and every member waybill moves
// Pending → In Transit in the same step.
//
// The cascade is all-or-nothing. Every member is checked before any
// aggregate is mutated, so a single non-Pending waybill fails the whole
// dispatch with manifest.ErrInconsistentManifest instead of leaving a
// half-dispatched batch behind. The caller wraps the mutation in one
// transaction so persistence matches.
type ManifestDispatcher struct{}

// NewManifestDispatcher creates a new ManifestDispatcher instance.
func NewManifestDispatcher() ManifestDispatcher {
	return ManifestDispatcher{}
}

// Dispatch validates and applies the dispatch cascade on the manifest and
// its member waybills.
//
// Parameters:
//   - m: the manifest to dispatch (must be Draft)
//   - waybills: the loaded member waybills, one per manifest member
//
// Returns manifest.ErrInconsistentManifest when the loaded set does not
// cover the membership or any member is not Pending, and the manifest's
// transition errors otherwise. On success every aggregate is mutated and
// ready to be persisted together.
func (d ManifestDispatcher) Dispatch(m *manifest.Manifest, waybills []*waybill.Waybill) error {
	if err := m.Validate(); err != nil {
		return err
	}

	byID := make(map[kernel.UUID]*waybill.Waybill, len(waybills))
	for _, w := range waybills {
		if err := w.Validate(); err != nil {
			return err
		}
		byID[w.ID()] = w
	}

	members := m.WaybillIDs()
	ordered := make([]*waybill.Waybill, 0, len(members))
	for _, id := range members {
		w, ok := byID[id]
		if !ok {
			return fmt.Errorf("%w: waybill %s is missing", manifest.ErrInconsistentManifest, id)
		}
		if w.Status() != waybill.StatusPending {
			return fmt.Errorf("%w: waybill %s is %s",
				manifest.ErrInconsistentManifest, w.WaybillNumber(), w.Status())
		}
		ordered = append(ordered, w)
	}

	if err := m.Dispatch(); err != nil {
		return err
	}

	for _, w := range ordered {
		if err := w.MarkInTransit(); err != nil {
			// Unreachable after the Pending pre-check; surfaced for safety.
			return err
		}
	}

	return nil
}
