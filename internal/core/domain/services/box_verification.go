package services

import (
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/manifest"
	"freight/internal/core/domain/model/waybill"
)

// BoxVerifier is a domain service deriving the expected box set of a
// manifest from its member waybills. Boxes are never persisted as rows;
// the set is recomputed on demand and checked against the manifest's
// sparse scanned-id snapshot.
type BoxVerifier struct{}

// NewBoxVerifier creates a new BoxVerifier instance.
func NewBoxVerifier() BoxVerifier {
	return BoxVerifier{}
}

// ExpectedBoxes derives the full scannable box set for a manifest, in
// member order, numbering each waybill's boxes 1..numberOfBoxes. The
// loaded waybills must cover the manifest's membership exactly; a missing
// member fails with manifest.ErrInconsistentManifest.
func (v BoxVerifier) ExpectedBoxes(m *manifest.Manifest, waybills []*waybill.Waybill) ([]waybill.Box, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	byID := make(map[kernel.UUID]*waybill.Waybill, len(waybills))
	for _, w := range waybills {
		if err := w.Validate(); err != nil {
			return nil, err
		}
		byID[w.ID()] = w
	}

	boxes := make([]waybill.Box, 0, len(waybills))
	for _, id := range m.WaybillIDs() {
		w, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: waybill %s is missing", manifest.ErrInconsistentManifest, id)
		}
		boxes = append(boxes, w.Boxes()...)
	}

	return boxes, nil
}

// VerifyBox scans one box against the derived expected set. Scanning a box
// outside the manifest fails with manifest.ErrBoxNotInManifest and leaves
// the snapshot untouched; re-scanning a verified box is a no-op.
func (v BoxVerifier) VerifyBox(m *manifest.Manifest, waybills []*waybill.Waybill, boxID string) error {
	expected, err := v.ExpectedBoxes(m, waybills)
	if err != nil {
		return err
	}

	return m.VerifyBox(boxID, expected)
}

// SaveVerification recomputes the manifest status from the current scan
// snapshot: Received when the shortage is empty, Short Received otherwise.
func (v BoxVerifier) SaveVerification(m *manifest.Manifest, waybills []*waybill.Waybill) error {
	expected, err := v.ExpectedBoxes(m, waybills)
	if err != nil {
		return err
	}

	return m.SaveVerification(expected)
}

// Shortage returns the expected boxes not yet scanned, in expected order.
func (v BoxVerifier) Shortage(m *manifest.Manifest, waybills []*waybill.Waybill) ([]waybill.Box, error) {
	expected, err := v.ExpectedBoxes(m, waybills)
	if err != nil {
		return nil, err
	}

	return m.Shortage(expected), nil
}
