package manifest_test

import (
	"testing"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/manifest"
	"freight/internal/core/domain/model/waybill"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManifest(t *testing.T) *manifest.Manifest {
	t.Helper()

	m, err := manifest.NewManifest(
		kernel.NewUUID(),
		"M-1",
		time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
		manifest.OriginBooking,
		"MH12AB1234",
		"S. Patil",
		"9800000000",
		"P1",
		"",
	)
	require.NoError(t, err)
	return m
}

func newPendingWaybill(t *testing.T, number string, boxes int) *waybill.Waybill {
	t.Helper()

	w, err := waybill.NewWaybill(
		kernel.NewUUID(), number, "P1", boxes, 10,
		"Pune", "MH", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), nil,
	)
	require.NoError(t, err)
	return w
}

func TestNewManifest(t *testing.T) {
	t.Run("creates_empty_draft", func(t *testing.T) {
		m := newTestManifest(t)

		assert.Equal(t, manifest.StatusDraft, m.Status())
		assert.Empty(t, m.WaybillIDs())
		assert.Empty(t, m.VerifiedBoxIDs())
		require.NoError(t, m.Validate())
	})

	t.Run("rejects_invalid_input", func(t *testing.T) {
		date := time.Now()

		_, err := manifest.NewManifest(kernel.UUID{}, "M-1", date, manifest.OriginBooking, "", "", "", "P1", "")
		require.Error(t, err)

		_, err = manifest.NewManifest(kernel.NewUUID(), "", date, manifest.OriginBooking, "", "", "", "P1", "")
		require.Error(t, err)

		_, err = manifest.NewManifest(kernel.NewUUID(), "M-1", date, manifest.OriginUnknown, "", "", "", "P1", "")
		require.Error(t, err)

		_, err = manifest.NewManifest(kernel.NewUUID(), "M-1", date, manifest.OriginBooking, "", "", "", "", "")
		require.Error(t, err)
	})

	t.Run("not_constructed_manifest_fails_validation", func(t *testing.T) {
		var m manifest.Manifest
		require.ErrorIs(t, m.Validate(), manifest.ErrManifestIsNotConstructed)
	})
}

func TestManifest_AddWaybill(t *testing.T) {
	t.Run("adds_pending_waybill_to_draft", func(t *testing.T) {
		m := newTestManifest(t)
		w := newPendingWaybill(t, "SW-1001", 2)

		require.NoError(t, m.AddWaybill(w))
		require.Len(t, m.WaybillIDs(), 1)
		assert.True(t, m.WaybillIDs()[0].IsEqual(w.ID()))
	})

	t.Run("rejects_duplicate_membership", func(t *testing.T) {
		m := newTestManifest(t)
		w := newPendingWaybill(t, "SW-1001", 2)

		require.NoError(t, m.AddWaybill(w))
		require.ErrorIs(t, m.AddWaybill(w), manifest.ErrNotEligible)
		assert.Len(t, m.WaybillIDs(), 1)
	})

	t.Run("rejects_non_pending_waybill", func(t *testing.T) {
		m := newTestManifest(t)
		w := newPendingWaybill(t, "SW-1001", 2)
		require.NoError(t, w.MarkInTransit())

		require.ErrorIs(t, m.AddWaybill(w), manifest.ErrNotEligible)
	})

	t.Run("rejects_membership_change_after_dispatch", func(t *testing.T) {
		m := newTestManifest(t)
		require.NoError(t, m.Dispatch())

		w := newPendingWaybill(t, "SW-1001", 2)
		require.ErrorIs(t, m.AddWaybill(w), manifest.ErrNotEligible)
	})
}

func TestManifest_RemoveWaybill(t *testing.T) {
	t.Run("removes_member_while_draft", func(t *testing.T) {
		m := newTestManifest(t)
		w1 := newPendingWaybill(t, "SW-1001", 1)
		w2 := newPendingWaybill(t, "SW-1002", 1)
		require.NoError(t, m.AddWaybill(w1))
		require.NoError(t, m.AddWaybill(w2))

		require.NoError(t, m.RemoveWaybill(w1.ID()))
		require.Len(t, m.WaybillIDs(), 1)
		assert.True(t, m.WaybillIDs()[0].IsEqual(w2.ID()))
	})

	t.Run("unknown_member_is_not_found", func(t *testing.T) {
		m := newTestManifest(t)
		require.Error(t, m.RemoveWaybill(kernel.NewUUID()))
	})

	t.Run("rejects_removal_after_dispatch", func(t *testing.T) {
		m := newTestManifest(t)
		w := newPendingWaybill(t, "SW-1001", 1)
		require.NoError(t, m.AddWaybill(w))
		require.NoError(t, m.Dispatch())

		require.ErrorIs(t, m.RemoveWaybill(w.ID()), manifest.ErrNotEligible)
	})
}

func TestManifest_Dispatch(t *testing.T) {
	t.Run("draft_dispatches_once", func(t *testing.T) {
		m := newTestManifest(t)

		require.NoError(t, m.Dispatch())
		assert.Equal(t, manifest.StatusDispatched, m.Status())

		require.ErrorIs(t, m.Dispatch(), manifest.ErrInvalidTransition)
	})
}

func TestManifest_Verification(t *testing.T) {
	expected := []waybill.Box{
		{BoxID: "SW-1001-1", WaybillNumber: "SW-1001", BoxNumber: 1, Destination: "Pune"},
		{BoxID: "SW-1001-2", WaybillNumber: "SW-1001", BoxNumber: 2, Destination: "Pune"},
	}

	dispatched := func(t *testing.T) *manifest.Manifest {
		m := newTestManifest(t)
		require.NoError(t, m.Dispatch())
		return m
	}

	t.Run("verify_before_dispatch_fails", func(t *testing.T) {
		m := newTestManifest(t)
		require.ErrorIs(t, m.VerifyBox("SW-1001-1", expected), manifest.ErrNotVerifiable)
	})

	t.Run("unknown_box_fails_and_does_not_mutate", func(t *testing.T) {
		m := dispatched(t)

		require.ErrorIs(t, m.VerifyBox("SW-9999-1", expected), manifest.ErrBoxNotInManifest)
		assert.Empty(t, m.VerifiedBoxIDs())
	})

	t.Run("partial_scan_is_short_received", func(t *testing.T) {
		m := dispatched(t)

		require.NoError(t, m.VerifyBox("SW-1001-1", expected))
		require.NoError(t, m.SaveVerification(expected))

		assert.Equal(t, manifest.StatusShortReceived, m.Status())
		shortage := m.Shortage(expected)
		require.Len(t, shortage, 1)
		assert.Equal(t, "SW-1001-2", shortage[0].BoxID)
	})

	t.Run("rescan_is_idempotent", func(t *testing.T) {
		m := dispatched(t)

		require.NoError(t, m.VerifyBox("SW-1001-1", expected))
		require.NoError(t, m.VerifyBox("SW-1001-1", expected))
		require.NoError(t, m.SaveVerification(expected))

		assert.Equal(t, []string{"SW-1001-1"}, m.VerifiedBoxIDs())
		assert.Equal(t, manifest.StatusShortReceived, m.Status())
	})

	t.Run("complete_scan_is_received", func(t *testing.T) {
		m := dispatched(t)

		require.NoError(t, m.VerifyBox("SW-1001-1", expected))
		require.NoError(t, m.SaveVerification(expected))
		assert.Equal(t, manifest.StatusShortReceived, m.Status())

		// Re-verification after a short save upgrades the status.
		require.NoError(t, m.VerifyBox("SW-1001-2", expected))
		require.NoError(t, m.SaveVerification(expected))

		assert.Equal(t, manifest.StatusReceived, m.Status())
		assert.Empty(t, m.Shortage(expected))
	})
}

func TestRestoreManifest(t *testing.T) {
	t.Run("restores_membership_and_snapshot", func(t *testing.T) {
		id := kernel.NewUUID()
		memberID := kernel.NewUUID()

		m, err := manifest.RestoreManifest(
			id, "M-7", time.Now(), manifest.OriginHub, manifest.StatusShortReceived,
			[]kernel.UUID{memberID},
			[]string{"SW-1001-1"},
			"MH12AB1234", "S. Patil", "9800000000", "H1", "D1",
		)
		require.NoError(t, err)

		assert.Equal(t, manifest.StatusShortReceived, m.Status())
		assert.True(t, m.IsBoxVerified("SW-1001-1"))
		assert.Equal(t, "D1", m.DeliveryPartnerCode())
		require.Len(t, m.WaybillIDs(), 1)
	})

	t.Run("rejects_duplicate_member_ids", func(t *testing.T) {
		memberID := kernel.NewUUID()
		_, err := manifest.RestoreManifest(
			kernel.NewUUID(), "M-7", time.Now(), manifest.OriginHub, manifest.StatusDraft,
			[]kernel.UUID{memberID, memberID},
			nil, "", "", "", "H1", "",
		)
		require.Error(t, err)
	})
}
