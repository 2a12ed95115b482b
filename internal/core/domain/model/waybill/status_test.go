package waybill_test

import (
	"testing"

	"freight/internal/core/domain/model/waybill"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	valid := []waybill.Status{
		waybill.StatusPending,
		waybill.StatusInTransit,
		waybill.StatusOutForDelivery,
		waybill.StatusDelivered,
		waybill.StatusReturned,
		waybill.StatusCancelled,
	}
	for _, s := range valid {
		require.NoError(t, s.Validate(), s.String())
	}

	require.Error(t, waybill.StatusUnknown.Validate())
	require.Error(t, waybill.Status(42).Validate())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", waybill.StatusPending.String())
	assert.Equal(t, "In Transit", waybill.StatusInTransit.String())
	assert.Equal(t, "Out for Delivery", waybill.StatusOutForDelivery.String())
	assert.Equal(t, "Delivered", waybill.StatusDelivered.String())
	assert.Equal(t, "Returned", waybill.StatusReturned.String())
	assert.Equal(t, "Cancelled", waybill.StatusCancelled.String())
	assert.Equal(t, "Unknown", waybill.StatusUnknown.String())
	assert.Equal(t, "Unknown", waybill.Status(42).String())
}

func TestStatus_TransitionTable(t *testing.T) {
	testCases := []struct {
		from    waybill.Status
		to      waybill.Status
		allowed bool
	}{
		{waybill.StatusPending, waybill.StatusInTransit, true},
		{waybill.StatusPending, waybill.StatusCancelled, true},
		{waybill.StatusPending, waybill.StatusOutForDelivery, false},
		{waybill.StatusPending, waybill.StatusDelivered, false},
		{waybill.StatusInTransit, waybill.StatusOutForDelivery, true},
		{waybill.StatusInTransit, waybill.StatusDelivered, false},
		{waybill.StatusInTransit, waybill.StatusCancelled, false},
		{waybill.StatusInTransit, waybill.StatusPending, false},
		{waybill.StatusOutForDelivery, waybill.StatusDelivered, true},
		{waybill.StatusOutForDelivery, waybill.StatusReturned, true},
		{waybill.StatusOutForDelivery, waybill.StatusInTransit, false},
		{waybill.StatusDelivered, waybill.StatusReturned, false},
		{waybill.StatusReturned, waybill.StatusPending, false},
		{waybill.StatusCancelled, waybill.StatusInTransit, false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, waybill.StatusPending.IsTerminal())
	assert.False(t, waybill.StatusInTransit.IsTerminal())
	assert.False(t, waybill.StatusOutForDelivery.IsTerminal())
	assert.True(t, waybill.StatusDelivered.IsTerminal())
	assert.True(t, waybill.StatusReturned.IsTerminal())
	assert.True(t, waybill.StatusCancelled.IsTerminal())
	assert.False(t, waybill.StatusUnknown.IsTerminal())
}

func TestStatus_AllowsDeletion(t *testing.T) {
	assert.True(t, waybill.StatusPending.AllowsDeletion())
	assert.True(t, waybill.StatusCancelled.AllowsDeletion())
	assert.False(t, waybill.StatusInTransit.AllowsDeletion())
	assert.False(t, waybill.StatusOutForDelivery.AllowsDeletion())
	assert.False(t, waybill.StatusDelivered.AllowsDeletion())
	assert.False(t, waybill.StatusReturned.AllowsDeletion())
}

func TestStatusFromString(t *testing.T) {
	t.Run("round_trips_all_valid_statuses", func(t *testing.T) {
		for _, s := range []waybill.Status{
			waybill.StatusPending,
			waybill.StatusInTransit,
			waybill.StatusOutForDelivery,
			waybill.StatusDelivered,
			waybill.StatusReturned,
			waybill.StatusCancelled,
		} {
			parsed, err := waybill.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects_unknown_names", func(t *testing.T) {
		_, err := waybill.StatusFromString("Lost")
		require.Error(t, err)

		_, err = waybill.StatusFromString("Unknown")
		require.Error(t, err)
	})
}
