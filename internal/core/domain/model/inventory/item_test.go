package inventory_test

import (
	"testing"

	"freight/internal/core/domain/model/inventory"
	"freight/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("creates_unused_item", func(t *testing.T) {
		item, err := inventory.NewItem(kernel.NewUUID(), "SW-101", "P1", "C1")
		require.NoError(t, err)

		assert.Equal(t, "SW-101", item.WaybillNumber())
		assert.Equal(t, "P1", item.PartnerCode())
		assert.Equal(t, "C1", item.CompanyCode())
		assert.False(t, item.IsMarket())
		assert.False(t, item.IsUsed())
	})

	t.Run("empty_company_is_market", func(t *testing.T) {
		item, err := inventory.NewItem(kernel.NewUUID(), "SW-101", "P1", "")
		require.NoError(t, err)
		assert.True(t, item.IsMarket())
	})

	t.Run("rejects_invalid_input", func(t *testing.T) {
		_, err := inventory.NewItem(kernel.UUID{}, "SW-101", "P1", "")
		require.Error(t, err)

		_, err = inventory.NewItem(kernel.NewUUID(), "", "P1", "")
		require.Error(t, err)

		_, err = inventory.NewItem(kernel.NewUUID(), "SW-101", "", "")
		require.Error(t, err)
	})
}

func TestItem_Consume(t *testing.T) {
	item, err := inventory.NewItem(kernel.NewUUID(), "SW-101", "P1", "")
	require.NoError(t, err)

	require.NoError(t, item.Consume())
	assert.True(t, item.IsUsed())

	err = item.Consume()
	require.ErrorIs(t, err, inventory.ErrAlreadyUsed)
	assert.True(t, item.IsUsed())
}

func TestRestoreItem(t *testing.T) {
	item, err := inventory.RestoreItem(kernel.NewUUID(), "SW-101", "P1", "C1", true)
	require.NoError(t, err)

	assert.True(t, item.IsUsed())
	require.ErrorIs(t, item.Consume(), inventory.ErrAlreadyUsed)
}

func TestExpandRange(t *testing.T) {
	t.Run("expands_inclusive_range", func(t *testing.T) {
		numbers, err := inventory.ExpandRange("SW-", 101, 105, 500)
		require.NoError(t, err)

		assert.Equal(t, []string{"SW-101", "SW-102", "SW-103", "SW-104", "SW-105"}, numbers)
	})

	t.Run("single_number_range", func(t *testing.T) {
		numbers, err := inventory.ExpandRange("SW-", 7, 7, 500)
		require.NoError(t, err)
		assert.Equal(t, []string{"SW-7"}, numbers)
	})

	t.Run("rejects_range_above_ceiling", func(t *testing.T) {
		_, err := inventory.ExpandRange("SW-", 1, 501, 500)
		require.ErrorIs(t, err, inventory.ErrRangeTooLarge)
	})

	t.Run("range_at_ceiling_is_allowed", func(t *testing.T) {
		numbers, err := inventory.ExpandRange("SW-", 1, 500, 500)
		require.NoError(t, err)
		assert.Len(t, numbers, 500)
	})

	t.Run("rejects_inverted_range", func(t *testing.T) {
		_, err := inventory.ExpandRange("SW-", 10, 5, 500)
		require.Error(t, err)
	})

	t.Run("rejects_negative_start", func(t *testing.T) {
		_, err := inventory.ExpandRange("SW-", -1, 5, 500)
		require.Error(t, err)
	})
}
