package order_test

import (
	"testing"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itemsWith(t *testing.T, statuses ...order.ItemStatus) []order.Item {
	t.Helper()
	items := make([]order.Item, 0, len(statuses))
	for i, status := range statuses {
		item, err := order.RestoreItem(
			"P100"+string(rune('1'+i)), 1, kernel.MustMoney("10.00"), status)
		require.NoError(t, err)
		items = append(items, item)
	}
	return items
}

func TestDeriveStatus(t *testing.T) {
	testCases := []struct {
		name     string
		statuses []order.ItemStatus
		expected order.Status
	}{
		{"empty items are pending", nil, order.Pending},
		{"all pending", []order.ItemStatus{order.ItemPending, order.ItemPending}, order.Pending},
		{"one picked one pending", []order.ItemStatus{order.ItemPicked, order.ItemPending}, order.Processing},
		{"one verified one pending", []order.ItemStatus{order.ItemVerified, order.ItemPending}, order.Processing},
		{"all picked", []order.ItemStatus{order.ItemPicked, order.ItemPicked}, order.Picked},
		{"picked and verified", []order.ItemStatus{order.ItemVerified, order.ItemPicked}, order.Processing},
		{"all verified is packed, not picked", []order.ItemStatus{order.ItemVerified, order.ItemVerified}, order.Packed},
		{"single pending", []order.ItemStatus{order.ItemPending}, order.Pending},
		{"single picked", []order.ItemStatus{order.ItemPicked}, order.Picked},
		{"single verified", []order.ItemStatus{order.ItemVerified}, order.Packed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, order.DeriveStatus(itemsWith(t, tc.statuses...)))
		})
	}

	t.Run("should treat zero value items as in progress", func(t *testing.T) {
		items := append(itemsWith(t, order.ItemPending), order.Item{})

		assert.Equal(t, order.Processing, order.DeriveStatus(items))
	})
}
