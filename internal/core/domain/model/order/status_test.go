package order_test

import (
	"fmt"
	"testing"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	for _, status := range order.AllStatuses() {
		t.Run(fmt.Sprintf("should validate %s status", status), func(t *testing.T) {
			require.NoError(t, status.Validate())
		})
	}

	invalid := []order.Status{order.Unknown, order.Status(-1), order.Status(6), order.Status(100)}
	for _, status := range invalid {
		t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
			err := status.Validate()

			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
		})
	}
}

func TestStatus_ParseStatus(t *testing.T) {
	for _, status := range order.AllStatuses() {
		parsed, err := order.ParseStatus(status.String())

		require.NoError(t, err)
		assert.Equal(t, status, parsed)
	}

	_, err := order.ParseStatus("verified")
	require.Error(t, err)
}

func TestStatus_Ship(t *testing.T) {
	t.Run("should ship packed orders", func(t *testing.T) {
		next, err := order.Packed.Ship()

		require.NoError(t, err)
		assert.Equal(t, order.Shipped, next)
		assert.True(t, next.IsTerminal())
	})

	for _, status := range []order.Status{order.Pending, order.Processing, order.Picked, order.Shipped} {
		t.Run(fmt.Sprintf("should not ship %s orders", status), func(t *testing.T) {
			_, err := status.Ship()

			require.ErrorIs(t, err, order.ErrInvalidTransition)
		})
	}
}
