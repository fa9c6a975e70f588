package product_test

import (
	"testing"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHeadphones(t *testing.T, stock int) *product.Product {
	t.Helper()
	p, err := product.NewProduct("P1001", "8901234567890", "Wireless Headphones", "Electronics",
		kernel.MustParseLocation("A-12-3"), stock, kernel.MustMoney("49.99"))
	require.NoError(t, err)
	return p
}

func adjustment(t *testing.T, kind product.AdjustmentKind, quantity int) product.StockAdjustment {
	t.Helper()
	a, err := product.NewStockAdjustment(kind, quantity)
	require.NoError(t, err)
	return a
}

func TestNewProduct(t *testing.T) {
	t.Run("should create product", func(t *testing.T) {
		p := newHeadphones(t, 45)

		require.NoError(t, p.Validate())
		assert.Equal(t, "P1001", p.ID())
		assert.Equal(t, "8901234567890", p.Barcode())
		assert.Equal(t, "Wireless Headphones", p.Name())
		assert.Equal(t, "Electronics", p.Category())
		assert.Equal(t, "A-12-3", p.Location().String())
		assert.Equal(t, 45, p.StockQuantity())
		assert.Equal(t, "49.99", p.UnitPrice().String())

		require.Len(t, p.DomainEvents(), 1)
		added, ok := p.DomainEvents()[0].(product.AddedEvent)
		require.True(t, ok)
		assert.Equal(t, product.EventProductAdded, added.EventName())
		assert.Equal(t, "P1001", added.AggregateID())
		assert.Equal(t, "A-12-3", added.Attributes()["location"])
	})

	t.Run("should collect every validation error", func(t *testing.T) {
		p, err := product.NewProduct("", " ", "", "", kernel.Location{}, -1, kernel.Zero)

		require.Error(t, err)
		assert.Nil(t, p)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "productId")
		assert.Contains(t, err.Error(), "barcode")
		assert.Contains(t, err.Error(), "stockQuantity")
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var p product.Product

		require.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)
	})
}

func TestProduct_AdjustStock(t *testing.T) {
	testCases := []struct {
		name     string
		stock    int
		kind     product.AdjustmentKind
		quantity int
		expected int
	}{
		{"add units", 10, product.AdjustmentAdd, 5, 15},
		{"remove units", 10, product.AdjustmentRemove, 4, 6},
		{"remove clamps at zero", 3, product.AdjustmentRemove, 10, 0},
		{"set overwrites", 10, product.AdjustmentSet, 2, 2},
		{"set to zero", 10, product.AdjustmentSet, 0, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := newHeadphones(t, tc.stock)

			next, err := p.AdjustStock(adjustment(t, tc.kind, tc.quantity))

			require.NoError(t, err)
			assert.Equal(t, tc.expected, next.StockQuantity())
			assert.Equal(t, tc.stock, p.StockQuantity())

			events := next.DomainEvents()
			require.Len(t, events, 1)
			event, ok := events[0].(product.StockAdjustedEvent)
			require.True(t, ok)
			assert.Equal(t, product.EventStockAdjusted, event.EventName())
			assert.Equal(t, "P1001", event.AggregateID())
			assert.Equal(t, tc.stock, event.From)
			assert.Equal(t, tc.expected, event.To)
		})
	}

	t.Run("should reject adjustment built without constructor", func(t *testing.T) {
		_, err := newHeadphones(t, 1).AdjustStock(product.StockAdjustment{})

		require.ErrorIs(t, err, product.ErrStockAdjustmentIsNotConstructed)
	})
}

func TestNewStockAdjustment(t *testing.T) {
	t.Run("should reject negative quantity", func(t *testing.T) {
		_, err := product.NewStockAdjustment(product.AdjustmentAdd, -1)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject unknown kind", func(t *testing.T) {
		_, err := product.NewStockAdjustment(product.AdjustmentUnknown, 1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should parse wire kinds", func(t *testing.T) {
		for _, name := range []string{"add", "remove", "set"} {
			kind, err := product.ParseAdjustmentKind(name)
			require.NoError(t, err)
			assert.Equal(t, name, kind.String())
		}

		_, err := product.ParseAdjustmentKind("restock")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestSeverityFor(t *testing.T) {
	testCases := []struct {
		stock     int
		threshold int
		expected  product.Severity
	}{
		{stock: 10, threshold: 10, expected: product.SeverityNone},
		{stock: 25, threshold: 10, expected: product.SeverityNone},
		{stock: 9, threshold: 10, expected: product.SeverityWarning},
		{stock: 6, threshold: 10, expected: product.SeverityWarning},
		{stock: 5, threshold: 10, expected: product.SeverityCritical},
		{stock: 0, threshold: 10, expected: product.SeverityCritical},
		{stock: 0, threshold: 1, expected: product.SeverityCritical},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, product.SeverityFor(tc.stock, tc.threshold),
			"stock %d threshold %d", tc.stock, tc.threshold)
	}

	assert.True(t, newHeadphones(t, 3).IsLowStock(10))
	assert.False(t, newHeadphones(t, 45).IsLowStock(10))
}
