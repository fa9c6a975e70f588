package order_test

import (
	"testing"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderDate = time.Date(2025, 5, 20, 9, 30, 0, 0, time.UTC)

func validCustomer(t *testing.T) order.Customer {
	t.Helper()
	c, err := order.NewCustomer("John Smith", "john.smith@example.com", "123 Main St, Anytown")
	require.NoError(t, err)
	return c
}

func newTwoLineOrder(t *testing.T) *order.Order {
	t.Helper()
	headphones, err := order.NewItem("P1001", 2, kernel.MustMoney("49.99"))
	require.NoError(t, err)
	tracker, err := order.NewItem("P1002", 1, kernel.MustMoney("79.99"))
	require.NoError(t, err)

	o, err := order.NewOrder("ORD10001", validCustomer(t), orderDate, order.Standard,
		[]order.Item{headphones, tracker})
	require.NoError(t, err)
	return o
}

func assertConsistent(t *testing.T, o *order.Order) {
	t.Helper()
	require.NoError(t, o.CheckInvariants())
	if o.Status() != order.Shipped {
		assert.Equal(t, order.DeriveStatus(o.Items()), o.Status())
	}
	total := kernel.Zero
	for _, item := range o.Items() {
		total = total.Add(item.Price().Times(item.Quantity()))
	}
	assert.True(t, total.IsEqual(o.TotalAmount()))
}

func eventNames(o *order.Order) []string {
	names := make([]string, 0)
	for _, e := range o.DomainEvents() {
		names = append(names, e.EventName())
	}
	return names
}

func TestNewOrder(t *testing.T) {
	t.Run("should create pending order with computed total", func(t *testing.T) {
		o := newTwoLineOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, "ORD10001", o.ID())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, order.Standard, o.Priority())
		assert.Equal(t, orderDate, o.OrderDate())
		assert.Equal(t, "179.97", o.TotalAmount().String())
		assert.Len(t, o.Items(), 2)
		assert.Equal(t, []string{order.EventOrderCreated}, eventNames(o))
		assertConsistent(t, o)
	})

	t.Run("should fail without items", func(t *testing.T) {
		o, err := order.NewOrder("ORD1", validCustomer(t), orderDate, order.Standard, nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, o)
	})

	t.Run("should fail with duplicate product lines", func(t *testing.T) {
		a, _ := order.NewItem("P1001", 1, kernel.MustMoney("1.00"))
		b, _ := order.NewItem("P1001", 2, kernel.MustMoney("1.00"))

		_, err := order.NewOrder("ORD1", validCustomer(t), orderDate, order.Standard, []order.Item{a, b})

		require.ErrorIs(t, err, order.ErrDuplicateItem)
	})

	t.Run("should reject non pending items", func(t *testing.T) {
		picked, _ := order.RestoreItem("P1001", 1, kernel.MustMoney("1.00"), order.ItemPicked)

		_, err := order.NewOrder("ORD1", validCustomer(t), orderDate, order.Standard, []order.Item{picked})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should collect every validation error", func(t *testing.T) {
		_, err := order.NewOrder("", order.Customer{}, orderDate, order.PriorityUnknown, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "orderId")
		assert.Contains(t, err.Error(), "customer must be created")
		assert.Contains(t, err.Error(), "priority is invalid")
		assert.Contains(t, err.Error(), "items")
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should accept status consistent with items", func(t *testing.T) {
		items := itemsWith(t, order.ItemPicked, order.ItemPending)

		o, err := order.RestoreOrder("ORD10002", validCustomer(t), orderDate, order.Express, items, order.Processing)

		require.NoError(t, err)
		assert.Equal(t, order.Processing, o.Status())
		assert.Empty(t, o.DomainEvents())
	})

	t.Run("should reject status out of sync with items", func(t *testing.T) {
		items := itemsWith(t, order.ItemPicked, order.ItemPicked)

		_, err := order.RestoreOrder("ORD10004", validCustomer(t), orderDate, order.Standard, items, order.Pending)

		require.ErrorIs(t, err, order.ErrInvariantViolated)
	})

	t.Run("should accept shipped orders with verified items only", func(t *testing.T) {
		verified := itemsWith(t, order.ItemVerified, order.ItemVerified)
		_, err := order.RestoreOrder("ORD1", validCustomer(t), orderDate, order.Standard, verified, order.Shipped)
		require.NoError(t, err)

		mixed := itemsWith(t, order.ItemVerified, order.ItemPicked)
		_, err = order.RestoreOrder("ORD1", validCustomer(t), orderDate, order.Standard, mixed, order.Shipped)
		require.ErrorIs(t, err, order.ErrInvariantViolated)
	})
}

func TestOrder_SetItemStatus(t *testing.T) {
	t.Run("should update only the item and leave order status alone", func(t *testing.T) {
		o := newTwoLineOrder(t)

		next, err := o.SetItemStatus("P1001", order.ItemPicked)

		require.NoError(t, err)
		item, _ := next.Item("P1001")
		assert.Equal(t, order.ItemPicked, item.Status())
		assert.Equal(t, order.Pending, next.Status())
		assert.Equal(t, []string{order.EventItemStatusChanged}, eventNames(next))
	})

	t.Run("should fail for unknown product", func(t *testing.T) {
		_, err := newTwoLineOrder(t).SetItemStatus("P9999", order.ItemPicked)

		require.ErrorIs(t, err, order.ErrItemNotFound)
	})

	t.Run("should refuse to skip picked", func(t *testing.T) {
		_, err := newTwoLineOrder(t).SetItemStatus("P1001", order.ItemVerified)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})
}

func TestOrder_PickItem(t *testing.T) {
	t.Run("scenario A: picking every pending item makes the order picked", func(t *testing.T) {
		o := newTwoLineOrder(t)

		afterFirst, err := o.PickItem("P1001", 2)
		require.NoError(t, err)
		assert.Equal(t, order.Processing, afterFirst.Status())
		assertConsistent(t, afterFirst)

		afterSecond, err := afterFirst.PickItem("P1002", 1)
		require.NoError(t, err)
		assert.Equal(t, order.Picked, afterSecond.Status())
		assertConsistent(t, afterSecond)
	})

	t.Run("should not mutate the receiver", func(t *testing.T) {
		o := newTwoLineOrder(t)

		_, err := o.PickItem("P1001", 1)

		require.NoError(t, err)
		item, _ := o.Item("P1001")
		assert.Equal(t, order.ItemPending, item.Status())
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should accept partial quantity", func(t *testing.T) {
		next, err := newTwoLineOrder(t).PickItem("P1001", 1)

		require.NoError(t, err)
		item, _ := next.Item("P1001")
		assert.Equal(t, order.ItemPicked, item.Status())
	})

	t.Run("should raise item and order status events", func(t *testing.T) {
		next, err := newTwoLineOrder(t).PickItem("P1001", 2)

		require.NoError(t, err)
		assert.Equal(t,
			[]string{order.EventItemStatusChanged, order.EventOrderStatusChanged},
			eventNames(next))
	})

	t.Run("scenario E: zero quantity fails without mutation", func(t *testing.T) {
		o := newTwoLineOrder(t)

		next, err := o.PickItem("P1001", 0)

		require.ErrorIs(t, err, order.ErrInvalidQuantity)
		assert.Nil(t, next)
		item, _ := o.Item("P1001")
		assert.Equal(t, order.ItemPending, item.Status())
	})

	t.Run("should reject quantity above ordered", func(t *testing.T) {
		_, err := newTwoLineOrder(t).PickItem("P1001", 3)

		require.ErrorIs(t, err, order.ErrInvalidQuantity)
	})

	t.Run("should reject negative quantity", func(t *testing.T) {
		_, err := newTwoLineOrder(t).PickItem("P1001", -1)

		require.ErrorIs(t, err, order.ErrInvalidQuantity)
	})

	t.Run("should reject picking twice", func(t *testing.T) {
		o, err := newTwoLineOrder(t).PickItem("P1001", 2)
		require.NoError(t, err)

		_, err = o.PickItem("P1001", 2)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("should report unknown product", func(t *testing.T) {
		_, err := newTwoLineOrder(t).PickItem("P9999", 1)

		require.ErrorIs(t, err, order.ErrItemNotFound)
	})
}

func TestOrder_VerifyItem(t *testing.T) {
	pickedOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := newTwoLineOrder(t).PickItem("P1001", 2)
		require.NoError(t, err)
		o, err = o.PickItem("P1002", 1)
		require.NoError(t, err)
		return o
	}

	t.Run("scenario B: verifying one of two picked items keeps processing", func(t *testing.T) {
		next, err := pickedOrder(t).VerifyItem("P1001")

		require.NoError(t, err)
		assert.Equal(t, order.Processing, next.Status())
		assertConsistent(t, next)
	})

	t.Run("scenario C: verifying all items makes the order packed", func(t *testing.T) {
		o, err := pickedOrder(t).VerifyItem("P1001")
		require.NoError(t, err)
		o, err = o.VerifyItem("P1002")
		require.NoError(t, err)

		assert.Equal(t, order.Packed, o.Status())
		assert.Equal(t, order.Packed, order.DeriveStatus(o.Items()))
	})

	t.Run("scenario D: verifying a pending item fails and keeps the snapshot", func(t *testing.T) {
		o := newTwoLineOrder(t)

		next, err := o.VerifyItem("P1001")

		require.ErrorIs(t, err, order.ErrItemNotPicked)
		assert.Nil(t, next)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should reject verifying twice", func(t *testing.T) {
		o, err := pickedOrder(t).VerifyItem("P1001")
		require.NoError(t, err)

		_, err = o.VerifyItem("P1001")

		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("should report unknown product", func(t *testing.T) {
		_, err := pickedOrder(t).VerifyItem("P9999")

		require.ErrorIs(t, err, order.ErrItemNotFound)
	})
}

func TestOrder_CompletePicking(t *testing.T) {
	t.Run("should fail while items are pending", func(t *testing.T) {
		o, err := newTwoLineOrder(t).PickItem("P1001", 2)
		require.NoError(t, err)

		_, err = o.CompletePicking()

		require.ErrorIs(t, err, order.ErrIncompleteItems)
		assert.Contains(t, err.Error(), "P1002")
	})

	t.Run("should be idempotent", func(t *testing.T) {
		o, _ := newTwoLineOrder(t).PickItem("P1001", 2)
		o, _ = o.PickItem("P1002", 1)

		once, err := o.CompletePicking()
		require.NoError(t, err)
		twice, err := once.CompletePicking()
		require.NoError(t, err)

		assert.Equal(t, order.Picked, once.Status())
		assert.Equal(t, once.Status(), twice.Status())
		assert.Equal(t, once.Items(), twice.Items())
		assert.Empty(t, twice.DomainEvents())
	})

	t.Run("should not regress verified items", func(t *testing.T) {
		o, _ := newTwoLineOrder(t).PickItem("P1001", 2)
		o, _ = o.PickItem("P1002", 1)
		o, _ = o.VerifyItem("P1001")

		next, err := o.CompletePicking()

		require.NoError(t, err)
		item, _ := next.Item("P1001")
		assert.Equal(t, order.ItemVerified, item.Status())
		assert.Equal(t, order.Processing, next.Status())
		assertConsistent(t, next)
	})
}

func TestOrder_CompletePacking(t *testing.T) {
	packedOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, _ := newTwoLineOrder(t).PickItem("P1001", 2)
		o, _ = o.PickItem("P1002", 1)
		o, _ = o.VerifyItem("P1001")
		o, err := o.VerifyItem("P1002")
		require.NoError(t, err)
		return o
	}

	t.Run("should fail while items are unverified", func(t *testing.T) {
		o, _ := newTwoLineOrder(t).PickItem("P1001", 2)

		_, err := o.CompletePacking()

		require.ErrorIs(t, err, order.ErrIncompleteItems)
	})

	t.Run("should be idempotent", func(t *testing.T) {
		once, err := packedOrder(t).CompletePacking()
		require.NoError(t, err)
		twice, err := once.CompletePacking()
		require.NoError(t, err)

		assert.Equal(t, order.Packed, once.Status())
		assert.Equal(t, once.Status(), twice.Status())
		assert.Equal(t, once.Items(), twice.Items())
		assert.True(t, once.TotalAmount().IsEqual(twice.TotalAmount()))
	})
}

func TestOrder_Ship(t *testing.T) {
	t.Run("should ship packed order and close it", func(t *testing.T) {
		o, _ := newTwoLineOrder(t).PickItem("P1001", 2)
		o, _ = o.PickItem("P1002", 1)
		o, _ = o.VerifyItem("P1001")
		o, _ = o.VerifyItem("P1002")

		shipped, err := o.Ship()

		require.NoError(t, err)
		assert.Equal(t, order.Shipped, shipped.Status())
		assertConsistent(t, shipped)

		_, err = shipped.CompletePacking()
		require.ErrorIs(t, err, order.ErrInvalidTransition)
		_, err = shipped.Ship()
		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("should refuse to ship before packing", func(t *testing.T) {
		_, err := newTwoLineOrder(t).Ship()

		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})
}

func TestOrder_ZeroValue(t *testing.T) {
	var o order.Order

	require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	_, err := o.PickItem("P1001", 1)
	require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
}
