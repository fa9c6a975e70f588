package order

import (
	"strconv"

	"warehouse/internal/core/domain/model/kernel"
)

const (
	EventOrderCreated       = "order.created"
	EventItemStatusChanged  = "order.item_status_changed"
	EventOrderStatusChanged = "order.status_changed"
)

// CreatedEvent is raised by NewOrder.
type CreatedEvent struct {
	kernel.BaseEvent
	Priority    Priority
	ItemCount   int
	TotalAmount kernel.Money
}

func (e CreatedEvent) Attributes() map[string]string {
	return map[string]string{
		"priority":    e.Priority.String(),
		"itemCount":   strconv.Itoa(e.ItemCount),
		"totalAmount": e.TotalAmount.String(),
	}
}

// ItemStatusChangedEvent is raised whenever one line moves forward.
type ItemStatusChangedEvent struct {
	kernel.BaseEvent
	ProductID string
	From      ItemStatus
	To        ItemStatus
}

func (e ItemStatusChangedEvent) Attributes() map[string]string {
	return map[string]string{
		"productId": e.ProductID,
		"from":      e.From.String(),
		"to":        e.To.String(),
	}
}

// StatusChangedEvent is raised when the derived (or shipped) order status changes.
type StatusChangedEvent struct {
	kernel.BaseEvent
	From Status
	To   Status
}

func (e StatusChangedEvent) Attributes() map[string]string {
	return map[string]string{
		"from": e.From.String(),
		"to":   e.To.String(),
	}
}
