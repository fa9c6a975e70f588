package queries

import (
	"context"

	"warehouse/internal/core/ports"
)

// GetOrdersByStatusQueryHandler reads orders by status from the committed state.
// It never blocks on orders locked by running commands.
type GetOrdersByStatusQueryHandler struct {
	orders ports.OrderReader
}

func NewGetOrdersByStatusQueryHandler(orders ports.OrderReader) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{orders: orders}
}

// Handle returns the matching orders in intake order; an empty slice when none match.
func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStatusQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.GetByStatus(ctx, query.Status())
	if err != nil {
		return nil, err
	}
	return newOrderResponses(orders), nil
}
