package queries

import (
	"context"
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"
)

// GetOrderQueryHandler returns a single order or order.ErrOrderNotFound.
type GetOrderQueryHandler struct {
	orders ports.OrderReader
}

func NewGetOrderQueryHandler(orders ports.OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return OrderResponse{}, fmt.Errorf("%w: %s", order.ErrOrderNotFound, query.OrderID())
	}
	if err != nil {
		return OrderResponse{}, err
	}
	return NewOrderResponse(o), nil
}
