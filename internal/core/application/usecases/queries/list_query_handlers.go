package queries

import (
	"cmp"
	"context"
	"slices"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/ports"
)

type GetAllOrdersQueryHandler struct {
	orders ports.OrderReader
}

func NewGetAllOrdersQueryHandler(orders ports.OrderReader) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{orders: orders}
}

func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return newOrderResponses(orders), nil
}

type GetPendingOrdersQueryHandler struct {
	orders ports.OrderReader
}

func NewGetPendingOrdersQueryHandler(orders ports.OrderReader) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{orders: orders}
}

// Handle returns pending and processing orders. Express orders come first;
// within a priority the oldest order comes first.
func (h GetPendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.GetByStatus(ctx, order.Pending, order.Processing)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(orders, func(a, b *order.Order) int {
		return cmp.Or(
			cmp.Compare(b.Priority(), a.Priority()),
			a.OrderDate().Compare(b.OrderDate()),
		)
	})
	return newOrderResponses(orders), nil
}

type GetAllProductsQueryHandler struct {
	products ports.ProductReader
}

func NewGetAllProductsQueryHandler(products ports.ProductReader) GetAllProductsQueryHandler {
	return GetAllProductsQueryHandler{products: products}
}

func (h GetAllProductsQueryHandler) Handle(ctx context.Context, query GetAllProductsQuery) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products, err := h.products.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return newProductResponses(products), nil
}

// OrderMetricsResponse holds the dashboard counters. ByStatus has an entry for
// every status, zero included.
type OrderMetricsResponse struct {
	Total    int
	ByStatus map[string]int
}

type GetOrderMetricsQueryHandler struct {
	orders ports.OrderReader
}

func NewGetOrderMetricsQueryHandler(orders ports.OrderReader) GetOrderMetricsQueryHandler {
	return GetOrderMetricsQueryHandler{orders: orders}
}

func (h GetOrderMetricsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderMetricsQuery,
) (OrderMetricsResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderMetricsResponse{}, err
	}

	orders, err := h.orders.GetAll(ctx)
	if err != nil {
		return OrderMetricsResponse{}, err
	}

	metrics := OrderMetricsResponse{
		Total:    len(orders),
		ByStatus: make(map[string]int, len(order.AllStatuses())),
	}
	for _, status := range order.AllStatuses() {
		metrics.ByStatus[status.String()] = 0
	}
	for _, o := range orders {
		metrics.ByStatus[o.Status().String()]++
	}
	return metrics, nil
}
