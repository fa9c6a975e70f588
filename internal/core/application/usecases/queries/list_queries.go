package queries

import (
	"errors"

	"warehouse/internal/pkg/guard"
)

var (
	ErrGetAllOrdersQueryIsNotConstructed = errors.New(
		"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
	)
	ErrGetPendingOrdersQueryIsNotConstructed = errors.New(
		"GetPendingOrdersQuery must be created via NewGetPendingOrdersQuery constructor",
	)
	ErrGetAllProductsQueryIsNotConstructed = errors.New(
		"GetAllProductsQuery must be created via NewGetAllProductsQuery constructor",
	)
	ErrGetOrderMetricsQueryIsNotConstructed = errors.New(
		"GetOrderMetricsQuery must be created via NewGetOrderMetricsQuery constructor",
	)
)

// GetAllOrdersQuery lists every order in intake order.
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// GetPendingOrdersQuery is the picking queue: orders that are pending or
// partially processed, express orders first.
type GetPendingOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetPendingOrdersQuery() GetPendingOrdersQuery {
	return GetPendingOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrdersQueryIsNotConstructed)
}

// GetAllProductsQuery lists the catalog ordered by product id.
type GetAllProductsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllProductsQuery() GetAllProductsQuery {
	return GetAllProductsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllProductsQueryIsNotConstructed)
}

// GetOrderMetricsQuery counts orders per status for the dashboard.
type GetOrderMetricsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOrderMetricsQuery() GetOrderMetricsQuery {
	return GetOrderMetricsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetOrderMetricsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderMetricsQueryIsNotConstructed)
}
