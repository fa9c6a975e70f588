package queries

import (
	"errors"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/guard"
)

var ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
	"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
)

// GetOrdersByStatusQuery lists the orders in one status, e.g. the picked
// orders waiting at the packing station.
//
// Example:
//
//	query, err := NewGetOrdersByStatusQuery("picked")
//	if err != nil {
//	    return fmt.Errorf("unknown status: %w", err)
//	}
//	orders, err := handler.Handle(ctx, query)
type GetOrdersByStatusQuery struct {
	status order.Status
	guard  guard.ConstructorGuard
}

func NewGetOrdersByStatusQuery(status string) (GetOrdersByStatusQuery, error) {
	parsed, err := order.ParseStatus(status)
	if err != nil {
		return GetOrdersByStatusQuery{}, err
	}
	return GetOrdersByStatusQuery{status: parsed, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

func (q GetOrdersByStatusQuery) Status() order.Status {
	return q.status
}
