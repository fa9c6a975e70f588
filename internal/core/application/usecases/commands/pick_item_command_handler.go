package commands

import (
	"context"

	"warehouse/internal/core/domain/model/order"
)

// PickItemCommandHandler moves an order line from pending to picked and
// re-derives the order status.
//
// Errors: order.ErrOrderNotFound, order.ErrItemNotFound, order.ErrInvalidQuantity,
// order.ErrInvalidTransition. On error nothing is stored.
type PickItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewPickItemCommandHandler(uowFactory OrderUoWFactory) PickItemCommandHandler {
	return PickItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the pick and returns the updated order.
func (h PickItemCommandHandler) Handle(ctx context.Context, cmd PickItemCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) (*order.Order, error) {
		return o.PickItem(cmd.ProductID(), cmd.Quantity())
	})
}
