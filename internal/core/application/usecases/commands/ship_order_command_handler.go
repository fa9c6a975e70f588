package commands

import (
	"context"

	"warehouse/internal/core/domain/model/order"
)

// ShipOrderCommandHandler moves a packed order to shipped. Shipped orders are
// closed: later engine operations on them fail with order.ErrInvalidTransition.
type ShipOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewShipOrderCommandHandler(uowFactory OrderUoWFactory) ShipOrderCommandHandler {
	return ShipOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ShipOrderCommandHandler) Handle(ctx context.Context, cmd ShipOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), (*order.Order).Ship)
}
