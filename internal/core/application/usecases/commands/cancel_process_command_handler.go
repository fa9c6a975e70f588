package commands

import (
	"context"

	"warehouse/internal/core/domain/model/order"
)

// CancelProcessCommandHandler lets a picker or packer walk away from an order.
// Progress is kept so the session can be resumed later: the order is returned
// exactly as stored and nothing is written.
type CancelProcessCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCancelProcessCommandHandler(uowFactory OrderUoWFactory) CancelProcessCommandHandler {
	return CancelProcessCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns order.ErrOrderNotFound for unknown orders.
func (h CancelProcessCommandHandler) Handle(ctx context.Context, cmd CancelProcessCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return getOrder(ctx, uow.OrderRepository(), cmd.OrderID())
}
