package commands

import (
	"context"

	"warehouse/internal/core/domain/model/order"
)

// CompleteOrderPickingCommandHandler ends picking for an order. Every line must
// be picked (or already verified); verified lines are never moved back, and the
// status is re-derived. Repeating the command returns the same order.
//
// Errors: order.ErrOrderNotFound, order.ErrIncompleteItems, order.ErrInvalidTransition (shipped).
type CompleteOrderPickingCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCompleteOrderPickingCommandHandler(uowFactory OrderUoWFactory) CompleteOrderPickingCommandHandler {
	return CompleteOrderPickingCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CompleteOrderPickingCommandHandler) Handle(
	ctx context.Context,
	cmd CompleteOrderPickingCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), (*order.Order).CompletePicking)
}
