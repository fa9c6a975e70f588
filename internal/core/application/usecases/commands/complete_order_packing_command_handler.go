package commands

import (
	"context"

	"warehouse/internal/core/domain/model/order"
)

// CompleteOrderPackingCommandHandler ends packing for an order. Every line must
// be verified and the order ends up packed. Repeating the command returns the same order.
//
// Errors: order.ErrOrderNotFound, order.ErrIncompleteItems, order.ErrInvalidTransition (shipped).
type CompleteOrderPackingCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCompleteOrderPackingCommandHandler(uowFactory OrderUoWFactory) CompleteOrderPackingCommandHandler {
	return CompleteOrderPackingCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CompleteOrderPackingCommandHandler) Handle(
	ctx context.Context,
	cmd CompleteOrderPackingCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), (*order.Order).CompletePacking)
}
