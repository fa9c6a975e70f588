package commands

import (
	"context"

	"warehouse/internal/core/domain/model/order"
)

// VerifyItemCommandHandler moves a picked line to verified.
//
// Errors: order.ErrOrderNotFound, order.ErrItemNotFound, order.ErrItemNotPicked
// (line still pending), order.ErrInvalidTransition.
type VerifyItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewVerifyItemCommandHandler(uowFactory OrderUoWFactory) VerifyItemCommandHandler {
	return VerifyItemCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h VerifyItemCommandHandler) Handle(ctx context.Context, cmd VerifyItemCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) (*order.Order, error) {
		return o.VerifyItem(cmd.ProductID())
	})
}
