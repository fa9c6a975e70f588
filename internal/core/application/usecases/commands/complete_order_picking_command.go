package commands

import (
	"errors"

	"warehouse/internal/pkg/guard"
)

var ErrCompleteOrderPickingCommandIsNotConstructed = errors.New(
	"CompleteOrderPickingCommand must be created via NewCompleteOrderPickingCommand constructor",
)

// CompleteOrderPickingCommand closes the picking session of an order.
type CompleteOrderPickingCommand struct { //nolint:recvcheck //using for validation
	orderID string

	guard guard.ConstructorGuard
}

func NewCompleteOrderPickingCommand(orderID string) (CompleteOrderPickingCommand, error) {
	if err := requireID("orderId", orderID); err != nil {
		return CompleteOrderPickingCommand{}, err
	}

	return CompleteOrderPickingCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CompleteOrderPickingCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderPickingCommandIsNotConstructed)
}

func (c CompleteOrderPickingCommand) OrderID() string {
	return c.orderID
}
