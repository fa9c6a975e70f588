package commands

import (
	"errors"

	"warehouse/internal/pkg/guard"
)

var ErrCompleteOrderPackingCommandIsNotConstructed = errors.New(
	"CompleteOrderPackingCommand must be created via NewCompleteOrderPackingCommand constructor",
)

// CompleteOrderPackingCommand closes the packing session of an order.
type CompleteOrderPackingCommand struct { //nolint:recvcheck //using for validation
	orderID string

	guard guard.ConstructorGuard
}

func NewCompleteOrderPackingCommand(orderID string) (CompleteOrderPackingCommand, error) {
	if err := requireID("orderId", orderID); err != nil {
		return CompleteOrderPackingCommand{}, err
	}

	return CompleteOrderPackingCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CompleteOrderPackingCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderPackingCommandIsNotConstructed)
}

func (c CompleteOrderPackingCommand) OrderID() string {
	return c.orderID
}
