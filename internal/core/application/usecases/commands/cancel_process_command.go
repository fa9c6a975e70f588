package commands

import (
	"errors"

	"warehouse/internal/pkg/guard"
)

var ErrCancelProcessCommandIsNotConstructed = errors.New(
	"CancelProcessCommand must be created via NewCancelProcessCommand constructor",
)

// CancelProcessCommand abandons the current picking or packing session.
type CancelProcessCommand struct { //nolint:recvcheck //using for validation
	orderID string

	guard guard.ConstructorGuard
}

func NewCancelProcessCommand(orderID string) (CancelProcessCommand, error) {
	if err := requireID("orderId", orderID); err != nil {
		return CancelProcessCommand{}, err
	}

	return CancelProcessCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CancelProcessCommand) Validate() error {
	return c.guard.Validate(ErrCancelProcessCommandIsNotConstructed)
}

func (c CancelProcessCommand) OrderID() string {
	return c.orderID
}
