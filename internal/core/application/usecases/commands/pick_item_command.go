package commands

import (
	"errors"

	"warehouse/internal/pkg/guard"
)

var ErrPickItemCommandIsNotConstructed = errors.New(
	"PickItemCommand must be created via NewPickItemCommand constructor",
)

// PickItemCommand records that a picker took an order line from its bin.
// The quantity is checked against the order line by the handler, so a
// non-positive quantity is reported as order.ErrInvalidQuantity.
//
// Example:
//
//	cmd, err := NewPickItemCommand("ORD10001", "P1001", 2)
//	if err != nil {
//	    return fmt.Errorf("invalid pick: %w", err)
//	}
//	o, err := handler.Handle(ctx, cmd)
type PickItemCommand struct { //nolint:recvcheck //using for validation
	orderID   string
	productID string
	quantity  int

	guard guard.ConstructorGuard
}

func NewPickItemCommand(orderID, productID string, quantity int) (PickItemCommand, error) {
	cmd := PickItemCommand{
		orderID:   orderID,
		productID: productID,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requireID("orderId", orderID),
		requireID("productId", productID),
	); err != nil {
		return PickItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PickItemCommand) Validate() error {
	return c.guard.Validate(ErrPickItemCommandIsNotConstructed)
}

func (c PickItemCommand) OrderID() string {
	return c.orderID
}

func (c PickItemCommand) ProductID() string {
	return c.productID
}

func (c PickItemCommand) Quantity() int {
	return c.quantity
}
