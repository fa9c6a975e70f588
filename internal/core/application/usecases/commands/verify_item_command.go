package commands

import (
	"errors"

	"warehouse/internal/pkg/guard"
)

var ErrVerifyItemCommandIsNotConstructed = errors.New(
	"VerifyItemCommand must be created via NewVerifyItemCommand constructor",
)

// VerifyItemCommand confirms a picked order line at the packing station.
type VerifyItemCommand struct { //nolint:recvcheck //using for validation
	orderID   string
	productID string

	guard guard.ConstructorGuard
}

func NewVerifyItemCommand(orderID, productID string) (VerifyItemCommand, error) {
	if err := errors.Join(
		requireID("orderId", orderID),
		requireID("productId", productID),
	); err != nil {
		return VerifyItemCommand{}, err
	}

	return VerifyItemCommand{
		orderID:   orderID,
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c VerifyItemCommand) Validate() error {
	return c.guard.Validate(ErrVerifyItemCommandIsNotConstructed)
}

func (c VerifyItemCommand) OrderID() string   { return c.orderID }
func (c VerifyItemCommand) ProductID() string { return c.productID }
