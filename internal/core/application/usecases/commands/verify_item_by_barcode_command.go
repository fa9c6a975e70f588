package commands

import (
	"errors"
	"strings"

	"warehouse/internal/pkg/guard"
)

var ErrVerifyItemByBarcodeCommandIsNotConstructed = errors.New(
	"VerifyItemByBarcodeCommand must be created via NewVerifyItemByBarcodeCommand constructor",
)

// VerifyItemByBarcodeCommand is a packing station scan: the barcode identifies
// the product, which must be a picked line of the order.
type VerifyItemByBarcodeCommand struct { //nolint:recvcheck //using for validation
	orderID string
	barcode string

	guard guard.ConstructorGuard
}

func NewVerifyItemByBarcodeCommand(orderID, barcode string) (VerifyItemByBarcodeCommand, error) {
	barcode = strings.TrimSpace(barcode)
	if err := errors.Join(
		requireID("orderId", orderID),
		requireID("barcode", barcode),
	); err != nil {
		return VerifyItemByBarcodeCommand{}, err
	}

	return VerifyItemByBarcodeCommand{
		orderID: orderID,
		barcode: barcode,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c VerifyItemByBarcodeCommand) Validate() error {
	return c.guard.Validate(ErrVerifyItemByBarcodeCommandIsNotConstructed)
}

func (c VerifyItemByBarcodeCommand) OrderID() string { return c.orderID }
func (c VerifyItemByBarcodeCommand) Barcode() string { return c.barcode }
