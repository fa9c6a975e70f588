package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/pkg/guard"
)

var ErrAdjustStockCommandIsNotConstructed = errors.New(
	"AdjustStockCommand must be created via NewAdjustStockCommand constructor",
)

// AdjustStockCommand changes the stock of one product: add received units,
// remove damaged ones, or set the level after a cycle count.
//
// Example:
//
//	cmd, err := NewAdjustStockCommand("P1001", "remove", 3)
type AdjustStockCommand struct { //nolint:recvcheck //using for validation
	productID  string
	adjustment product.StockAdjustment

	guard guard.ConstructorGuard
}

func NewAdjustStockCommand(productID, kind string, quantity int) (AdjustStockCommand, error) {
	parsedKind, kindErr := product.ParseAdjustmentKind(kind)
	if err := errors.Join(requireID("productId", productID), kindErr); err != nil {
		return AdjustStockCommand{}, err
	}

	adjustment, err := product.NewStockAdjustment(parsedKind, quantity)
	if err != nil {
		return AdjustStockCommand{}, err
	}

	return AdjustStockCommand{
		productID:  productID,
		adjustment: adjustment,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AdjustStockCommand) Validate() error {
	return c.guard.Validate(ErrAdjustStockCommandIsNotConstructed)
}

func (c AdjustStockCommand) ProductID() string                   { return c.productID }
func (c AdjustStockCommand) Adjustment() product.StockAdjustment { return c.adjustment }
