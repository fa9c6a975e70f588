package queries

import (
	"errors"
	"strings"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var (
	ErrGetProductQueryIsNotConstructed = errors.New(
		"GetProductQuery must be created via NewGetProductQuery or NewGetProductByBarcodeQuery constructor",
	)
)

// GetProductQuery fetches a catalog entry either by product id or by barcode.
// Pickers look products up by id; the packing scanner uses the barcode.
//
// Example:
//
//	query, _ := NewGetProductByBarcodeQuery("8901234567890")
//	p, err := handler.Handle(ctx, query)
//	if errors.Is(err, product.ErrProductNotFound) {
//	    // Unknown barcode
//	}
type GetProductQuery struct {
	productID string
	barcode   string
	guard     guard.ConstructorGuard
}

func NewGetProductQuery(productID string) (GetProductQuery, error) {
	if productID == "" {
		return GetProductQuery{}, errs.NewValueIsRequiredError("productId")
	}
	return GetProductQuery{productID: productID, guard: guard.NewConstructorGuard()}, nil
}

func NewGetProductByBarcodeQuery(barcode string) (GetProductQuery, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return GetProductQuery{}, errs.NewValueIsRequiredError("barcode")
	}
	return GetProductQuery{barcode: barcode, guard: guard.NewConstructorGuard()}, nil
}

func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

func (q GetProductQuery) ProductID() string { return q.productID }
func (q GetProductQuery) Barcode() string   { return q.barcode }

// ByBarcode reports whether the query looks the product up by barcode.
func (q GetProductQuery) ByBarcode() bool {
	return q.barcode != ""
}
