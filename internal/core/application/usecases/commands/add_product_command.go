package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/pkg/guard"
)

var ErrAddProductCommandIsNotConstructed = errors.New(
	"AddProductCommand must be created via NewAddProductCommand constructor",
)

// AddProductCommand registers a catalog entry. Location uses the bin code form
// "A-12-3" and unitPrice a decimal string such as "49.99".
type AddProductCommand struct { //nolint:recvcheck //using for validation
	product *product.Product

	guard guard.ConstructorGuard
}

func NewAddProductCommand(
	productID, barcode, name, category, location string,
	stockQuantity int,
	unitPrice string,
) (AddProductCommand, error) {
	loc, locErr := kernel.ParseLocation(location)
	price, priceErr := kernel.MoneyFromString(unitPrice)
	if err := errors.Join(locErr, priceErr); err != nil {
		return AddProductCommand{}, err
	}

	p, err := product.NewProduct(productID, barcode, name, category, loc, stockQuantity, price)
	if err != nil {
		return AddProductCommand{}, err
	}

	return AddProductCommand{
		product: p,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AddProductCommand) Validate() error {
	return c.guard.Validate(ErrAddProductCommandIsNotConstructed)
}

// Product returns the validated catalog entry to store.
func (c AddProductCommand) Product() *product.Product {
	return c.product
}
