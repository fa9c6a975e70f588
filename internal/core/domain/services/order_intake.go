package services

import (
	"fmt"
	"time"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/product"
)

// Line is a requested order line before pricing.
type Line struct {
	ProductID string
	Quantity  int
}

// OrderIntake registers new orders. Each line takes the unit price of its
// catalog product at intake time; later price changes never reach the order.
//
// Business rules:
//   - Every line must reference a product from the catalog
//   - Lines start pending and the order starts pending
//   - A product may appear on one line only
//
// Example usage:
//
//	intake := services.NewOrderIntake()
//	o, err := intake.Register("ORD10001", customer, time.Now(), order.Standard,
//	    []services.Line{{ProductID: "P1001", Quantity: 2}}, catalog)
//	if errors.Is(err, product.ErrProductNotFound) {
//	    // Unknown product on a line
//	}
type OrderIntake struct{}

func NewOrderIntake() OrderIntake {
	return OrderIntake{}
}

// Register prices lines against products and creates the order.
//
// Returns product.ErrProductNotFound for lines whose product is not among
// products, and the validation errors of order.NewOrder otherwise.
func (OrderIntake) Register(
	id string,
	customer order.Customer,
	orderDate time.Time,
	priority order.Priority,
	lines []Line,
	products []*product.Product,
) (*order.Order, error) {
	catalog := make(map[string]*product.Product, len(products))
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		catalog[p.ID()] = p
	}

	items := make([]order.Item, 0, len(lines))
	for _, line := range lines {
		p, ok := catalog[line.ProductID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", product.ErrProductNotFound, line.ProductID)
		}

		item, err := order.NewItem(p.ID(), line.Quantity, p.UnitPrice())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return order.NewOrder(id, customer, orderDate, priority, items)
}
