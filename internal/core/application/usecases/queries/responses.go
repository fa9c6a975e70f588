// Package queries contains read operations for retrieving warehouse state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models shaped for the picking, packing and dashboard screens.
package queries

import (
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/product"
)

// CustomerResponse is the buyer block of an order read model.
type CustomerResponse struct {
	Name    string
	Email   string
	Address string
}

// OrderItemResponse is one order line in the read model.
type OrderItemResponse struct {
	ProductID string
	Quantity  int
	Price     kernel.Money
	Status    string
}

// OrderResponse is the read model of an order.
//
// Example:
//
//	response := OrderResponse{
//	    OrderID:     "ORD10001",
//	    Status:      "processing",
//	    TotalAmount: kernel.MustMoney("179.97"),
//	    Priority:    "standard",
//	}
type OrderResponse struct {
	OrderID     string
	Customer    CustomerResponse
	OrderDate   time.Time
	Status      string
	Items       []OrderItemResponse
	TotalAmount kernel.Money
	Priority    string
}

// NewOrderResponse flattens an order snapshot into its read model.
func NewOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
			Price:     item.Price(),
			Status:    item.Status().String(),
		})
	}

	return OrderResponse{
		OrderID: o.ID(),
		Customer: CustomerResponse{
			Name:    o.Customer().Name(),
			Email:   o.Customer().Email(),
			Address: o.Customer().Address(),
		},
		OrderDate:   o.OrderDate(),
		Status:      o.Status().String(),
		Items:       items,
		TotalAmount: o.TotalAmount(),
		Priority:    o.Priority().String(),
	}
}

func newOrderResponses(orders []*order.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, NewOrderResponse(o))
	}
	return responses
}

// ProductResponse is the read model of a catalog entry.
type ProductResponse struct {
	ProductID     string
	Barcode       string
	Name          string
	Category      string
	Location      string
	StockQuantity int
	UnitPrice     kernel.Money
}

// NewProductResponse flattens a product snapshot into its read model.
func NewProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ProductID:     p.ID(),
		Barcode:       p.Barcode(),
		Name:          p.Name(),
		Category:      p.Category(),
		Location:      p.Location().String(),
		StockQuantity: p.StockQuantity(),
		UnitPrice:     p.UnitPrice(),
	}
}

func newProductResponses(products []*product.Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, NewProductResponse(p))
	}
	return responses
}
