package http

import (
	"time"

	"warehouse/internal/core/application/usecases/queries"

	"github.com/shopspring/decimal"
)

// Money fields are rendered by shopspring/decimal as JSON strings ("49.99").

type Customer struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Address string `json:"address" validate:"required"`
}

type OrderItem struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Status    string          `json:"status"`
}

// Order is the serialized order shape shared with the dashboard and clients.
type Order struct {
	OrderID     string          `json:"orderId"`
	Customer    Customer        `json:"customer"`
	OrderDate   time.Time       `json:"orderDate"`
	Status      string          `json:"status"`
	Items       []OrderItem     `json:"items"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Priority    string          `json:"priority"`
}

type Product struct {
	ProductID     string          `json:"productId"`
	Barcode       string          `json:"barcode"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Location      string          `json:"location"`
	StockQuantity int             `json:"stockQuantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
}

type LowStockProduct struct {
	Product
	Severity string `json:"severity"`
}

type Activity struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	AggregateID string            `json:"aggregateId"`
	OccurredAt  time.Time         `json:"occurredAt"`
	Attributes  map[string]string `json:"attributes"`
}

type OrderMetrics struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"byStatus"`
}

type NewOrderItem struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity"  validate:"gt=0"`
}

type NewOrder struct {
	OrderID   string         `json:"orderId"   validate:"required"`
	Customer  Customer       `json:"customer"`
	OrderDate time.Time      `json:"orderDate"`
	Priority  string         `json:"priority"  validate:"omitempty,oneof=standard express"`
	Items     []NewOrderItem `json:"items"     validate:"required,min=1,dive"`
}

type NewProduct struct {
	ProductID     string          `json:"productId"     validate:"required"`
	Barcode       string          `json:"barcode"       validate:"required"`
	Name          string          `json:"name"          validate:"required"`
	Category      string          `json:"category"`
	Location      string          `json:"location"      validate:"required"`
	StockQuantity int             `json:"stockQuantity" validate:"gte=0"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
}

// PickItem picks Quantity units; an omitted quantity picks the whole line.
// A present quantity is passed on as is, so zero or negative values are
// rejected by the order.
type PickItem struct {
	Quantity *int `json:"quantity"`
}

type VerifyBarcode struct {
	Barcode string `json:"barcode" validate:"required"`
}

type StockAdjustment struct {
	Kind     string `json:"kind"     validate:"required,oneof=add remove set"`
	Quantity int    `json:"quantity" validate:"gte=0"`
}

func toOrder(r queries.OrderResponse) Order {
	items := make([]OrderItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price.Decimal(),
			Status:    item.Status,
		})
	}
	return Order{
		OrderID: r.OrderID,
		Customer: Customer{
			Name:    r.Customer.Name,
			Email:   r.Customer.Email,
			Address: r.Customer.Address,
		},
		OrderDate:   r.OrderDate,
		Status:      r.Status,
		Items:       items,
		TotalAmount: r.TotalAmount.Decimal(),
		Priority:    r.Priority,
	}
}

func toOrders(responses []queries.OrderResponse) []Order {
	orders := make([]Order, 0, len(responses))
	for _, r := range responses {
		orders = append(orders, toOrder(r))
	}
	return orders
}

func toProduct(r queries.ProductResponse) Product {
	return Product{
		ProductID:     r.ProductID,
		Barcode:       r.Barcode,
		Name:          r.Name,
		Category:      r.Category,
		Location:      r.Location,
		StockQuantity: r.StockQuantity,
		UnitPrice:     r.UnitPrice.Decimal(),
	}
}

func toProducts(responses []queries.ProductResponse) []Product {
	products := make([]Product, 0, len(responses))
	for _, r := range responses {
		products = append(products, toProduct(r))
	}
	return products
}
