// Package seed loads a YAML catalog and order backlog at start-up. Every entry
// goes through the regular command handlers, so seeded data obeys the same
// rules and raises the same events as live traffic.
package seed

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// File is the root of a seed document.
//
// Example:
//
//	products:
//	  - productId: P1001
//	    barcode: "8901234567890"
//	    name: Wireless Bluetooth Headphones
//	    category: Electronics
//	    location: A-12-3
//	    stockQuantity: 45
//	    unitPrice: 49.99
//	orders:
//	  - orderId: ORD10001
//	    customer: {name: Jane Smith, email: jane.smith@example.com, address: 123 Main St}
//	    orderDate: 2025-05-01T10:30:00Z
//	    priority: standard
//	    items:
//	      - {productId: P1001, quantity: 2, status: picked}
type File struct {
	Products []Product `yaml:"products"`
	Orders   []Order   `yaml:"orders"`
}

type Product struct {
	ID            string `yaml:"productId"`
	Barcode       string `yaml:"barcode"`
	Name          string `yaml:"name"`
	Category      string `yaml:"category"`
	Location      string `yaml:"location"`
	StockQuantity int    `yaml:"stockQuantity"`
	// UnitPrice keeps the literal text so "49.99" never passes through a float.
	UnitPrice string `yaml:"unitPrice"`
}

type Customer struct {
	Name    string `yaml:"name"`
	Email   string `yaml:"email"`
	Address string `yaml:"address"`
}

type Order struct {
	ID        string    `yaml:"orderId"`
	Customer  Customer  `yaml:"customer"`
	OrderDate time.Time `yaml:"orderDate"`
	Priority  string    `yaml:"priority"`
	Items     []Item    `yaml:"items"`
	// Shipped ships the order once every item is verified.
	Shipped bool `yaml:"shipped"`
}

// Item is an order line. Status is the progress to replay: pending (default),
// picked or verified.
type Item struct {
	ProductID string `yaml:"productId"`
	Quantity  int    `yaml:"quantity"`
	Status    string `yaml:"status"`
}

// LoadFile reads and parses a seed file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses YAML seed data.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed YAML: %w", err)
	}
	return &f, nil
}
