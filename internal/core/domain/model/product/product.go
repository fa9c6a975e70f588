package product

import (
	"errors"
	"slices"
	"strings"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

// Product is a catalog entry. Identity, barcode, name, category, bin location
// and unit price are fixed once registered; only the stock level changes.
//
// Like Order, AdjustStock does not mutate the receiver but returns a new
// snapshot carrying a StockAdjustedEvent.
type Product struct {
	// id is the business identifier, e.g. "P1001"
	id string

	barcode  string
	name     string
	category string
	location kernel.Location

	stockQuantity int
	unitPrice     kernel.Money

	events []kernel.DomainEvent

	// isConstructed ensures the product was created via NewProduct or RestoreProduct
	isConstructed bool
}

// NewProduct registers a catalog entry.
//
// Example:
//
//	loc := kernel.MustParseLocation("A-12-3")
//	p, err := product.NewProduct("P1001", "8901234567890", "Wireless Headphones",
//	    "Electronics", loc, 45, kernel.MustMoney("49.99"))
func NewProduct(
	id, barcode, name, category string,
	location kernel.Location,
	stockQuantity int,
	unitPrice kernel.Money,
) (*Product, error) {
	p, err := RestoreProduct(id, barcode, name, category, location, stockQuantity, unitPrice)
	if err != nil {
		return nil, err
	}
	p.events = []kernel.DomainEvent{AddedEvent{
		BaseEvent:     kernel.NewBaseEvent(EventProductAdded, p.id),
		Barcode:       p.barcode,
		Location:      p.location,
		StockQuantity: p.stockQuantity,
	}}
	return p, nil
}

// RestoreProduct rebuilds a product from storage. It raises no events.
func RestoreProduct(
	id, barcode, name, category string,
	location kernel.Location,
	stockQuantity int,
	unitPrice kernel.Money,
) (*Product, error) {
	p := &Product{
		unitPrice:     unitPrice,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setBarcode(barcode),
		p.setName(name),
		p.setCategory(category),
		p.setLocation(location),
		p.setStockQuantity(stockQuantity),
	); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id == other.id
}

func (p *Product) ID() string                { return p.id }
func (p *Product) Barcode() string           { return p.barcode }
func (p *Product) Name() string              { return p.name }
func (p *Product) Category() string          { return p.category }
func (p *Product) Location() kernel.Location { return p.location }
func (p *Product) StockQuantity() int        { return p.stockQuantity }
func (p *Product) UnitPrice() kernel.Money   { return p.unitPrice }

// DomainEvents returns the events raised by the operation that produced this snapshot.
func (p *Product) DomainEvents() []kernel.DomainEvent {
	return slices.Clone(p.events)
}

// AdjustStock applies adjustment and returns the new snapshot.
func (p *Product) AdjustStock(adjustment StockAdjustment) (*Product, error) {
	if err := errors.Join(p.Validate(), adjustment.Validate()); err != nil {
		return nil, err
	}

	next := *p
	next.stockQuantity = adjustment.apply(p.stockQuantity)
	next.events = []kernel.DomainEvent{StockAdjustedEvent{
		BaseEvent: kernel.NewBaseEvent(EventStockAdjusted, p.id),
		Kind:      adjustment.Kind(),
		Quantity:  adjustment.Quantity(),
		From:      p.stockQuantity,
		To:        next.stockQuantity,
	}}
	return &next, nil
}

// StockSeverity grades the current stock level against threshold.
func (p *Product) StockSeverity(threshold int) Severity {
	return SeverityFor(p.stockQuantity, threshold)
}

// IsLowStock reports whether the stock is below threshold.
func (p *Product) IsLowStock(threshold int) bool {
	return p.StockSeverity(threshold) != SeverityNone
}

func (p *Product) setID(id string) error {
	if strings.TrimSpace(id) == "" {
		return errs.NewValueIsRequiredError("productId")
	}
	p.id = id
	return nil
}

func (p *Product) setBarcode(barcode string) error {
	if strings.TrimSpace(barcode) == "" {
		return errs.NewValueIsRequiredError("barcode")
	}
	p.barcode = barcode
	return nil
}

func (p *Product) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return errs.NewValueIsRequiredError("category")
	}
	p.category = category
	return nil
}

func (p *Product) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	p.location = location
	return nil
}

func (p *Product) setStockQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsOutOfRangeError("stockQuantity", quantity, 0, "unbounded")
	}
	p.stockQuantity = quantity
	return nil
}
