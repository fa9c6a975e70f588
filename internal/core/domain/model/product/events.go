package product

import (
	"strconv"

	"warehouse/internal/core/domain/model/kernel"
)

const (
	EventProductAdded     = "product.added"
	EventStockAdjusted    = "product.stock_adjusted"
	EventLowStockDetected = "product.low_stock_detected"
)

// AddedEvent is raised by NewProduct.
type AddedEvent struct {
	kernel.BaseEvent
	Barcode       string
	Location      kernel.Location
	StockQuantity int
}

func (e AddedEvent) Attributes() map[string]string {
	return map[string]string{
		"barcode":       e.Barcode,
		"location":      e.Location.String(),
		"stockQuantity": strconv.Itoa(e.StockQuantity),
	}
}

// StockAdjustedEvent is raised by AdjustStock, also when the level did not move.
type StockAdjustedEvent struct {
	kernel.BaseEvent
	Kind     AdjustmentKind
	Quantity int
	From     int
	To       int
}

func (e StockAdjustedEvent) Attributes() map[string]string {
	return map[string]string{
		"kind":     e.Kind.String(),
		"quantity": strconv.Itoa(e.Quantity),
		"from":     strconv.Itoa(e.From),
		"to":       strconv.Itoa(e.To),
	}
}

// LowStockDetectedEvent is raised by the low stock scan, not by the aggregate.
type LowStockDetectedEvent struct {
	kernel.BaseEvent
	Barcode       string
	StockQuantity int
	Threshold     int
	Severity      Severity
}

func NewLowStockDetectedEvent(p *Product, threshold int, severity Severity) LowStockDetectedEvent {
	return LowStockDetectedEvent{
		BaseEvent:     kernel.NewBaseEvent(EventLowStockDetected, p.ID()),
		Barcode:       p.Barcode(),
		StockQuantity: p.StockQuantity(),
		Threshold:     threshold,
		Severity:      severity,
	}
}

func (e LowStockDetectedEvent) Attributes() map[string]string {
	return map[string]string{
		"barcode":       e.Barcode,
		"stockQuantity": strconv.Itoa(e.StockQuantity),
		"threshold":     strconv.Itoa(e.Threshold),
		"severity":      e.Severity.String(),
	}
}
