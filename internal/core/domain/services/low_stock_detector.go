package services

import (
	"cmp"
	"slices"

	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/pkg/errs"
)

// LowStockAlert is one product whose stock is below the threshold.
type LowStockAlert struct {
	Product  *product.Product
	Severity product.Severity
}

// Event returns the LowStockDetected event for the alert.
func (a LowStockAlert) Event(threshold int) product.LowStockDetectedEvent {
	return product.NewLowStockDetectedEvent(a.Product, threshold, a.Severity)
}

// LowStockDetector grades catalog stock against a restock threshold.
//
// Business rules:
//   - Stock below the threshold raises a warning
//   - Stock at or below half the threshold (out of stock included) is critical
//   - Alerts are ordered critical first, then by ascending stock, then by product id
type LowStockDetector struct {
	threshold int
}

// NewLowStockDetector requires a positive threshold.
func NewLowStockDetector(threshold int) (LowStockDetector, error) {
	if threshold <= 0 {
		return LowStockDetector{}, errs.NewValueIsOutOfRangeError("threshold", threshold, 1, "unbounded")
	}
	return LowStockDetector{threshold: threshold}, nil
}

func (d LowStockDetector) Threshold() int {
	return d.threshold
}

// Detect returns an alert for every product below the threshold.
func (d LowStockDetector) Detect(products []*product.Product) []LowStockAlert {
	alerts := make([]LowStockAlert, 0)
	for _, p := range products {
		if p.Validate() != nil {
			continue
		}
		if severity := p.StockSeverity(d.threshold); severity != product.SeverityNone {
			alerts = append(alerts, LowStockAlert{Product: p, Severity: severity})
		}
	}

	slices.SortFunc(alerts, func(a, b LowStockAlert) int {
		return cmp.Or(
			cmp.Compare(b.Severity, a.Severity),
			cmp.Compare(a.Product.StockQuantity(), b.Product.StockQuantity()),
			cmp.Compare(a.Product.ID(), b.Product.ID()),
		)
	})
	return alerts
}
