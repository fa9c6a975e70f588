// Package services provides domain services that span the Order and Product
// aggregates of the warehouse. They hold business rules that do not belong to
// a single aggregate root.
//
// The package includes:
//   - OrderIntake: prices order lines from the catalog and registers the order
//   - BarcodeVerifier: matches a scanned product against an order and verifies the line
//   - LowStockDetector: grades catalog stock levels and raises low stock alerts
//
// Services are stateless and never touch storage; callers load and persist the
// aggregates inside a unit of work.
package services
