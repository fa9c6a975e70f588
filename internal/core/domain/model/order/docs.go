// Package order provides the Order aggregate of the fulfillment workflow:
// intake, picking, packing verification and shipping.
//
// The package includes:
//   - Order: the aggregate root owning its items; every operation returns a new snapshot
//   - Item and ItemStatus: per-line status with strictly forward transitions
//   - Status and DeriveStatus: the order status computed from item statuses
//   - Customer and Priority: immutable intake data
//
// Key business rules:
//   - Items move pending -> picked -> verified, one step at a time
//   - Order status is DeriveStatus(items) at all times, except for the explicit Shipped state
//   - Total amount is always the sum of price x quantity
//   - Failed operations leave the previous snapshot intact
package order
