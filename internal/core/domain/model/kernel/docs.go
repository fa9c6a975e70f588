// Package kernel provides the shared value objects of the warehouse domain.
//
// The package includes:
//   - UUID: identifier for domain events
//   - Location: a bin address inside the warehouse ("A-12-3")
//   - Money: exact currency amounts used for unit prices and order totals
//   - DomainEvent/BaseEvent: the contract for facts raised by aggregates
//
// Values are immutable; zero values of guarded types fail Validate.
package kernel
