// Package ports defines the contracts between the warehouse core and its
// adapters: repositories, the unit of work, read models and event sinks.
package ports

import (
	"context"

	"warehouse/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Implementations return an errs.ObjectNotFoundError for unknown ids and refuse
// to store snapshots that fail (*order.Order).CheckInvariants.
type OrderRepository interface {
	// Add persists a new order. The id must not exist yet.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update replaces the stored snapshot of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id. Inside a transaction the order stays locked
	// until commit or rollback, which serializes operations on the same order.
	Get(ctx context.Context, id string) (*order.Order, error)

	// GetAll returns every order in intake order.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetByStatus returns the orders whose status is any of statuses, in intake order.
	//
	// Example:
	//   queue, err := repo.GetByStatus(ctx, order.Pending, order.Processing)
	//   if err != nil {
	//       return fmt.Errorf("failed to load picking queue: %w", err)
	//   }
	GetByStatus(ctx context.Context, statuses ...order.Status) ([]*order.Order, error)
}

// OrderReader is the read-only side of OrderRepository used by queries.
type OrderReader interface {
	Get(ctx context.Context, id string) (*order.Order, error)
	GetAll(ctx context.Context) ([]*order.Order, error)
	GetByStatus(ctx context.Context, statuses ...order.Status) ([]*order.Order, error)
}
