package ports

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
)

// EventSource is an aggregate snapshot that carries the events raised while producing it.
type EventSource interface {
	DomainEvents() []kernel.DomainEvent
}

// EventPublisher delivers committed domain events to the outside world
// (activity feed, message broker, cache invalidation).
type EventPublisher interface {
	Publish(ctx context.Context, events ...kernel.DomainEvent) error
}

// ActivityFeed serves the most recent domain events, newest first.
type ActivityFeed interface {
	Recent(ctx context.Context, limit int) ([]kernel.DomainEvent, error)
}
