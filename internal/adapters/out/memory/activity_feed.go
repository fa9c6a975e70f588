package memory

import (
	"context"
	"sync"

	"warehouse/internal/core/domain/model/kernel"
)

// DefaultActivityFeedSize is the capacity used when none is configured.
const DefaultActivityFeedSize = 200

// ActivityFeed keeps the latest published domain events in a fixed-size ring.
// It is both an event sink and the source of the dashboard activity feed.
type ActivityFeed struct {
	mu     sync.RWMutex
	events []kernel.DomainEvent
	next   int
	full   bool
}

// NewActivityFeed creates a feed holding up to size events.
func NewActivityFeed(size int) *ActivityFeed {
	if size <= 0 {
		size = DefaultActivityFeedSize
	}
	return &ActivityFeed{events: make([]kernel.DomainEvent, size)}
}

// Publish appends events, overwriting the oldest ones once the ring is full.
func (f *ActivityFeed) Publish(_ context.Context, events ...kernel.DomainEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, e := range events {
		f.events[f.next] = e
		f.next = (f.next + 1) % len(f.events)
		if f.next == 0 {
			f.full = true
		}
	}
	return nil
}

// Recent returns up to limit events, newest first.
func (f *ActivityFeed) Recent(_ context.Context, limit int) ([]kernel.DomainEvent, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	count := f.next
	if f.full {
		count = len(f.events)
	}
	limit = min(limit, count)

	recent := make([]kernel.DomainEvent, 0, max(limit, 0))
	for i := 1; i <= limit; i++ {
		idx := (f.next - i + len(f.events)) % len(f.events)
		recent = append(recent, f.events[idx])
	}
	return recent, nil
}
