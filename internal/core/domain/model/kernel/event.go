package kernel

import "time"

// DomainEvent is a fact raised by an aggregate operation. Events are collected
// on the aggregate snapshot and published after the unit of work commits.
type DomainEvent interface {
	EventID() UUID
	EventName() string
	AggregateID() string
	OccurredAt() time.Time
	// Attributes are the event's payload flattened to strings for the
	// activity feed and the wire encoding.
	Attributes() map[string]string
}

// BaseEvent carries the fields shared by every DomainEvent implementation.
type BaseEvent struct {
	id          UUID
	name        string
	aggregateID string
	occurredAt  time.Time
}

// NewBaseEvent stamps a new event with a random id and the current UTC time.
func NewBaseEvent(name, aggregateID string) BaseEvent {
	return BaseEvent{
		id:          NewUUID(),
		name:        name,
		aggregateID: aggregateID,
		occurredAt:  time.Now().UTC(),
	}
}

func (e BaseEvent) EventID() UUID         { return e.id }
func (e BaseEvent) EventName() string     { return e.name }
func (e BaseEvent) AggregateID() string   { return e.aggregateID }
func (e BaseEvent) OccurredAt() time.Time { return e.occurredAt }
