// Package events fans committed domain events out to every configured sink.
package events

import (
	"context"
	"errors"
	"log/slog"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/ports"
)

// Sink is a named event publisher.
type Sink struct {
	Name      string
	Publisher ports.EventPublisher
}

// FanOutPublisher hands every batch to all sinks in order. A failing sink is
// logged and does not stop the others; the joined error is returned.
type FanOutPublisher struct {
	sinks  []Sink
	logger *slog.Logger
}

func NewFanOutPublisher(logger *slog.Logger, sinks ...Sink) *FanOutPublisher {
	return &FanOutPublisher{
		sinks:  sinks,
		logger: logger.With("component", "event_fan_out"),
	}
}

func (p *FanOutPublisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	var errs []error
	for _, sink := range p.sinks {
		if err := sink.Publisher.Publish(ctx, events...); err != nil {
			p.logger.WarnContext(ctx, "Event sink failed", "sink", sink.Name, "events", len(events), "error", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
