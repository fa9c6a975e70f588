// Package kafka streams committed domain events to a Kafka topic as Avro records.
package kafka

import (
	"context"
	"fmt"
	"log/slog"

	"warehouse/internal/core/domain/model/kernel"

	"github.com/twmb/franz-go/pkg/kgo"
)

const eventNameHeader = "event-name"

// Publisher produces one record per domain event. Records are keyed by
// aggregate id, so the events of one order stay in order within a partition.
type Publisher struct {
	client  *kgo.Client
	topic   string
	encoder *Encoder
	logger  *slog.Logger
}

func NewPublisher(brokers []string, topic string, logger *slog.Logger) (*Publisher, error) {
	encoder, err := NewEncoder()
	if err != nil {
		return nil, err
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	logger = logger.With("component", "kafka_publisher")
	logger.Info("Kafka producer created", "brokers", brokers, "topic", topic)

	return &Publisher{
		client:  client,
		topic:   topic,
		encoder: encoder,
		logger:  logger,
	}, nil
}

// Publish waits until every record is acknowledged.
func (p *Publisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	records, err := p.records(events)
	if err != nil {
		return err
	}

	if err := p.client.ProduceSync(ctx, records...).FirstErr(); err != nil {
		return fmt.Errorf("publish to kafka topic %s: %w", p.topic, err)
	}
	return nil
}

func (p *Publisher) Close() {
	p.logger.Info("Closing kafka producer", "topic", p.topic)
	p.client.Close()
}

func (p *Publisher) records(events []kernel.DomainEvent) ([]*kgo.Record, error) {
	records := make([]*kgo.Record, 0, len(events))
	for _, e := range events {
		value, err := p.encoder.Encode(e)
		if err != nil {
			return nil, err
		}
		records = append(records, &kgo.Record{
			Topic:     p.topic,
			Key:       []byte(e.AggregateID()),
			Value:     value,
			Timestamp: e.OccurredAt(),
			Headers:   []kgo.RecordHeader{{Key: eventNameHeader, Value: []byte(e.EventName())}},
		})
	}
	return records, nil
}
