package kafka

import (
	"fmt"
	"time"

	"warehouse/internal/core/domain/model/kernel"

	"github.com/linkedin/goavro/v2"
)

// EventSchema is the Avro schema of every record on the event topic.
const EventSchema = `{
  "type": "record",
  "name": "DomainEvent",
  "namespace": "warehouse.events",
  "fields": [
    {"name": "id", "type": "string"},
    {"name": "name", "type": "string"},
    {"name": "aggregate_id", "type": "string"},
    {"name": "occurred_at", "type": {"type": "long", "logicalType": "timestamp-millis"}},
    {"name": "attributes", "type": {"type": "map", "values": "string"}}
  ]
}`

// Encoder turns domain events into Avro binary. A goavro codec is safe for
// concurrent use.
type Encoder struct {
	codec *goavro.Codec
}

func NewEncoder() (*Encoder, error) {
	codec, err := goavro.NewCodec(EventSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to create avro codec: %w", err)
	}
	return &Encoder{codec: codec}, nil
}

func (e *Encoder) Encode(event kernel.DomainEvent) ([]byte, error) {
	attributes := make(map[string]any, len(event.Attributes()))
	for k, v := range event.Attributes() {
		attributes[k] = v
	}

	native := map[string]any{
		"id":           event.EventID().String(),
		"name":         event.EventName(),
		"aggregate_id": event.AggregateID(),
		"occurred_at":  event.OccurredAt().UTC().Truncate(time.Millisecond),
		"attributes":   attributes,
	}

	binary, err := e.codec.BinaryFromNative(nil, native)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s to avro binary: %w", event.EventName(), err)
	}
	return binary, nil
}

// Decode is the inverse of Encode, used by consumers and tests.
func (e *Encoder) Decode(binary []byte) (map[string]any, error) {
	native, _, err := e.codec.NativeFromBinary(binary)
	if err != nil {
		return nil, fmt.Errorf("failed to decode avro binary: %w", err)
	}
	record, ok := native.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("avro datum is %T, not a record", native)
	}
	return record, nil
}
