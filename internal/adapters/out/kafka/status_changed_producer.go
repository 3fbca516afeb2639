// Package kafka publishes domain events to Kafka topics.
package kafka

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"shiptrack/internal/core/ports"
)

// StatusChangedProducer implements ports.EventPublisher on top of a Kafka
// topic. Messages are keyed by order id so all events for one shipment land
// in the same partition and keep their order.
type StatusChangedProducer struct {
	writer *kafka.Writer
}

// NewStatusChangedProducer creates a producer for the given broker address
// and topic.
func NewStatusChangedProducer(address, topic string) *StatusChangedProducer {
	return &StatusChangedProducer{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(address),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// PublishStatusChanged writes one status-changed event to the topic.
func (p *StatusChangedProducer) PublishStatusChanged(
	ctx context.Context, event ports.StatusChangedEvent,
) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: payload,
	})
}

// Close releases the underlying writer.
func (p *StatusChangedProducer) Close() error {
	return p.writer.Close()
}
