// Package kafka implements the event publisher port on a Kafka topic.
// Events are JSON-encoded and keyed by event name, so consumers interested
// in one kind of mutation read a single partition stream per name.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"

	"freightbid/internal/core/ports"

	"github.com/confluentinc/confluent-kafka-go/kafka"
)

// Publisher delivers marketplace events to a Kafka topic. Publishing is
// fire-and-forget from the caller's perspective: handlers publish after
// commit, and a delivery failure is logged, not propagated into the
// committed mutation.
type Publisher struct {
	producer *kafka.Producer
	topic    string
	log      *slog.Logger
}

// NewPublisher creates a publisher connected to the given broker.
func NewPublisher(broker, topic string, log *slog.Logger) (*Publisher, error) {
	producer, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": broker,
		"acks":              "all",
	})
	if err != nil {
		return nil, err
	}

	p := &Publisher{
		producer: producer,
		topic:    topic,
		log:      log,
	}
	go p.drainDeliveryReports()
	return p, nil
}

// Publish enqueues one event. Serialization failures and a full local queue
// surface as errors; broker-side delivery failures arrive asynchronously and
// are logged by the delivery report drain.
func (p *Publisher) Publish(_ context.Context, event ports.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		p.log.Error("marshal event", "name", event.Name, "err", err)
		return err
	}

	err = p.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &p.topic, Partition: kafka.PartitionAny},
		Key:            []byte(event.Name),
		Value:          payload,
	}, nil)
	if err != nil {
		p.log.Error("produce event", "name", event.Name, "err", err)
		return err
	}

	return nil
}

// Close flushes pending messages and releases the producer.
func (p *Publisher) Close() {
	p.producer.Flush(5000)
	p.producer.Close()
}

func (p *Publisher) drainDeliveryReports() {
	for e := range p.producer.Events() {
		if m, ok := e.(*kafka.Message); ok && m.TopicPartition.Error != nil {
			p.log.Error("event delivery failed", "err", m.TopicPartition.Error)
		}
	}
}
