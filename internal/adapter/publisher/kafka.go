package publisher

import (
	"context"
	"strconv"
	"time"

	"bankloan-backend/internal/domain/outbox"

	"github.com/segmentio/kafka-go"
)

var _ outbox.Publisher = (*Kafka)(nil)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Kafka publishes outbox events to "<prefix><event topic>", keyed by aggregate
// id so events for one contract stay ordered within a partition.
type Kafka struct {
	w      messageWriter
	prefix string
}

func NewKafka(brokers []string, topicPrefix string) *Kafka {
	return &Kafka{
		w: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireAll,
			AllowAutoTopicCreation: true,
			WriteTimeout:           10 * time.Second,
		},
		prefix: topicPrefix,
	}
}

func (k *Kafka) Publish(ctx context.Context, e outbox.Event) error {
	return k.w.WriteMessages(ctx, k.toMessage(e))
}

func (k *Kafka) Close() error { return k.w.Close() }

func (k *Kafka) toMessage(e outbox.Event) kafka.Message {
	return kafka.Message{
		Topic: k.prefix + e.Topic,
		Key:   []byte(e.AggregateID),
		Value: e.Payload,
		Time:  e.CreatedAt,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(e.EventID)},
			{Key: "attempt", Value: []byte(strconv.Itoa(e.Attempts + 1))},
		},
	}
}
