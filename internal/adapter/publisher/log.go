package publisher

import (
	"context"

	"bankloan-backend/internal/domain/outbox"

	"go.uber.org/zap"
)

var _ outbox.Publisher = (*Log)(nil)

// Log is the publisher used when no Kafka brokers are configured.
type Log struct{ log *zap.Logger }

func NewLog(log *zap.Logger) *Log { return &Log{log: log} }

func (l *Log) Publish(_ context.Context, e outbox.Event) error {
	l.log.Info("outbox event",
		zap.String("event_id", e.EventID),
		zap.String("topic", e.Topic),
		zap.String("aggregate_id", e.AggregateID),
		zap.ByteString("payload", e.Payload),
	)
	return nil
}
