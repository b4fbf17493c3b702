package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/couchcryptid/ferry-risk-service/internal/config"
	"github.com/couchcryptid/ferry-risk-service/internal/domain"
)

// Publisher produces assessments to a Kafka topic.
// It implements pipeline.Publisher.
type Publisher struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewPublisher creates a Kafka producer for the configured sink topic.
func NewPublisher(cfg *config.Config, logger *slog.Logger) *Publisher {
	w := &kafkago.Writer{
		Addr:                   kafkago.TCP(cfg.KafkaBrokers...),
		Topic:                  cfg.KafkaSinkTopic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: true,
	}
	return &Publisher{writer: w, logger: logger}
}

// Publish writes one assessment. Messages for the same departure share a key
// and therefore a partition.
func (p *Publisher) Publish(ctx context.Context, a domain.Assessment) error {
	msg, err := serializeToMessage(a)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write assessment: %w", err)
	}
	p.logger.Debug("assessment published", "topic", p.writer.Topic, "key", string(msg.Key))
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// messageKey identifies a departure, e.g. "2026-10-19T06:10".
func messageKey(a domain.Assessment) string {
	return a.Date + "T" + a.DepartLocalTime
}

// serializeToMessage marshals an Assessment into a Kafka message.
func serializeToMessage(a domain.Assessment) (kafkago.Message, error) {
	data, err := json.Marshal(a)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize assessment: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(messageKey(a)),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "risk_band", Value: []byte(a.RiskBand)},
			{Key: "assessed_at", Value: []byte(a.AssessedAt.Format(time.RFC3339))},
		},
	}, nil
}
