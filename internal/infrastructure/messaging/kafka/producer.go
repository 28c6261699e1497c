package kafka

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/turtacn/FilingDesk/internal/config"
	"github.com/turtacn/FilingDesk/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/FilingDesk/pkg/errors"
)

// writerInterface abstracts kafka.Writer for testing.
type writerInterface interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer publishes domain events to Kafka.  It implements the domain's
// EventPublisher interface: events are wrapped in the shared envelope and
// keyed by aggregate identifier so all events for one filing land on one
// partition in order.
type Producer struct {
	writer writerInterface
	logger logging.Logger
	closed atomic.Bool

	messagesSent   atomic.Int64
	messagesFailed atomic.Int64
}

// NewProducer constructs a producer from configuration.
func NewProducer(cfg config.KafkaConfig, log logging.Logger) *Producer {
	batchTimeout := cfg.BatchTimeout
	if batchTimeout == 0 {
		batchTimeout = time.Second
	}
	maxAttempts := cfg.ProducerRetries + 1
	if maxAttempts < 1 {
		maxAttempts = 3
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.Hash{},
		MaxAttempts:  maxAttempts,
		BatchTimeout: batchTimeout,
		RequiredAcks: kafka.RequireAll,
		WriteTimeout: 10 * time.Second,
	}

	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Producer{writer: writer, logger: log.Named("kafka_producer")}
}

// newProducerWithWriter injects a writer, for tests.
func newProducerWithWriter(w writerInterface, log logging.Logger) *Producer {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Producer{writer: w, logger: log}
}

// Publish wraps the event in an envelope and writes it to the topic.
func (p *Producer) Publish(ctx context.Context, topic string, event interface{}) error {
	if p.closed.Load() {
		return errors.New(errors.ErrCodeInternal, "kafka producer closed")
	}
	if !IsKnownTopic(topic) {
		return errors.New(errors.ErrCodeValidation, "unknown topic: "+topic)
	}

	env, err := WrapEvent(topic, event)
	if err != nil {
		return err
	}
	value, err := json.Marshal(env)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeSerialization, "marshalling envelope")
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(env.AggregateID),
		Value: value,
		Time:  env.OccurredAt,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.messagesFailed.Add(1)
		return errors.Wrap(err, errors.ErrCodeExternalService, "publishing to "+topic)
	}

	p.messagesSent.Add(1)
	p.logger.Debug("event published",
		logging.String("topic", topic),
		logging.String("aggregate_id", env.AggregateID))
	return nil
}

// Close flushes and closes the writer; safe to call more than once.
func (p *Producer) Close() error {
	if !p.closed.CompareAndSwap(false, true) {
		return nil
	}
	err := p.writer.Close()
	p.logger.Info("kafka producer closed",
		logging.Int64("sent", p.messagesSent.Load()),
		logging.Int64("failed", p.messagesFailed.Load()))
	return err
}
