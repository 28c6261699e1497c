package kafka

import (
	"context"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/turtacn/FilingDesk/internal/config"
	"github.com/turtacn/FilingDesk/internal/infrastructure/monitoring/logging"
)

// Handler processes one decoded event envelope.  Returning an error leaves
// the message uncommitted so the group redelivers it.
type Handler func(ctx context.Context, env *EventEnvelope) error

// Consumer runs one group reader per subscribed topic and dispatches decoded
// envelopes to the registered handler.
type Consumer struct {
	cfg      config.KafkaConfig
	logger   logging.Logger
	handlers map[string]Handler

	mu      sync.Mutex
	readers []*kafka.Reader
	wg      sync.WaitGroup
}

// NewConsumer constructs a consumer; call Subscribe before Run.
func NewConsumer(cfg config.KafkaConfig, log logging.Logger) *Consumer {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Consumer{
		cfg:      cfg,
		logger:   log.Named("kafka_consumer"),
		handlers: map[string]Handler{},
	}
}

// Subscribe registers the handler for a topic.  Later registrations replace
// earlier ones; Subscribe must not be called after Run.
func (c *Consumer) Subscribe(topic string, h Handler) {
	c.handlers[topic] = h
}

// Run consumes until ctx is cancelled, then drains and closes the readers.
func (c *Consumer) Run(ctx context.Context) {
	c.mu.Lock()
	for topic, handler := range c.handlers {
		reader := kafka.NewReader(kafka.ReaderConfig{
			Brokers:        c.cfg.Brokers,
			GroupID:        c.cfg.GroupID,
			Topic:          topic,
			StartOffset:    startOffset(c.cfg.AutoOffsetReset),
			CommitInterval: time.Second,
		})
		c.readers = append(c.readers, reader)

		c.wg.Add(1)
		go c.consume(ctx, reader, topic, handler)
	}
	c.mu.Unlock()

	<-ctx.Done()
	c.close()
	c.wg.Wait()
}

func (c *Consumer) consume(ctx context.Context, reader *kafka.Reader, topic string, handler Handler) {
	defer c.wg.Done()

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			c.logger.Warn("fetch failed", logging.String("topic", topic), logging.Err(err))
			continue
		}

		env, err := UnwrapEnvelope(msg.Value)
		if err != nil {
			// A malformed envelope will never parse; commit it to move on.
			c.logger.Error("dropping malformed envelope",
				logging.String("topic", topic), logging.Err(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := handler(ctx, env); err != nil {
			c.logger.Warn("handler failed, message will be redelivered",
				logging.String("topic", topic),
				logging.String("event_id", env.EventID),
				logging.Err(err))
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil && ctx.Err() == nil {
			c.logger.Warn("commit failed", logging.String("topic", topic), logging.Err(err))
		}
	}
}

func (c *Consumer) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, r := range c.readers {
		if err := r.Close(); err != nil {
			c.logger.Warn("reader close failed", logging.Err(err))
		}
	}
	c.readers = nil
}

func startOffset(autoOffsetReset string) int64 {
	if autoOffsetReset == "latest" {
		return kafka.LastOffset
	}
	return kafka.FirstOffset
}
