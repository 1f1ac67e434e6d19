package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Devadharshani13/SmartPlate/internal/lifecycle"
	"github.com/Devadharshani13/SmartPlate/internal/metrics"
)

const maxRelayRetries = 3

// ErrMalformed marks messages that no retry can deliver.
var ErrMalformed = errors.New("malformed event")

var relayBackoff = func(attempt int) time.Duration {
	return time.Duration(attempt) * 500 * time.Millisecond
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

type ConsumerConfig struct {
	// Name labels the consumer in logs and metrics. Defaults to "relay".
	Name     string
	Brokers  []string
	Topic    string
	DLQTopic string
	// GroupID defaults to a fresh id per process, so every API instance sees every
	// event and can push it to its own websocket sessions.
	GroupID string
}

// Consumer relays events from the broker to a handler with at-least-once semantics.
// Offsets are committed after the handler succeeds or the message went to the DLQ.
type Consumer struct {
	name    string
	reader  messageReader
	dlq     messageWriter
	handler Handler
	logger  *zap.Logger
}

func NewConsumer(cfg ConsumerConfig, handler Handler, logger *zap.Logger) *Consumer {
	name := cfg.Name
	if name == "" {
		name = "relay"
	}
	groupID := cfg.GroupID
	if groupID == "" {
		groupID = "smartplate-" + name + "-" + uuid.NewString()
	}
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        cfg.Brokers,
		Topic:          cfg.Topic,
		GroupID:        groupID,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: 0,
		MaxWait:        time.Second,
		StartOffset:    kafkago.LastOffset,
	})
	dlq := &kafkago.Writer{
		Addr:                   kafkago.TCP(cfg.Brokers...),
		Topic:                  cfg.DLQTopic,
		Balancer:               &kafkago.LeastBytes{},
		RequiredAcks:           kafkago.RequireOne,
		AllowAutoTopicCreation: true,
	}
	logger.Info("event consumer initialized", zap.String("name", name), zap.String("topic", cfg.Topic), zap.String("group_id", groupID))
	return newConsumer(name, reader, dlq, handler, logger)
}

func newConsumer(name string, reader messageReader, dlq messageWriter, handler Handler, logger *zap.Logger) *Consumer {
	return &Consumer{name: name, reader: reader, dlq: dlq, handler: handler, logger: logger.Named(name)}
}

// Run blocks until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		m, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("fetch: %w", err)
		}

		if err := c.dispatch(ctx, m); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			c.logger.Warn("routed message to DLQ", zap.ByteString("key", m.Key), zap.Error(err))
		}

		if err := c.reader.CommitMessages(ctx, m); err != nil {
			c.logger.Warn("commit failed, message may be redelivered", zap.Error(err))
		}
	}
}

func (c *Consumer) Close() error {
	rerr := c.reader.Close()
	werr := c.dlq.Close()
	if rerr != nil {
		return rerr
	}
	return werr
}

func (c *Consumer) dispatch(ctx context.Context, m kafkago.Message) error {
	var lastErr error
	for attempt := 1; attempt <= maxRelayRetries; attempt++ {
		lastErr = c.handler(ctx, m.Key, m.Value)
		if lastErr == nil {
			metrics.RelayMessagesTotal.WithLabelValues(c.name, "delivered").Inc()
			return nil
		}
		if errors.Is(lastErr, ErrMalformed) {
			break
		}
		c.logger.Warn("relay attempt failed", zap.Int("attempt", attempt), zap.ByteString("key", m.Key), zap.Error(lastErr))

		if attempt < maxRelayRetries {
			metrics.RelayMessagesTotal.WithLabelValues(c.name, "retried").Inc()
			select {
			case <-time.After(relayBackoff(attempt)):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return c.sendToDLQ(ctx, m, lastErr)
}

func (c *Consumer) sendToDLQ(ctx context.Context, original kafkago.Message, reason error) error {
	err := c.dlq.WriteMessages(ctx, kafkago.Message{
		Key:   original.Key,
		Value: original.Value,
		Headers: []kafkago.Header{
			{Key: "error", Value: []byte(reason.Error())},
		},
	})
	if err != nil {
		c.logger.Error("could not write to DLQ", zap.Error(err))
		metrics.RelayMessagesTotal.WithLabelValues(c.name, "dlq_write_failed").Inc()
		return reason
	}
	metrics.RelayMessagesTotal.WithLabelValues(c.name, "dead_lettered").Inc()
	return reason
}

// RequestCache is the part of the request cache the relay invalidates.
type RequestCache interface {
	Delete(requestID string)
}

// EventSink fans an event out to connected sessions.
type EventSink interface {
	Publish(ev lifecycle.Event)
}

// EventHandler decodes lifecycle events, drops the cached copy of the request they
// touch and hands them to sink. Either dependency may be nil.
func EventHandler(cache RequestCache, sink EventSink) Handler {
	return func(_ context.Context, _ []byte, value []byte) error {
		var ev lifecycle.Event
		if err := json.Unmarshal(value, &ev); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		if ev.Type == "" || ev.Subject() == "" {
			return fmt.Errorf("%w: missing type or subject", ErrMalformed)
		}
		if cache != nil && ev.RequestID != "" {
			cache.Delete(ev.RequestID)
		}
		if sink != nil {
			sink.Publish(ev)
		}
		return nil
	}
}
