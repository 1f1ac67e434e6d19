package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type Producer interface {
	SendMessage(ctx context.Context, topic string, key []byte, value []byte) error
	Close() error
}

// KafkaProducer writes to any topic through one writer. Messages with the same key land
// on the same partition, so events of one request stay ordered.
type KafkaProducer struct {
	writer *kafkago.Writer
	logger *zap.Logger
}

func NewKafkaProducer(brokers []string, logger *zap.Logger) *KafkaProducer {
	writer := &kafkago.Writer{
		Addr:                   kafkago.TCP(brokers...),
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: true,
		BatchTimeout:           10 * time.Millisecond,
	}
	logger.Info("kafka producer initialized", zap.Strings("brokers", brokers))
	return &KafkaProducer{writer: writer, logger: logger}
}

func (p *KafkaProducer) SendMessage(ctx context.Context, topic string, key []byte, value []byte) error {
	err := p.writer.WriteMessages(ctx, kafkago.Message{
		Topic: topic,
		Key:   key,
		Value: value,
		Time:  time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to write message to %s: %w", topic, err)
	}
	return nil
}

func (p *KafkaProducer) Close() error {
	p.logger.Info("closing kafka producer")
	return p.writer.Close()
}

// Handler receives relayed messages.
type Handler func(ctx context.Context, key, value []byte) error

// Chain runs every handler on each message, in order, and joins their errors.
func Chain(handlers ...Handler) Handler {
	return func(ctx context.Context, key, value []byte) error {
		var errs []error
		for _, h := range handlers {
			if err := h(ctx, key, value); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	}
}

// LocalProducer hands messages straight to a handler. It runs the relay in process when
// no broker is configured.
type LocalProducer struct {
	handler Handler
	logger  *zap.Logger
}

func NewLocalProducer(handler Handler, logger *zap.Logger) *LocalProducer {
	logger.Info("kafka disabled, relaying events in process")
	return &LocalProducer{handler: handler, logger: logger}
}

func (p *LocalProducer) SendMessage(ctx context.Context, topic string, key []byte, value []byte) error {
	if err := ctx.Err(); err != nil {
		p.logger.Warn("local relay cancelled", zap.String("topic", topic), zap.ByteString("key", key))
		return err
	}
	return p.handler(ctx, key, value)
}

func (p *LocalProducer) Close() error {
	return nil
}
