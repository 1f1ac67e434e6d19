// Command consumer tails the lifecycle events topic and prints every event.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Devadharshani13/SmartPlate/internal/config"
	"github.com/Devadharshani13/SmartPlate/internal/lifecycle"
	"github.com/Devadharshani13/SmartPlate/internal/logger"
)

const groupID = "smartplate-event-tail"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		logger.New("info").Fatal("failed to load config", zap.Error(err))
	}
	log := logger.New(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Kafka.Brokers,
		GroupID:        groupID,
		Topic:          cfg.Kafka.Topic,
		MinBytes:       10e3,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		MaxWait:        3 * time.Second,
	})
	defer func() {
		log.Info("closing kafka reader")
		if err := r.Close(); err != nil {
			log.Error("failed to close kafka reader", zap.Error(err))
		}
	}()

	log.Info("consumer connected", zap.String("topic", cfg.Kafka.Topic), zap.Strings("brokers", cfg.Kafka.Brokers))

	for {
		m, err := r.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("shutdown signal received, stopping consumer")
				return
			}
			log.Error("failed to read message", zap.Error(err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(5 * time.Second):
			}
			continue
		}

		var ev lifecycle.Event
		if err := json.Unmarshal(m.Value, &ev); err != nil {
			log.Warn("skipping undecodable event", zap.Int64("offset", m.Offset), zap.Error(err))
			continue
		}

		fmt.Printf("\n--- %s ---\n", ev.Type)
		fmt.Printf("Timestamp: %s\n", ev.Timestamp.Format(time.RFC3339))
		fmt.Printf("Partition: %d  Offset: %d\n", m.Partition, m.Offset)
		fmt.Printf("Subject:   %s\n", ev.Subject())
		if ev.NewStatus != "" {
			fmt.Printf("Status:    %s\n", ev.NewStatus)
		}
		fmt.Printf("Recipients: users=%v roles=%v\n", ev.Recipients.UserIDs, ev.Recipients.Roles)
	}
}
