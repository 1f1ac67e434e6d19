package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Devadharshani13/SmartPlate/internal/assignment"
	"github.com/Devadharshani13/SmartPlate/internal/cache"
	"github.com/Devadharshani13/SmartPlate/internal/config"
	"github.com/Devadharshani13/SmartPlate/internal/db"
	"github.com/Devadharshani13/SmartPlate/internal/kafka"
	"github.com/Devadharshani13/SmartPlate/internal/lifecycle"
	"github.com/Devadharshani13/SmartPlate/internal/logger"
	"github.com/Devadharshani13/SmartPlate/internal/mail"
	"github.com/Devadharshani13/SmartPlate/internal/notify"
	"github.com/Devadharshani13/SmartPlate/internal/photo"
	"github.com/Devadharshani13/SmartPlate/internal/presence"
	"github.com/Devadharshani13/SmartPlate/internal/repository/postgresql"
	"github.com/Devadharshani13/SmartPlate/internal/scheduler"
	"github.com/Devadharshani13/SmartPlate/internal/server"
	"github.com/Devadharshani13/SmartPlate/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("info").Fatal("failed to load config", zap.Error(err))
	}

	log := logger.New(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Error("smartplate stopped with error", zap.Error(err))
		os.Exit(1)
	}
	log.Info("smartplate gracefully stopped")
}

func run(cfg config.Config, log *zap.Logger) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	database, err := db.NewDb(ctx, cfg.Postgres.DSN())
	if err != nil {
		return err
	}
	defer database.Close()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() { _ = rdb.Close() }()
	if err := rdb.Ping(ctx).Err(); err != nil {
		// Assignment falls back to profile locations while Redis is away.
		log.Warn("redis is unreachable, volunteer presence is degraded", zap.Error(err))
	}

	requestRepo := postgresql.NewRequestRepo(database)
	userRepo := postgresql.NewUserRepo(database)
	auditRepo := postgresql.NewAuditRepo(database)
	outboxRepo := postgresql.NewOutboxTaskRepo()

	requestCache := cache.NewRequestCache(requestRepo, log.Named("cache"))
	if err := requestCache.LoadInitialData(ctx); err != nil {
		log.Warn("request cache starts cold", zap.Error(err))
	}

	volunteers := presence.NewStore(rdb, cfg.Redis.PresenceTTL)
	directory := storage.NewDirectory(userRepo, volunteers, assignment.Nearest{}, log.Named("directory"))
	trigger := scheduler.NewTrigger()

	var sender mail.Sender
	if cfg.Mail.Enabled() {
		ses, err := mail.NewSESSender(ctx, cfg.Mail, log.Named("ses"))
		if err != nil {
			return err
		}
		sender = ses
	} else {
		log.Info("ses is not configured, account emails are only logged")
		sender = mail.NewLogSender(log.Named("mail"))
	}
	notifier := mail.NewNotifier(sender, userRepo, log)

	st := storage.NewStorage(database, requestRepo, userRepo, auditRepo, outboxRepo, storage.Options{
		Engine:          lifecycle.NewEngine(loc),
		Directory:       directory,
		Cache:           requestCache,
		Presence:        volunteers,
		Logger:          log.Named("storage"),
		EventsTopic:     cfg.Kafka.Topic,
		OnCapacityFreed: trigger.Fire,
		Welcomer:        notifier,
	})

	hub := notify.NewHub(log)
	relay := kafka.EventHandler(requestCache, hub)

	var (
		producer  kafka.Producer
		consumers []*kafka.Consumer
	)
	if cfg.Kafka.Enabled {
		producer = kafka.NewKafkaProducer(cfg.Kafka.Brokers, log)
		consumers = append(consumers,
			kafka.NewConsumer(kafka.ConsumerConfig{
				Name:     "relay",
				Brokers:  cfg.Kafka.Brokers,
				Topic:    cfg.Kafka.Topic,
				DLQTopic: cfg.Kafka.DLQTopic,
				GroupID:  cfg.Kafka.GroupID,
			}, relay, log),
			kafka.NewConsumer(kafka.ConsumerConfig{
				Name:     "mailer",
				Brokers:  cfg.Kafka.Brokers,
				Topic:    cfg.Kafka.Topic,
				DLQTopic: cfg.Kafka.DLQTopic,
				GroupID:  cfg.Mail.GroupID,
			}, notifier.Handler(), log),
		)
	} else {
		producer = kafka.NewLocalProducer(kafka.Chain(relay, notifier.Handler()), log)
	}

	publisher := kafka.NewPublisher(database, outboxRepo, producer, kafka.PublisherConfig{
		PollInterval: cfg.Outbox.PollInterval,
		BatchSize:    cfg.Outbox.BatchSize,
		MaxAttempts:  cfg.Outbox.MaxAttempts,
	}, log)

	opts := server.Options{
		Addr:            cfg.Server.Addr,
		JWTSecret:       []byte(cfg.JWT.Secret),
		Hub:             hub,
		Logger:          log,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}
	if cfg.S3.Enabled() {
		uploader, err := photo.NewUploader(ctx, cfg.S3)
		if err != nil {
			return err
		}
		opts.Photos = uploader
	} else {
		log.Info("s3 is not configured, delivery photo uploads are disabled")
	}
	srv := server.New(st, opts)

	retrier := scheduler.NewRetrier(st, trigger, cfg.Assignment.RetryInterval, cfg.Assignment.BatchSize, log)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		publisher.Run(gctx)
		return nil
	})
	g.Go(func() error {
		return retrier.Run(gctx)
	})
	for _, c := range consumers {
		c := c
		g.Go(func() error {
			return c.Run(gctx)
		})
	}
	g.Go(func() error {
		return srv.Run(gctx)
	})

	err = g.Wait()
	publisher.Shutdown()
	for _, c := range consumers {
		if cerr := c.Close(); cerr != nil {
			log.Warn("failed to close event consumer", zap.Error(cerr))
		}
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
