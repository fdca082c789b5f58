package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"signal-ingest-service/internal/api"
	"signal-ingest-service/internal/broker"
	"signal-ingest-service/internal/config"
	"signal-ingest-service/internal/connection"
	"signal-ingest-service/internal/consumer"
	"signal-ingest-service/internal/db"
	"signal-ingest-service/internal/processors/ingest"

	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// brokerSide is what main needs from either broker setup.
type brokerSide struct {
	connect   func(ctx context.Context) error
	readiness consumer.Readiness
	newBroker func() broker.Broker
	queue     string
	close     func(ctx context.Context) error
}

func main() {
	if err := run(); err != nil {
		slog.Error("Service stopped with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return err
	}
	level, _ := cfg.SlogLevel()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.InfoContext(ctx, "Starting service...", "broker", cfg.Broker, "http_addr", cfg.HTTPAddr)

	store, err := db.Init(ctx, db.Config{
		ConnString:     cfg.Database.URL,
		MigrationsPath: cfg.Database.MigrationsPath,
	})
	if err != nil {
		return err
	}
	defer store.Close()

	side := newBrokerSide(cfg)
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := side.close(closeCtx); err != nil {
			slog.ErrorContext(closeCtx, "Failed to close broker", "error", err)
		}
	}()

	c := consumer.New(consumer.Config{
		Name:      "signals",
		Queue:     side.queue,
		Readiness: side.readiness,
		NewBroker: side.newBroker,
		Handler: ingest.New(ingest.Config{
			Store:        store,
			Timeout:      cfg.Consumer.HandlerTimeout,
			UseMessageID: cfg.Consumer.IdempotencyFromMessageID,
		}),
		StartupDelay: cfg.Consumer.StartupDelay,
	})

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           api.New(api.Config{DB: store, Consumer: c}).Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	// A shutdown signal during connect is not a failure.
	g.Go(func() error {
		if err := side.connect(gctx); err != nil && ctx.Err() == nil {
			return err
		}
		return nil
	})
	g.Go(func() error {
		if err := c.Run(gctx); err != nil && ctx.Err() == nil {
			return err
		}
		return nil
	})
	g.Go(func() error {
		slog.InfoContext(gctx, "HTTP server listening", "addr", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.InfoContext(gctx, "Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func newBrokerSide(cfg config.Config) brokerSide {
	switch cfg.Broker {
	case config.BrokerKafka:
		mgr := connection.NewKafka(connection.KafkaConfig{
			Brokers:         cfg.Kafka.Brokers,
			Topic:           cfg.Kafka.Topic,
			DeadLetterTopic: cfg.Kafka.DeadLetterTopic,
			Attempts:        cfg.Connect.Attempts,
			Interval:        cfg.Connect.Interval,
		})
		k := broker.NewKafka(broker.KafkaConfig{
			Brokers:         cfg.Kafka.Brokers,
			GroupID:         cfg.Kafka.GroupID,
			DeadLetterTopic: cfg.Kafka.DeadLetterTopic,
		})
		return brokerSide{
			connect:   mgr.Connect,
			readiness: mgr,
			newBroker: func() broker.Broker { return k },
			queue:     cfg.Kafka.Topic,
			close:     k.Close,
		}
	default:
		mgr := connection.New(connection.Config{
			URL:                cfg.AMQP.URL,
			Exchange:           cfg.AMQP.Exchange,
			ExchangeKind:       cfg.AMQP.ExchangeKind,
			Queue:              cfg.AMQP.Queue,
			RoutingKey:         cfg.AMQP.RoutingKey,
			DeadLetterExchange: cfg.AMQP.DeadLetterExchange,
			Attempts:           cfg.Connect.Attempts,
			Interval:           cfg.Connect.Interval,
		})
		return brokerSide{
			connect:   mgr.Connect,
			readiness: mgr,
			newBroker: func() broker.Broker {
				return broker.NewRabbitMQ(broker.RabbitMQConfig{
					Channel:  mgr.Channel(),
					Prefetch: cfg.AMQP.Prefetch,
				})
			},
			queue: cfg.AMQP.Queue,
			close: mgr.Close,
		}
	}
}
