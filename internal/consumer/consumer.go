// Package consumer subscribes the signal handler once the broker is ready.
package consumer

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"signal-ingest-service/internal/broker"
	"signal-ingest-service/internal/failure"
)

type State int32

const (
	StateCreated State = iota
	StateSubscribing
	StateConsuming
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateSubscribing:
		return "subscribing"
	case StateConsuming:
		return "consuming"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Readiness is satisfied by the connection managers.
type Readiness interface {
	Ready() <-chan struct{}
	Failed() <-chan struct{}
	Err() error
}

type Config struct {
	Name      string
	Queue     string
	Readiness Readiness
	// NewBroker is called once the connection is ready.
	NewBroker    func() broker.Broker
	Handler      broker.Handler
	StartupDelay time.Duration
}

type Consumer struct {
	name         string
	queue        string
	readiness    Readiness
	newBroker    func() broker.Broker
	handler      broker.Handler
	startupDelay time.Duration
	state        atomic.Int32
}

func New(cfg Config) *Consumer {
	return &Consumer{
		name:         cfg.Name,
		queue:        cfg.Queue,
		readiness:    cfg.Readiness,
		newBroker:    cfg.NewBroker,
		handler:      cfg.Handler,
		startupDelay: cfg.StartupDelay,
	}
}

func (c *Consumer) State() State {
	return State(c.state.Load())
}

func (c *Consumer) Consuming() bool {
	return c.State() == StateConsuming
}

func (c *Consumer) setState(s State) {
	c.state.Store(int32(s))
}

// Run waits for the broker and consumes until ctx is done. Only a failed
// connection is returned; a subscription that ends for any other reason is
// logged and leaves the consumer stopped without resubscribing.
func (c *Consumer) Run(ctx context.Context) error {
	defer c.setState(StateStopped)

	slog.InfoContext(ctx, "Waiting for broker connection...", "consumer", c.name)
	select {
	case <-ctx.Done():
		return nil
	case <-c.readiness.Failed():
		err := c.readiness.Err()
		c.report(ctx, err)
		return err
	case <-c.readiness.Ready():
	}

	if c.startupDelay > 0 {
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(c.startupDelay):
		}
	}

	c.setState(StateSubscribing)
	b := c.newBroker()
	slog.InfoContext(ctx, "Subscribing...", "consumer", c.name, "queue", c.queue)

	c.setState(StateConsuming)
	if err := b.Consume(ctx, c.queue, c.handler); err != nil {
		c.report(ctx, err)
		return nil
	}
	slog.InfoContext(ctx, "Consumer stopped", "consumer", c.name)
	return nil
}

func (c *Consumer) report(ctx context.Context, err error) {
	kind := failure.KindOf(err)
	attrs := []any{"consumer", c.name, "queue", c.queue, "kind", kind.String(), "error", err}
	switch kind {
	case failure.KindMissingContent:
		slog.ErrorContext(ctx, "Subscription ended: missing content", attrs...)
	case failure.KindConsumer:
		slog.ErrorContext(ctx, "Message consumer error", attrs...)
	case failure.KindConnection:
		slog.ErrorContext(ctx, "Broker connection failed", attrs...)
	default:
		slog.ErrorContext(ctx, "Unexpected error while consuming", attrs...)
	}
}
