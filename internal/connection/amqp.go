// Package connection owns the long-lived broker connections. A manager dials
// with a bounded retry, declares topology once, and then exposes a ready
// signal plus the shared channel.
package connection

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"signal-ingest-service/internal/failure"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Channel is the subset of *amqp.Channel used by the service.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	QueueBind(name, key, exchange string, noWait bool, args amqp.Table) error
	Qos(prefetchCount, prefetchSize int, global bool) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type Connection interface {
	Channel() (Channel, error)
	Close() error
}

type Dialer func(url string) (Connection, error)

type amqpConnection struct {
	*amqp.Connection
}

func (c amqpConnection) Channel() (Channel, error) {
	ch, err := c.Connection.Channel()
	if err != nil {
		return nil, err
	}
	return ch, nil
}

func DialAMQP(url string) (Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	return amqpConnection{conn}, nil
}

// DeadLetterQueue is the queue bound to the dead-letter exchange for queue.
func DeadLetterQueue(queue string) string {
	return queue + ".dlq"
}

type Config struct {
	URL          string
	Exchange     string
	ExchangeKind string
	Queue        string
	RoutingKey   string
	// DeadLetterExchange is optional. When empty, nacked messages are dropped.
	DeadLetterExchange string
	Attempts           int
	Interval           time.Duration
	Dialer             Dialer
}

type Manager struct {
	*readiness
	cfg  Config
	dial Dialer

	mu      sync.RWMutex
	conn    Connection
	channel Channel
}

func New(cfg Config) *Manager {
	dial := cfg.Dialer
	if dial == nil {
		dial = DialAMQP
	}
	if cfg.ExchangeKind == "" {
		cfg.ExchangeKind = amqp.ExchangeTopic
	}
	return &Manager{
		readiness: newReadiness(),
		cfg:       cfg,
		dial:      dial,
	}
}

// Connect blocks until the connection is up or attempts are exhausted. The
// returned error is fatal: without the broker the process has nothing to do.
func (m *Manager) Connect(ctx context.Context) error {
	const fn = "Manager:Connect"
	attempts, err := retry(ctx, "amqp", m.cfg.Attempts, m.cfg.Interval, m.connect)
	if err != nil {
		err = failure.New(failure.KindConnection, fn, fmt.Sprintf("broker unreachable after %d attempts", attempts), err)
		m.markFailed(err)
		return err
	}
	slog.InfoContext(ctx, "Broker connection established",
		"exchange", m.cfg.Exchange,
		"queue", m.cfg.Queue,
		"routing_key", m.cfg.RoutingKey,
		"attempts", attempts,
	)
	m.markReady()
	return nil
}

func (m *Manager) connect() error {
	conn, err := m.dial(m.cfg.URL)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("open channel: %w", err)
	}
	if err := m.declareTopology(ch); err != nil {
		ch.Close()
		conn.Close()
		return err
	}

	m.mu.Lock()
	m.conn, m.channel = conn, ch
	m.mu.Unlock()
	return nil
}

// All declarations are idempotent; repeating them against an existing
// topology with the same flags is a no-op on the broker.
func (m *Manager) declareTopology(ch Channel) error {
	var queueArgs amqp.Table
	if dlx := m.cfg.DeadLetterExchange; dlx != "" {
		if err := ch.ExchangeDeclare(dlx, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
			return fmt.Errorf("declare dead-letter exchange: %w", err)
		}
		dlq := DeadLetterQueue(m.cfg.Queue)
		if _, err := ch.QueueDeclare(dlq, true, false, false, false, nil); err != nil {
			return fmt.Errorf("declare dead-letter queue: %w", err)
		}
		if err := ch.QueueBind(dlq, "#", dlx, false, nil); err != nil {
			return fmt.Errorf("bind dead-letter queue: %w", err)
		}
		queueArgs = amqp.Table{"x-dead-letter-exchange": dlx}
	}

	if err := ch.ExchangeDeclare(m.cfg.Exchange, m.cfg.ExchangeKind, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}
	if _, err := ch.QueueDeclare(m.cfg.Queue, true, false, false, false, queueArgs); err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}
	if err := ch.QueueBind(m.cfg.Queue, m.cfg.RoutingKey, m.cfg.Exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}

// Channel returns the shared channel, or nil before Ready is closed.
func (m *Manager) Channel() Channel {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.channel
}

func (m *Manager) Close(ctx context.Context) error {
	slog.InfoContext(ctx, "Closing broker connection...")
	m.mu.Lock()
	defer m.mu.Unlock()

	var errs []error
	if m.channel != nil {
		if err := m.channel.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, err)
		}
	}
	if m.conn != nil {
		if err := m.conn.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, err)
		}
	}
	m.channel, m.conn = nil, nil
	return errors.Join(errs...)
}
