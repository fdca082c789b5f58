package connection

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"time"

	"signal-ingest-service/internal/failure"

	"github.com/cenkalti/backoff/v4"
	"github.com/segmentio/kafka-go"
)

// KafkaConn is the subset of *kafka.Conn used to prepare topics.
type KafkaConn interface {
	Controller() (kafka.Broker, error)
	CreateTopics(topics ...kafka.TopicConfig) error
	Close() error
}

type KafkaDialer func(ctx context.Context, address string) (KafkaConn, error)

func DialKafka(ctx context.Context, address string) (KafkaConn, error) {
	conn, err := kafka.DefaultDialer.DialContext(ctx, "tcp", address)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

type KafkaConfig struct {
	Brokers         []string
	Topic           string
	DeadLetterTopic string
	Partitions      int
	Replication     int
	Attempts        int
	Interval        time.Duration
	Dialer          KafkaDialer
}

// KafkaManager gives the Kafka broker the same readiness contract as the
// AMQP manager. kafka-go readers hold their own connections, so the manager
// only checks reachability and makes sure the topics exist.
type KafkaManager struct {
	*readiness
	cfg  KafkaConfig
	dial KafkaDialer
}

func NewKafka(cfg KafkaConfig) *KafkaManager {
	dial := cfg.Dialer
	if dial == nil {
		dial = DialKafka
	}
	if cfg.Partitions < 1 {
		cfg.Partitions = 1
	}
	if cfg.Replication < 1 {
		cfg.Replication = 1
	}
	return &KafkaManager{
		readiness: newReadiness(),
		cfg:       cfg,
		dial:      dial,
	}
}

func (m *KafkaManager) Connect(ctx context.Context) error {
	const fn = "KafkaManager:Connect"
	attempts, err := retry(ctx, "kafka", m.cfg.Attempts, m.cfg.Interval, func() error {
		return m.ensureTopics(ctx)
	})
	if err != nil {
		err = failure.New(failure.KindConnection, fn, fmt.Sprintf("broker unreachable after %d attempts", attempts), err)
		m.markFailed(err)
		return err
	}
	slog.InfoContext(ctx, "Broker connection established",
		"brokers", m.cfg.Brokers,
		"topic", m.cfg.Topic,
		"attempts", attempts,
	)
	m.markReady()
	return nil
}

func (m *KafkaManager) ensureTopics(ctx context.Context) error {
	if len(m.cfg.Brokers) == 0 {
		return backoff.Permanent(errors.New("no brokers configured"))
	}

	var conn KafkaConn
	var errs []error
	for _, addr := range m.cfg.Brokers {
		c, err := m.dial(ctx, addr)
		if err == nil {
			conn = c
			break
		}
		errs = append(errs, fmt.Errorf("dial %s: %w", addr, err))
	}
	if conn == nil {
		return errors.Join(errs...)
	}
	defer conn.Close()

	controller, err := conn.Controller()
	if err != nil {
		return fmt.Errorf("find controller: %w", err)
	}
	ctrl, err := m.dial(ctx, net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	if err != nil {
		return fmt.Errorf("dial controller: %w", err)
	}
	defer ctrl.Close()

	topics := []kafka.TopicConfig{m.topicConfig(m.cfg.Topic)}
	if m.cfg.DeadLetterTopic != "" {
		topics = append(topics, m.topicConfig(m.cfg.DeadLetterTopic))
	}
	if err := ctrl.CreateTopics(topics...); err != nil && !errors.Is(err, kafka.TopicAlreadyExists) {
		return fmt.Errorf("create topics: %w", err)
	}
	return nil
}

func (m *KafkaManager) topicConfig(topic string) kafka.TopicConfig {
	return kafka.TopicConfig{
		Topic:             topic,
		NumPartitions:     m.cfg.Partitions,
		ReplicationFactor: m.cfg.Replication,
	}
}
