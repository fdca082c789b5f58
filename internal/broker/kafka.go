package broker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"signal-ingest-service/internal/failure"
	"signal-ingest-service/internal/worker"

	"github.com/segmentio/kafka-go"
)

// HeaderError is set on dead-lettered messages.
const HeaderError = "x-error"

type Reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaConfig struct {
	Brokers []string
	GroupID string
	// DeadLetterTopic is optional. When empty, failed messages are committed
	// and dropped.
	DeadLetterTopic string
}

// Kafka consumes a topic through a consumer group. Committing the offset is
// the ack; a failed message is dead-lettered and then committed.
type Kafka struct {
	newReader func(topic string) Reader
	deadLetter Writer
}

func NewKafka(cfg KafkaConfig) *Kafka {
	k := &Kafka{
		newReader: func(topic string) Reader {
			return kafka.NewReader(kafka.ReaderConfig{
				Brokers: cfg.Brokers,
				GroupID: cfg.GroupID,
				Topic:   topic,
			})
		},
	}
	if cfg.DeadLetterTopic != "" {
		k.deadLetter = kafka.NewWriter(kafka.WriterConfig{
			Brokers: cfg.Brokers,
			Topic:   cfg.DeadLetterTopic,
		})
	}
	return k
}

func (k *Kafka) Consume(ctx context.Context, topic string, handler Handler) error {
	reader := k.newReader(topic)
	defer reader.Close()

	slog.InfoContext(ctx, "Consuming messages...", "topic", topic)
	return worker.New(worker.Config{
		Name: "kafka:" + topic,
		Processor: &recordProcessor{
			reader:     reader,
			deadLetter: k.deadLetter,
			handler:    handler,
		},
		Stop: stopConsuming,
	}).Run(ctx)
}

func (k *Kafka) Close(ctx context.Context) error {
	if k.deadLetter == nil {
		return nil
	}
	slog.InfoContext(ctx, "Closing dead-letter writer...")
	return k.deadLetter.Close()
}

type recordProcessor struct {
	reader     Reader
	deadLetter Writer
	handler    Handler
}

func (p *recordProcessor) ProcessMessage(ctx context.Context) error {
	const fn = "Kafka:ProcessMessage"
	m, err := p.reader.FetchMessage(ctx)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return failure.New(failure.KindMissingContent, fn, "reader closed", err)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return failure.New(failure.KindConsumer, fn, "fetch", err)
	}

	msg := Message{
		ID:         fmt.Sprintf("%s/%d/%d", m.Topic, m.Partition, m.Offset),
		Body:       m.Value,
		RoutingKey: string(m.Key),
		Timestamp:  m.Time,
		Headers:    make(map[string]any, len(m.Headers)),
	}
	for _, h := range m.Headers {
		msg.Headers[h.Key] = string(h.Value)
	}

	ctx = context.WithoutCancel(ctx)
	herr := p.handler.HandleMessage(ctx, msg)
	if herr != nil && p.deadLetter != nil {
		dead := kafka.Message{
			Key:     m.Key,
			Value:   m.Value,
			Headers: append(append([]kafka.Header{}, m.Headers...), kafka.Header{Key: HeaderError, Value: []byte(herr.Error())}),
		}
		if err := p.deadLetter.WriteMessages(ctx, dead); err != nil {
			return failure.New(failure.KindConsumer, fn, "dead-letter", errors.Join(herr, err))
		}
	}
	if err := p.reader.CommitMessages(ctx, m); err != nil {
		return failure.New(failure.KindConsumer, fn, "commit", errors.Join(herr, err))
	}
	if herr != nil {
		return failure.New(failure.KindConsumer, fn, "message rejected", herr)
	}
	return nil
}
