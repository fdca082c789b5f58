package broker

import (
	"context"
	"errors"
	"log/slog"

	"signal-ingest-service/internal/failure"
	"signal-ingest-service/internal/worker"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPChannel is the part of the shared channel the consumer needs.
type AMQPChannel interface {
	Qos(prefetchCount, prefetchSize int, global bool) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
}

type RabbitMQConfig struct {
	Channel     AMQPChannel
	Prefetch    int
	ConsumerTag string
}

type RabbitMQ struct {
	channel  AMQPChannel
	prefetch int
	tag      string
}

func NewRabbitMQ(cfg RabbitMQConfig) *RabbitMQ {
	prefetch := cfg.Prefetch
	if prefetch < 1 {
		prefetch = 1
	}
	return &RabbitMQ{
		channel:  cfg.Channel,
		prefetch: prefetch,
		tag:      cfg.ConsumerTag,
	}
}

func (r *RabbitMQ) Consume(ctx context.Context, queue string, handler Handler) error {
	const fn = "RabbitMQ:Consume"
	if err := r.channel.Qos(r.prefetch, 0, false); err != nil {
		return failure.New(failure.KindConsumer, fn, "set prefetch", err)
	}
	deliveries, err := r.channel.Consume(queue, r.tag, false, false, false, false, nil)
	if err != nil {
		return failure.New(failure.KindConsumer, fn, "register consumer", err)
	}
	slog.InfoContext(ctx, "Consuming messages...", "queue", queue, "prefetch", r.prefetch)

	return worker.New(worker.Config{
		Name: "rabbitmq:" + queue,
		Processor: &deliveryProcessor{
			deliveries: deliveries,
			handler:    handler,
		},
		Stop: stopConsuming,
	}).Run(ctx)
}

type deliveryProcessor struct {
	deliveries <-chan amqp.Delivery
	handler    Handler
}

func (p *deliveryProcessor) ProcessMessage(ctx context.Context) error {
	const fn = "RabbitMQ:ProcessMessage"
	select {
	case <-ctx.Done():
		return ctx.Err()
	case d, ok := <-p.deliveries:
		if !ok {
			return failure.New(failure.KindMissingContent, fn, "delivery channel closed", nil)
		}
		return p.settle(ctx, d)
	}
}

// settle hands the delivery to the handler and acks or nacks it exactly once.
func (p *deliveryProcessor) settle(ctx context.Context, d amqp.Delivery) error {
	const fn = "RabbitMQ:ProcessMessage"
	msg := Message{
		ID:         d.MessageId,
		Body:       d.Body,
		RoutingKey: d.RoutingKey,
		Timestamp:  d.Timestamp,
		Headers:    d.Headers,
	}

	// In-flight messages finish on shutdown; the handler timeout bounds them.
	if err := p.handler.HandleMessage(context.WithoutCancel(ctx), msg); err != nil {
		if nerr := d.Nack(false, false); nerr != nil {
			return failure.New(failure.KindConsumer, fn, "nack", errors.Join(err, nerr))
		}
		slog.DebugContext(ctx, "Message rejected", "delivery_tag", d.DeliveryTag, "message_id", d.MessageId)
		return failure.New(failure.KindConsumer, fn, "message rejected", err)
	}
	if err := d.Ack(false); err != nil {
		return failure.New(failure.KindConsumer, fn, "ack", err)
	}
	return nil
}
