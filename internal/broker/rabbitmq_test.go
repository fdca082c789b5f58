package broker

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"signal-ingest-service/internal/failure"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	mock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testQueue = "development/signal/read"

func delivery(ack amqp.Acknowledger, tag uint64, body string) amqp.Delivery {
	return amqp.Delivery{
		Acknowledger: ack,
		DeliveryTag:  tag,
		MessageId:    "msg-" + strconv.FormatUint(tag, 10),
		RoutingKey:   "sample_routing_key",
		Body:         []byte(body),
	}
}

func closedDeliveries(ds ...amqp.Delivery) <-chan amqp.Delivery {
	ch := make(chan amqp.Delivery, len(ds))
	for _, d := range ds {
		ch <- d
	}
	close(ch)
	return ch
}

func Test_RabbitMQConsume(t *testing.T) {
	cases := []struct {
		name          string
		setupChannel  func(ack amqp.Acknowledger) AMQPChannel
		setupAck      func() *MockAcknowledger
		setupHandler  func() Handler
		expectedKind  failure.Kind
		expectedCause error
	}{
		{
			name: "ack on success",
			setupAck: func() *MockAcknowledger {
				a := NewMockAcknowledger(t)
				a.EXPECT().Ack(uint64(1), false).Return(nil).Once()
				return a
			},
			setupChannel: func(ack amqp.Acknowledger) AMQPChannel {
				ch := NewMockAMQPChannel(t)
				ch.EXPECT().Qos(1, 0, false).Return(nil)
				ch.EXPECT().Consume(testQueue, "", false, false, false, false, amqp.Table(nil)).
					Return(closedDeliveries(delivery(ack, 1, `{"dev":{}}`)), nil)
				return ch
			},
			setupHandler: func() Handler {
				h := NewMockHandler(t)
				h.EXPECT().HandleMessage(mock.Anything, Message{
					ID:         "msg-1",
					Body:       []byte(`{"dev":{}}`),
					RoutingKey: "sample_routing_key",
				}).Return(nil).Once()
				return h
			},
			expectedKind: failure.KindMissingContent,
		},
		{
			name: "nack without requeue on handler failure",
			setupAck: func() *MockAcknowledger {
				a := NewMockAcknowledger(t)
				a.EXPECT().Nack(uint64(1), false, false).Return(nil).Once()
				return a
			},
			setupChannel: func(ack amqp.Acknowledger) AMQPChannel {
				ch := NewMockAMQPChannel(t)
				ch.EXPECT().Qos(1, 0, false).Return(nil)
				ch.EXPECT().Consume(testQueue, "", false, false, false, false, amqp.Table(nil)).
					Return(closedDeliveries(delivery(ack, 1, `{}`)), nil)
				return ch
			},
			setupHandler: func() Handler {
				h := NewMockHandler(t)
				h.EXPECT().HandleMessage(mock.Anything, mock.Anything).
					Return(failure.New(failure.KindValidation, "Handler:HandleMessage", "missing content", nil)).Once()
				return h
			},
			expectedKind: failure.KindMissingContent,
		},
		{
			name: "failures do not stop later deliveries",
			setupAck: func() *MockAcknowledger {
				a := NewMockAcknowledger(t)
				a.EXPECT().Nack(uint64(1), false, false).Return(nil).Once()
				a.EXPECT().Ack(uint64(2), false).Return(nil).Once()
				a.EXPECT().Ack(uint64(3), false).Return(errors.New("channel closed")).Once()
				return a
			},
			setupChannel: func(ack amqp.Acknowledger) AMQPChannel {
				ch := NewMockAMQPChannel(t)
				ch.EXPECT().Qos(1, 0, false).Return(nil)
				ch.EXPECT().Consume(testQueue, "", false, false, false, false, amqp.Table(nil)).
					Return(closedDeliveries(
						delivery(ack, 1, `bad`),
						delivery(ack, 2, `good`),
						delivery(ack, 3, `good`),
					), nil)
				return ch
			},
			setupHandler: func() Handler {
				return HandlerFunc(func(_ context.Context, msg Message) error {
					if string(msg.Body) == "bad" {
						return errors.New("boom")
					}
					return nil
				})
			},
			expectedKind: failure.KindMissingContent,
		},
		{
			name:     "prefetch failure",
			setupAck: func() *MockAcknowledger { return NewMockAcknowledger(t) },
			setupChannel: func(amqp.Acknowledger) AMQPChannel {
				ch := NewMockAMQPChannel(t)
				ch.EXPECT().Qos(1, 0, false).Return(amqp.ErrClosed)
				return ch
			},
			setupHandler:  func() Handler { return NewMockHandler(t) },
			expectedKind:  failure.KindConsumer,
			expectedCause: amqp.ErrClosed,
		},
		{
			name:     "registration failure",
			setupAck: func() *MockAcknowledger { return NewMockAcknowledger(t) },
			setupChannel: func(amqp.Acknowledger) AMQPChannel {
				ch := NewMockAMQPChannel(t)
				ch.EXPECT().Qos(1, 0, false).Return(nil)
				ch.EXPECT().Consume(testQueue, "", false, false, false, false, amqp.Table(nil)).
					Return(nil, amqp.ErrClosed)
				return ch
			},
			setupHandler:  func() Handler { return NewMockHandler(t) },
			expectedKind:  failure.KindConsumer,
			expectedCause: amqp.ErrClosed,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			ack := tt.setupAck()
			r := NewRabbitMQ(RabbitMQConfig{Channel: tt.setupChannel(ack)})

			err := r.Consume(context.Background(), testQueue, tt.setupHandler())
			require.Error(t, err)
			assert.Equal(t, tt.expectedKind, failure.KindOf(err))
			if tt.expectedCause != nil {
				assert.ErrorIs(t, err, tt.expectedCause)
			}
		})
	}
}

func Test_RabbitMQConsume_StopsOnContextDone(t *testing.T) {
	deliveries := make(chan amqp.Delivery)
	ch := NewMockAMQPChannel(t)
	ch.EXPECT().Qos(1, 0, false).Return(nil)
	ch.EXPECT().Consume(testQueue, "signal-consumer", false, false, false, false, amqp.Table(nil)).
		Return((<-chan amqp.Delivery)(deliveries), nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		r := NewRabbitMQ(RabbitMQConfig{Channel: ch, ConsumerTag: "signal-consumer"})
		done <- r.Consume(ctx, testQueue, NewMockHandler(t))
	}()
	cancel()
	assert.NoError(t, <-done)
}

func Test_settle(t *testing.T) {
	handlerErr := failure.New(failure.KindPersistence, "Handler:HandleMessage", "", errors.New("timeout"))

	cases := []struct {
		name        string
		handlerErr  error
		setupAck    func() *MockAcknowledger
		expectedErr error
	}{
		{
			name: "success acks once",
			setupAck: func() *MockAcknowledger {
				a := NewMockAcknowledger(t)
				a.EXPECT().Ack(uint64(7), false).Return(nil).Once()
				return a
			},
		},
		{
			name:       "failure nacks once and keeps the cause",
			handlerErr: handlerErr,
			setupAck: func() *MockAcknowledger {
				a := NewMockAcknowledger(t)
				a.EXPECT().Nack(uint64(7), false, false).Return(nil).Once()
				return a
			},
			expectedErr: failure.ErrPersistence,
		},
		{
			name:       "nack transport failure",
			handlerErr: handlerErr,
			setupAck: func() *MockAcknowledger {
				a := NewMockAcknowledger(t)
				a.EXPECT().Nack(uint64(7), false, false).Return(amqp.ErrClosed).Once()
				return a
			},
			expectedErr: amqp.ErrClosed,
		},
		{
			name: "ack transport failure",
			setupAck: func() *MockAcknowledger {
				a := NewMockAcknowledger(t)
				a.EXPECT().Ack(uint64(7), false).Return(amqp.ErrClosed).Once()
				return a
			},
			expectedErr: amqp.ErrClosed,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			h := NewMockHandler(t)
			h.EXPECT().HandleMessage(mock.Anything, mock.Anything).Return(tt.handlerErr).Once()
			p := &deliveryProcessor{handler: h}

			err := p.settle(context.Background(), delivery(tt.setupAck(), 7, `{}`))
			if tt.expectedErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, failure.ErrConsumer)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}
