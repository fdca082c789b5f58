package ingest

import (
	"context"
	"errors"
	"testing"
	"time"

	"signal-ingest-service/internal/broker"
	"signal-ingest-service/internal/failure"
	"signal-ingest-service/internal/signals"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	mock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const sampleDevice = "66bb584d4ae73e488c30a072"

func sampleRecord() signals.Record {
	return signals.Record{
		DeviceID: sampleDevice,
		Data: []signals.Sample{
			{Offset: 762, Vector: signals.Vector{51.339764, 12.339223833333334, 1.2038000000000002}},
			{Offset: 1766, Vector: signals.Vector{51.33977733333333, 12.339211833333334, 1.531604}},
			{Offset: 2763, Vector: signals.Vector{51.339782, 12.339196166666667, 2.13906}},
		},
		Time: 1735683480000,
	}
}

const sampleBody = `{"66bb584d4ae73e488c30a072":{"data":[` +
	`[762,[51.339764,12.339223833333334,1.2038000000000002]],` +
	`[1766,[51.33977733333333,12.339211833333334,1.531604]],` +
	`[2763,[51.339782,12.339196166666667,2.13906]]],"time":1735683480000}}`

func Test_HandleMessage(t *testing.T) {
	cases := []struct {
		name            string
		useMessageID    bool
		msg             broker.Message
		setupStore      func() signalStore
		expectedErr     error
		expectedMessage string
	}{
		{
			name: "well-formed message is stored once",
			msg:  broker.Message{ID: "m-1", Body: []byte(sampleBody)},
			setupStore: func() signalStore {
				s := NewMocksignalStore(t)
				s.EXPECT().InsertSignal(mock.Anything, sampleRecord(), "").
					Return(signals.StoredSignal{ID: "id-1", DeviceID: sampleDevice}, nil).Once()
				return s
			},
		},
		{
			name:         "message id becomes the idempotency key",
			useMessageID: true,
			msg:          broker.Message{ID: "m-1", Body: []byte(sampleBody)},
			setupStore: func() signalStore {
				s := NewMocksignalStore(t)
				s.EXPECT().InsertSignal(mock.Anything, sampleRecord(), "m-1").
					Return(signals.StoredSignal{ID: "id-1", DeviceID: sampleDevice}, nil).Once()
				return s
			},
		},
		{
			name: "extra devices are ignored",
			msg: broker.Message{Body: []byte(
				`{"dev-1":{"data":[[1,[1,2,3]]],"time":5},"dev-2":{"data":[[1,[1,2,3]]],"time":5}}`,
			)},
			setupStore: func() signalStore {
				s := NewMocksignalStore(t)
				s.EXPECT().InsertSignal(mock.Anything, signals.Record{
					DeviceID: "dev-1",
					Data:     []signals.Sample{{Offset: 1, Vector: signals.Vector{1, 2, 3}}},
					Time:     5,
				}, "").Return(signals.StoredSignal{DeviceID: "dev-1"}, nil).Once()
				return s
			},
		},
		{
			name:            "empty object",
			msg:             broker.Message{Body: []byte(`{}`)},
			setupStore:      func() signalStore { return NewMocksignalStore(t) },
			expectedErr:     failure.ErrValidation,
			expectedMessage: msgMissingContent,
		},
		{
			name:            "null body",
			msg:             broker.Message{Body: []byte(`null`)},
			setupStore:      func() signalStore { return NewMocksignalStore(t) },
			expectedErr:     failure.ErrValidation,
			expectedMessage: msgMissingContent,
		},
		{
			name:            "not json",
			msg:             broker.Message{Body: []byte(`not-json`)},
			setupStore:      func() signalStore { return NewMocksignalStore(t) },
			expectedErr:     failure.ErrValidation,
			expectedMessage: msgMalformed,
		},
		{
			name:            "empty body",
			msg:             broker.Message{},
			setupStore:      func() signalStore { return NewMocksignalStore(t) },
			expectedErr:     failure.ErrValidation,
			expectedMessage: msgMalformed,
		},
		{
			name:            "missing data",
			msg:             broker.Message{Body: []byte(`{"dev-1":{"time":1735683480000}}`)},
			setupStore:      func() signalStore { return NewMocksignalStore(t) },
			expectedErr:     failure.ErrValidation,
			expectedMessage: msgInvalidStructure,
		},
		{
			name:            "missing time",
			msg:             broker.Message{Body: []byte(`{"dev-1":{"data":[[1,[1,2,3]]]}}`)},
			setupStore:      func() signalStore { return NewMocksignalStore(t) },
			expectedErr:     failure.ErrValidation,
			expectedMessage: msgInvalidStructure,
		},
		{
			name:            "empty data",
			msg:             broker.Message{Body: []byte(`{"dev-2":{"data":[],"time":1700000000000}}`)},
			setupStore:      func() signalStore { return NewMocksignalStore(t) },
			expectedErr:     failure.ErrValidation,
			expectedMessage: msgInvalidStructure,
		},
		{
			name:            "bad sample shape",
			msg:             broker.Message{Body: []byte(`{"dev-1":{"data":[[1,[1,2]]],"time":5}}`)},
			setupStore:      func() signalStore { return NewMocksignalStore(t) },
			expectedErr:     failure.ErrValidation,
			expectedMessage: msgInvalidStructure,
		},
		{
			name: "store failure",
			msg:  broker.Message{Body: []byte(sampleBody)},
			setupStore: func() signalStore {
				s := NewMocksignalStore(t)
				s.EXPECT().InsertSignal(mock.Anything, sampleRecord(), "").
					Return(signals.StoredSignal{}, errors.New("connection reset")).Once()
				return s
			},
			expectedErr: failure.ErrPersistence,
		},
		{
			name: "duplicate is a persistence failure",
			msg:  broker.Message{Body: []byte(sampleBody)},
			setupStore: func() signalStore {
				s := NewMocksignalStore(t)
				s.EXPECT().InsertSignal(mock.Anything, sampleRecord(), "").
					Return(signals.StoredSignal{}, failure.New(failure.KindDuplicate, "DB:InsertSignal", "", nil)).Once()
				return s
			},
			expectedErr: failure.ErrPersistence,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			h := New(Config{
				Store:        tt.setupStore(),
				Timeout:      time.Second,
				UseMessageID: tt.useMessageID,
			})
			err := h.HandleMessage(context.Background(), tt.msg)
			if tt.expectedErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expectedErr)
			if tt.expectedMessage != "" {
				assert.Equal(t, tt.expectedMessage, failure.MessageOf(err, failure.KindValidation))
			}
		})
	}
}

func Test_HandleMessage_Timeout(t *testing.T) {
	s := NewMocksignalStore(t)
	s.EXPECT().InsertSignal(mock.Anything, mock.Anything, "").
		RunAndReturn(func(ctx context.Context, _ signals.Record, _ string) (signals.StoredSignal, error) {
			<-ctx.Done()
			return signals.StoredSignal{}, ctx.Err()
		}).Once()

	h := New(Config{Store: s, Timeout: 10 * time.Millisecond})
	err := h.HandleMessage(context.Background(), broker.Message{Body: []byte(sampleBody)})
	assert.ErrorIs(t, err, failure.ErrPersistence)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// Test_Scenarios runs the handler behind the RabbitMQ consumer loop and checks
// the ack/nack outcome per published body.
func Test_Scenarios(t *testing.T) {
	cases := []struct {
		name       string
		body       string
		setupStore func() signalStore
		setupAck   func() *broker.MockAcknowledger
	}{
		{
			name: "well-formed signal is persisted and acked",
			body: `{"dev-1": {"data": [[762, [51.33, 12.33, 1.20]]], "time": 1735683480000}}`,
			setupStore: func() signalStore {
				s := NewMocksignalStore(t)
				s.EXPECT().InsertSignal(mock.Anything, signals.Record{
					DeviceID: "dev-1",
					Data:     []signals.Sample{{Offset: 762, Vector: signals.Vector{51.33, 12.33, 1.20}}},
					Time:     1735683480000,
				}, "").Return(signals.StoredSignal{ID: "id-1", DeviceID: "dev-1"}, nil).Once()
				return s
			},
			setupAck: func() *broker.MockAcknowledger {
				a := broker.NewMockAcknowledger(t)
				a.EXPECT().Ack(uint64(1), false).Return(nil).Once()
				return a
			},
		},
		{
			name:       "empty object is nacked without requeue",
			body:       `{}`,
			setupStore: func() signalStore { return NewMocksignalStore(t) },
			setupAck: func() *broker.MockAcknowledger {
				a := broker.NewMockAcknowledger(t)
				a.EXPECT().Nack(uint64(1), false, false).Return(nil).Once()
				return a
			},
		},
		{
			name:       "empty data is dropped",
			body:       `{"dev-2": {"data": [], "time": 1700000000000}}`,
			setupStore: func() signalStore { return NewMocksignalStore(t) },
			setupAck: func() *broker.MockAcknowledger {
				a := broker.NewMockAcknowledger(t)
				a.EXPECT().Nack(uint64(1), false, false).Return(nil).Once()
				return a
			},
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			deliveries := make(chan amqp.Delivery, 1)
			deliveries <- amqp.Delivery{
				Acknowledger: tt.setupAck(),
				DeliveryTag:  1,
				Body:         []byte(tt.body),
			}
			close(deliveries)

			ch := broker.NewMockAMQPChannel(t)
			ch.EXPECT().Qos(1, 0, false).Return(nil)
			ch.EXPECT().Consume("development/signal/read", "", false, false, false, false, amqp.Table(nil)).
				Return((<-chan amqp.Delivery)(deliveries), nil)

			h := New(Config{Store: tt.setupStore(), Timeout: time.Second})
			err := broker.NewRabbitMQ(broker.RabbitMQConfig{Channel: ch}).
				Consume(context.Background(), "development/signal/read", h)
			assert.ErrorIs(t, err, failure.ErrMissingContent)
		})
	}
}
