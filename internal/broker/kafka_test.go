package broker

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"signal-ingest-service/internal/failure"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	mock "github.com/stretchr/testify/mock"
)

func Test_KafkaProcessMessage(t *testing.T) {
	ts := time.UnixMilli(1735683480000)
	record := kafka.Message{
		Topic:     "signals",
		Partition: 2,
		Offset:    41,
		Key:       []byte("66bb584d4ae73e488c30a072"),
		Value:     []byte(`{"66bb584d4ae73e488c30a072":{}}`),
		Headers:   []kafka.Header{{Key: "source", Value: []byte("e2e")}},
		Time:      ts,
	}
	expectedMessage := Message{
		ID:         "signals/2/41",
		Body:       record.Value,
		RoutingKey: "66bb584d4ae73e488c30a072",
		Timestamp:  ts,
		Headers:    map[string]any{"source": "e2e"},
	}
	handlerErr := failure.New(failure.KindValidation, "Handler:HandleMessage", "missing content", nil)

	cases := []struct {
		name         string
		setupReader  func() Reader
		setupWriter  func() Writer
		setupHandler func() Handler
		expectedErr  error
		expectedKind failure.Kind
	}{
		{
			name: "commit on success",
			setupReader: func() Reader {
				r := NewMockReader(t)
				r.EXPECT().FetchMessage(mock.Anything).Return(record, nil)
				r.EXPECT().CommitMessages(mock.Anything, []kafka.Message{record}).Return(nil).Once()
				return r
			},
			setupWriter: func() Writer { return NewMockWriter(t) },
			setupHandler: func() Handler {
				h := NewMockHandler(t)
				h.EXPECT().HandleMessage(mock.Anything, expectedMessage).Return(nil).Once()
				return h
			},
		},
		{
			name: "dead-letter then commit on failure",
			setupReader: func() Reader {
				r := NewMockReader(t)
				r.EXPECT().FetchMessage(mock.Anything).Return(record, nil)
				r.EXPECT().CommitMessages(mock.Anything, []kafka.Message{record}).Return(nil).Once()
				return r
			},
			setupWriter: func() Writer {
				w := NewMockWriter(t)
				w.EXPECT().WriteMessages(mock.Anything, []kafka.Message{{
					Key:   record.Key,
					Value: record.Value,
					Headers: []kafka.Header{
						{Key: "source", Value: []byte("e2e")},
						{Key: HeaderError, Value: []byte(handlerErr.Error())},
					},
				}}).Return(nil).Once()
				return w
			},
			setupHandler: func() Handler {
				h := NewMockHandler(t)
				h.EXPECT().HandleMessage(mock.Anything, mock.Anything).Return(handlerErr).Once()
				return h
			},
			expectedErr:  failure.ErrValidation,
			expectedKind: failure.KindConsumer,
		},
		{
			name: "dead-letter failure leaves the offset uncommitted",
			setupReader: func() Reader {
				r := NewMockReader(t)
				r.EXPECT().FetchMessage(mock.Anything).Return(record, nil)
				return r
			},
			setupWriter: func() Writer {
				w := NewMockWriter(t)
				w.EXPECT().WriteMessages(mock.Anything, mock.Anything).Return(errors.New("leader not available")).Once()
				return w
			},
			setupHandler: func() Handler {
				h := NewMockHandler(t)
				h.EXPECT().HandleMessage(mock.Anything, mock.Anything).Return(handlerErr).Once()
				return h
			},
			expectedErr:  failure.ErrValidation,
			expectedKind: failure.KindConsumer,
		},
		{
			name: "commit failure",
			setupReader: func() Reader {
				r := NewMockReader(t)
				r.EXPECT().FetchMessage(mock.Anything).Return(record, nil)
				r.EXPECT().CommitMessages(mock.Anything, []kafka.Message{record}).Return(errors.New("rebalance")).Once()
				return r
			},
			setupWriter: func() Writer { return NewMockWriter(t) },
			setupHandler: func() Handler {
				h := NewMockHandler(t)
				h.EXPECT().HandleMessage(mock.Anything, mock.Anything).Return(nil).Once()
				return h
			},
			expectedErr:  failure.ErrConsumer,
			expectedKind: failure.KindConsumer,
		},
		{
			name: "closed reader",
			setupReader: func() Reader {
				r := NewMockReader(t)
				r.EXPECT().FetchMessage(mock.Anything).Return(kafka.Message{}, io.EOF)
				return r
			},
			setupWriter:  func() Writer { return NewMockWriter(t) },
			setupHandler: func() Handler { return NewMockHandler(t) },
			expectedErr:  failure.ErrMissingContent,
			expectedKind: failure.KindMissingContent,
		},
		{
			name: "fetch failure",
			setupReader: func() Reader {
				r := NewMockReader(t)
				r.EXPECT().FetchMessage(mock.Anything).Return(kafka.Message{}, errors.New("coordinator not available"))
				return r
			},
			setupWriter:  func() Writer { return NewMockWriter(t) },
			setupHandler: func() Handler { return NewMockHandler(t) },
			expectedErr:  failure.ErrConsumer,
			expectedKind: failure.KindConsumer,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			p := &recordProcessor{
				reader:     tt.setupReader(),
				deadLetter: tt.setupWriter(),
				handler:    tt.setupHandler(),
			}
			err := p.ProcessMessage(context.Background())
			if tt.expectedErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Equal(t, tt.expectedKind, failure.KindOf(err))
		})
	}
}

func Test_KafkaConsume(t *testing.T) {
	r := NewMockReader(t)
	r.EXPECT().FetchMessage(mock.Anything).Return(kafka.Message{Topic: "signals", Value: []byte("x")}, nil).Once()
	r.EXPECT().CommitMessages(mock.Anything, mock.Anything).Return(nil).Once()
	r.EXPECT().FetchMessage(mock.Anything).Return(kafka.Message{}, io.EOF).Once()
	r.EXPECT().Close().Return(nil).Once()

	// Without a dead-letter topic a failed message is committed and dropped.
	k := &Kafka{newReader: func(topic string) Reader {
		assert.Equal(t, "signals", topic)
		return r
	}}
	handler := HandlerFunc(func(context.Context, Message) error { return errors.New("boom") })

	err := k.Consume(context.Background(), "signals", handler)
	assert.ErrorIs(t, err, failure.ErrMissingContent)
	assert.NoError(t, k.Close(context.Background()))
}
