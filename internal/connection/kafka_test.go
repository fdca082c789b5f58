package connection

import (
	"context"
	"errors"
	"testing"

	"signal-ingest-service/internal/failure"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_KafkaConnect(t *testing.T) {
	cfg := KafkaConfig{
		Brokers:         []string{"kafka-1:9092", "kafka-2:9092"},
		Topic:           "signals",
		DeadLetterTopic: "signals.dlq",
		Attempts:        3,
		Interval:        testInterval,
	}
	topics := []kafka.TopicConfig{
		{Topic: "signals", NumPartitions: 1, ReplicationFactor: 1},
		{Topic: "signals.dlq", NumPartitions: 1, ReplicationFactor: 1},
	}

	cases := []struct {
		name        string
		setupDialer func() (KafkaDialer, *int)
		expectedErr error
	}{
		{
			name: "creates topics through the controller",
			setupDialer: func() (KafkaDialer, *int) {
				bootstrap := NewMockKafkaConn(t)
				bootstrap.EXPECT().Controller().Return(kafka.Broker{Host: "kafka-2", Port: 9092}, nil)
				bootstrap.EXPECT().Close().Return(nil)
				controller := NewMockKafkaConn(t)
				controller.EXPECT().CreateTopics(topics).Return(nil)
				controller.EXPECT().Close().Return(nil)

				calls := 0
				return func(_ context.Context, addr string) (KafkaConn, error) {
					calls++
					switch {
					case addr == "kafka-1:9092" && calls == 1:
						return bootstrap, nil
					case addr == "kafka-2:9092" && calls == 2:
						return controller, nil
					}
					t.Fatalf("unexpected dial %d to %s", calls, addr)
					return nil, nil
				}, &calls
			},
		},
		{
			name: "existing topics are fine",
			setupDialer: func() (KafkaDialer, *int) {
				conn := NewMockKafkaConn(t)
				conn.EXPECT().Controller().Return(kafka.Broker{Host: "kafka-1", Port: 9092}, nil)
				conn.EXPECT().CreateTopics(topics).Return(kafka.TopicAlreadyExists)
				conn.EXPECT().Close().Return(nil)
				calls := 0
				return func(context.Context, string) (KafkaConn, error) {
					calls++
					return conn, nil
				}, &calls
			},
		},
		{
			name: "falls back to the next bootstrap broker",
			setupDialer: func() (KafkaDialer, *int) {
				conn := NewMockKafkaConn(t)
				conn.EXPECT().Controller().Return(kafka.Broker{Host: "kafka-2", Port: 9092}, nil)
				conn.EXPECT().CreateTopics(topics).Return(nil)
				conn.EXPECT().Close().Return(nil)
				calls := 0
				return func(_ context.Context, addr string) (KafkaConn, error) {
					calls++
					if addr == "kafka-1:9092" {
						return nil, errors.New("connection refused")
					}
					return conn, nil
				}, &calls
			},
		},
		{
			name: "unreachable cluster is fatal",
			setupDialer: func() (KafkaDialer, *int) {
				calls := 0
				return func(context.Context, string) (KafkaConn, error) {
					calls++
					return nil, errors.New("connection refused")
				}, &calls
			},
			expectedErr: failure.ErrConnection,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			c := cfg
			dialer, calls := tt.setupDialer()
			c.Dialer = dialer

			m := NewKafka(c)
			err := m.Connect(context.Background())
			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				// two bootstrap brokers per attempt
				assert.Equal(t, 2*cfg.Attempts, *calls)
				assertClosed(t, m.Failed())
				return
			}
			require.NoError(t, err)
			assertClosed(t, m.Ready())
		})
	}
}

func Test_KafkaConnect_NoBrokers(t *testing.T) {
	m := NewKafka(KafkaConfig{Topic: "signals", Attempts: 5, Interval: testInterval})
	err := m.Connect(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, failure.ErrConnection)
	assert.Contains(t, err.Error(), "after 1 attempts")
}
