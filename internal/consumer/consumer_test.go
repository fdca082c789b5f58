package consumer

import (
	"context"
	"errors"
	"testing"
	"time"

	"signal-ingest-service/internal/broker"
	"signal-ingest-service/internal/failure"

	"github.com/stretchr/testify/assert"
	mock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testQueue = "development/signal/read"

func closed() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

func Test_Run(t *testing.T) {
	connErr := failure.New(failure.KindConnection, "Manager:Connect", "broker unreachable after 5 attempts", errors.New("dial: connection refused"))
	handler := broker.HandlerFunc(func(context.Context, broker.Message) error { return nil })

	cases := []struct {
		name           string
		cancelled      bool
		setupReadiness func() Readiness
		setupBroker    func(c *Consumer) broker.Broker
		expectedErr    error
		expectBroker   bool
	}{
		{
			name: "consumes once ready",
			setupReadiness: func() Readiness {
				r := NewMockReadiness(t)
				r.EXPECT().Ready().Return(closed())
				r.EXPECT().Failed().Return(make(chan struct{}))
				return r
			},
			setupBroker: func(c *Consumer) broker.Broker {
				b := broker.NewMockBroker(t)
				b.EXPECT().Consume(mock.Anything, testQueue, mock.Anything).
					RunAndReturn(func(context.Context, string, broker.Handler) error {
						assert.Equal(t, StateConsuming, c.State())
						assert.True(t, c.Consuming())
						return nil
					}).Once()
				return b
			},
			expectBroker: true,
		},
		{
			name: "subscription ended by the broker is not fatal",
			setupReadiness: func() Readiness {
				r := NewMockReadiness(t)
				r.EXPECT().Ready().Return(closed())
				r.EXPECT().Failed().Return(make(chan struct{}))
				return r
			},
			setupBroker: func(*Consumer) broker.Broker {
				b := broker.NewMockBroker(t)
				b.EXPECT().Consume(mock.Anything, testQueue, mock.Anything).
					Return(failure.New(failure.KindMissingContent, "RabbitMQ:ProcessMessage", "delivery channel closed", nil)).Once()
				return b
			},
			expectBroker: true,
		},
		{
			name: "registration failure is not fatal",
			setupReadiness: func() Readiness {
				r := NewMockReadiness(t)
				r.EXPECT().Ready().Return(closed())
				r.EXPECT().Failed().Return(make(chan struct{}))
				return r
			},
			setupBroker: func(*Consumer) broker.Broker {
				b := broker.NewMockBroker(t)
				b.EXPECT().Consume(mock.Anything, testQueue, mock.Anything).
					Return(failure.New(failure.KindConsumer, "RabbitMQ:Consume", "register consumer", errors.New("NOT_FOUND"))).Once()
				return b
			},
			expectBroker: true,
		},
		{
			name: "connection failure is returned",
			setupReadiness: func() Readiness {
				r := NewMockReadiness(t)
				r.EXPECT().Ready().Return(make(chan struct{}))
				r.EXPECT().Failed().Return(closed())
				r.EXPECT().Err().Return(connErr)
				return r
			},
			setupBroker: func(*Consumer) broker.Broker { return broker.NewMockBroker(t) },
			expectedErr: failure.ErrConnection,
		},
		{
			name:      "shutdown before ready",
			cancelled: true,
			setupReadiness: func() Readiness {
				r := NewMockReadiness(t)
				r.EXPECT().Ready().Return(make(chan struct{}))
				r.EXPECT().Failed().Return(make(chan struct{}))
				return r
			},
			setupBroker: func(*Consumer) broker.Broker { return broker.NewMockBroker(t) },
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			if tt.cancelled {
				cancel()
			}

			built := false
			c := New(Config{
				Name:      "signal-consumer",
				Queue:     testQueue,
				Readiness: tt.setupReadiness(),
				Handler:   handler,
			})
			b := tt.setupBroker(c)
			c.newBroker = func() broker.Broker {
				built = true
				return b
			}
			assert.Equal(t, StateCreated, c.State())

			err := c.Run(ctx)
			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectBroker, built)
			assert.Equal(t, StateStopped, c.State())
			assert.False(t, c.Consuming())
		})
	}
}

func Test_Run_StartupDelay(t *testing.T) {
	r := NewMockReadiness(t)
	r.EXPECT().Ready().Return(closed())
	r.EXPECT().Failed().Return(make(chan struct{}))

	var subscribed time.Time
	b := broker.NewMockBroker(t)
	b.EXPECT().Consume(mock.Anything, testQueue, mock.Anything).
		RunAndReturn(func(context.Context, string, broker.Handler) error {
			subscribed = time.Now()
			return nil
		}).Once()

	c := New(Config{
		Queue:        testQueue,
		Readiness:    r,
		NewBroker:    func() broker.Broker { return b },
		StartupDelay: 30 * time.Millisecond,
	})
	start := time.Now()
	require.NoError(t, c.Run(context.Background()))
	assert.GreaterOrEqual(t, subscribed.Sub(start), 30*time.Millisecond)
}

func Test_StateString(t *testing.T) {
	assert.Equal(t, "created", StateCreated.String())
	assert.Equal(t, "subscribing", StateSubscribing.String())
	assert.Equal(t, "consuming", StateConsuming.String())
	assert.Equal(t, "stopped", StateStopped.String())
}
