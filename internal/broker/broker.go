// Package broker hides the message transport behind Consume. Implementations
// deliver one message at a time, acknowledge it when the handler succeeds and
// reject it without redelivery when the handler fails.
package broker

import (
	"context"
	"time"

	"signal-ingest-service/internal/failure"
)

type Message struct {
	ID         string
	Body       []byte
	RoutingKey string
	Timestamp  time.Time
	Headers    map[string]any
}

type Handler interface {
	HandleMessage(ctx context.Context, msg Message) error
}

type HandlerFunc func(ctx context.Context, msg Message) error

func (f HandlerFunc) HandleMessage(ctx context.Context, msg Message) error {
	return f(ctx, msg)
}

type Broker interface {
	// Consume blocks until ctx is done, the subscription is cancelled by the
	// broker (KindMissingContent) or registration fails (KindConsumer).
	// Per-message failures are logged and do not end the subscription.
	Consume(ctx context.Context, queue string, handler Handler) error
}

// stopConsuming ends the delivery loop once the broker stops delivering.
func stopConsuming(err error) bool {
	return failure.KindOf(err) == failure.KindMissingContent
}
