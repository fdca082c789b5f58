package connection

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// readiness is the signal consumers wait on instead of sleeping. Exactly one of
// ready or failed is closed.
type readiness struct {
	ready  chan struct{}
	failed chan struct{}
	once   sync.Once
	err    error
}

func newReadiness() *readiness {
	return &readiness{
		ready:  make(chan struct{}),
		failed: make(chan struct{}),
	}
}

// Ready is closed once the broker connection and topology are in place.
func (r *readiness) Ready() <-chan struct{} {
	return r.ready
}

// Failed is closed when connecting gave up. Err holds the cause.
func (r *readiness) Failed() <-chan struct{} {
	return r.failed
}

func (r *readiness) Err() error {
	select {
	case <-r.failed:
		return r.err
	default:
		return nil
	}
}

func (r *readiness) markReady() {
	r.once.Do(func() { close(r.ready) })
}

func (r *readiness) markFailed(err error) {
	r.once.Do(func() {
		r.err = err
		close(r.failed)
	})
}

// retry calls op until it succeeds, attempts run out, or ctx is done. It
// returns the number of attempts made.
func retry(ctx context.Context, broker string, attempts int, interval time.Duration, op func() error) (int, error) {
	if attempts < 1 {
		attempts = 1
	}
	tries := 0
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(interval), uint64(attempts-1)),
		ctx,
	)
	err := backoff.RetryNotify(
		func() error {
			tries++
			return op()
		},
		policy,
		func(err error, next time.Duration) {
			slog.WarnContext(ctx, "Broker not ready",
				"broker", broker,
				"attempt", tries,
				"max_attempts", attempts,
				"retry_in", next,
				"error", err,
			)
		},
	)
	return tries, err
}
