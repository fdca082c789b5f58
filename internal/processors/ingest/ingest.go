// Package ingest turns broker messages into stored signal records.
package ingest

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"signal-ingest-service/internal/broker"
	"signal-ingest-service/internal/failure"
	"signal-ingest-service/internal/signals"
)

const (
	msgMalformed        = "malformed payload"
	msgMissingContent   = "missing content"
	msgInvalidStructure = "invalid signal data structure"
)

type signalStore interface {
	InsertSignal(ctx context.Context, rec signals.Record, idempotencyKey string) (signals.StoredSignal, error)
}

type Config struct {
	Store signalStore
	// Timeout bounds a single persistence call. Zero means no bound.
	Timeout time.Duration
	// UseMessageID turns the broker message id into the idempotency key, so a
	// redelivered message maps to the record it already produced.
	UseMessageID bool
}

type Handler struct {
	store        signalStore
	timeout      time.Duration
	useMessageID bool
}

func New(cfg Config) *Handler {
	return &Handler{
		store:        cfg.Store,
		timeout:      cfg.Timeout,
		useMessageID: cfg.UseMessageID,
	}
}

var _ broker.Handler = (*Handler)(nil)

// HandleMessage stores exactly one record per well-formed message. Any
// returned error means the message must not be acked.
func (h *Handler) HandleMessage(ctx context.Context, msg broker.Message) error {
	const fn = "Handler:HandleMessage"

	decoded, err := signals.Decode(msg.Body)
	if err != nil {
		return failure.New(failure.KindValidation, fn, validationMessage(err), err)
	}
	if len(decoded.Ignored) > 0 {
		slog.WarnContext(ctx, "Ignoring extra device keys",
			"device_id", decoded.DeviceID,
			"ignored", len(decoded.Ignored),
			"message_id", msg.ID,
		)
	}

	key := ""
	if h.useMessageID {
		key = msg.ID
	}
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	stored, err := h.store.InsertSignal(ctx, decoded.Record(), key)
	if err != nil {
		return failure.New(failure.KindPersistence, fn, "", err)
	}
	slog.InfoContext(ctx, "Signal stored",
		"device_id", stored.DeviceID,
		"signal_id", stored.ID,
		"samples", len(stored.Data),
		"message_id", msg.ID,
	)
	return nil
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, signals.ErrMissingContent):
		return msgMissingContent
	case errors.Is(err, signals.ErrInvalidStructure):
		return msgInvalidStructure
	default:
		return msgMalformed
	}
}
