package worker

import (
	"context"
	"log/slog"
)

type Config struct {
	Name      string
	Processor Processor
	// Stop reports whether an error from the processor ends the loop. When
	// nil, every error is logged and the loop continues.
	Stop func(error) bool
}

type Processor interface {
	ProcessMessage(ctx context.Context) error
}

type Worker struct {
	name      string
	processor Processor
	stop      func(error) bool
}

func New(cfg Config) *Worker {
	stop := cfg.Stop
	if stop == nil {
		stop = func(error) bool { return false }
	}
	return &Worker{
		name:      cfg.Name,
		processor: cfg.Processor,
		stop:      stop,
	}
}

// Run processes one message at a time until ctx is done or the processor
// returns a stopping error. A stopping error is returned, not logged.
func (w *Worker) Run(ctx context.Context) error {
	slog.InfoContext(ctx, "Worker started...", "worker", w.name)
	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Worker stopped...", "worker", w.name)
			return nil
		default:
		}

		err := w.processor.ProcessMessage(ctx)
		if err == nil {
			continue
		}
		if ctx.Err() != nil {
			slog.InfoContext(ctx, "Worker stopped...", "worker", w.name)
			return nil
		}
		if w.stop(err) {
			slog.InfoContext(ctx, "Worker stopped...", "worker", w.name, "reason", err)
			return err
		}
		slog.ErrorContext(ctx, "Failed to process message", "worker", w.name, "error", err)
	}
}
