package solver

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// RunEvent captures lightweight telemetry for one phase of a solve run.
type RunEvent struct {
	Phase     string
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
	StartedAt time.Time
}

// Observer receives solve-run events.
type Observer interface {
	ObserveRun(ctx context.Context, event RunEvent)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) ObserveRun(context.Context, RunEvent) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes run events to w as structured log lines. A nil
// writer returns a NoopObserver.
func NewLogObserver(w io.Writer) Observer {
	if w == nil {
		return NoopObserver{}
	}
	return &logObserver{logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))}
}

func (o *logObserver) ObserveRun(ctx context.Context, event RunEvent) {
	attrs := make([]any, 0, 6+len(event.Fields)*2)
	attrs = append(attrs,
		"phase", event.Phase,
		"duration_ms", event.Duration.Milliseconds(),
		"success", event.Success,
	)
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "solve_run", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "solve_run", attrs...)
}

func observerOrNoop(obs Observer) Observer {
	if obs != nil {
		return obs
	}
	return NoopObserver{}
}
