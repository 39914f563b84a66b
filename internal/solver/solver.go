// Package solver wires the presolver, the placement loop, and output
// projection into the public entry points described in spec section 6.
package solver

import (
	"context"
	"time"

	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/alexanderramin/horizon/internal/presolve"
	"github.com/alexanderramin/horizon/internal/project"
	"github.com/alexanderramin/horizon/internal/scheduler"
)

// Horizon is the half-open planning window passed to Solve and Presolve.
type Horizon = presolve.Horizon

// Output is everything one Solve call produces: committed sessions, any
// task residual work that could not be placed, and the day-indexed
// projection of sessions and events.
type Output struct {
	Sessions  []domain.Session
	Residuals map[string]time.Duration
	Days      []project.Day
}

// Solve runs presolve, drains the placement loop, and projects the
// result into day-indexed views. Solve decrements each task's
// RemainingDuration; two runs over equal inputs (freshly built tasks and
// the same events) give byte-identical output (spec section 8,
// determinism).
func Solve(ctx context.Context, tasks []*domain.Task, events []*domain.Event, horizon Horizon, opts Options) (*Output, error) {
	opts = opts.normalized()
	start := time.Now()

	pre, err := presolve.Presolve(tasks, events, horizon)
	if err != nil {
		opts.Observer.ObserveRun(ctx, RunEvent{Phase: "presolve", Duration: time.Since(start), Err: err})
		return nil, err
	}
	opts.Observer.ObserveRun(ctx, RunEvent{
		Phase: "presolve", Duration: time.Since(start), Success: true,
		Fields: map[string]any{"queued_tasks": pre.Heap.Len()},
	})

	placeStart := time.Now()
	result, err := scheduler.Run(pre.Heap, &pre.Overlap, opts.Weights)
	if err != nil {
		opts.Observer.ObserveRun(ctx, RunEvent{Phase: "placement", Duration: time.Since(placeStart), Err: err})
		return nil, err
	}
	opts.Observer.ObserveRun(ctx, RunEvent{
		Phase: "placement", Duration: time.Since(placeStart), Success: true,
		Fields: map[string]any{"sessions": len(result.Sessions), "residual_tasks": len(result.Residuals)},
	})

	days := project.Project(result.Sessions, events, tasks, horizon.Start, horizon.Days)
	return &Output{Sessions: result.Sessions, Residuals: result.Residuals, Days: days}, nil
}

// Presolve exposes the presolve stage alone so callers can inspect
// per-task domains, ranks, and pressure before committing to a full
// solve.
func Presolve(tasks []*domain.Task, events []*domain.Event, horizon Horizon) (*presolve.Result, error) {
	return presolve.Presolve(tasks, events, horizon)
}
