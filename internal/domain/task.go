package domain

import (
	"fmt"
	"time"
)

// Task is a unit of work to be placed into the horizon. Tasks are created
// by the caller and are logically immutable except for RemainingDuration,
// which the solver decrements on every commit (spec section 3).
type Task struct {
	ID          string
	Title       string
	Description string

	TotalDuration     time.Duration
	RemainingDuration time.Duration

	Due       *time.Time
	StartsAt  *time.Time
	Profiles  []TimeProfile

	MinSessionLength time.Duration
	// MaxSessionLength is nil when absent. Per spec open question (a), an
	// absent max is treated as RemainingDuration for both the duration cap
	// and the ideal-length score — callers must use
	// EffectiveMaxSessionLength rather than read the field directly.
	MaxSessionLength *time.Duration

	BufferBefore time.Duration
	BufferAfter  time.Duration

	TaskDependencies  map[string]DependencyKind
	EventDependencies map[string]DependencyKind

	// FixedSchedule is reserved; not consumed by the core solver.
	FixedSchedule bool
}

// NewTask returns a Task with RemainingDuration initialized to
// totalDuration, as spec section 3's lifecycle requires.
func NewTask(id, title string, totalDuration time.Duration) *Task {
	return &Task{
		ID:                id,
		Title:             title,
		TotalDuration:     totalDuration,
		RemainingDuration: totalDuration,
		TaskDependencies:  make(map[string]DependencyKind),
		EventDependencies: make(map[string]DependencyKind),
	}
}

// EffectiveMaxSessionLength returns MaxSessionLength if set, else
// RemainingDuration (spec open question (a): absent max behaves as
// remaining duration for both the duration cap and the ideal-length
// score).
func (t *Task) EffectiveMaxSessionLength() time.Duration {
	if t.MaxSessionLength != nil {
		return *t.MaxSessionLength
	}
	return t.RemainingDuration
}

// IsFullyScheduled reports whether the task has no remaining duration to
// place.
func (t *Task) IsFullyScheduled() bool {
	return t.RemainingDuration <= 0
}

// Commit decrements RemainingDuration by d, the one mutation the solver
// performs on a Task (spec section 4.2's "observable side effect").
func (t *Task) Commit(d time.Duration) {
	t.RemainingDuration -= d
}

// Validate checks the Invalid-Input constraints from spec section 7. It
// accumulates every violation rather than stopping at the first, mirroring
// the importer's validation style.
func (t *Task) Validate() []error {
	var errs []error
	if t.ID == "" {
		errs = append(errs, fmt.Errorf("task: id is required"))
	}
	if t.TotalDuration <= 0 {
		errs = append(errs, fmt.Errorf("task %s: total duration must be positive", t.ID))
	}
	if t.MinSessionLength < time.Minute {
		errs = append(errs, fmt.Errorf("task %s: min session length must be at least 1 minute", t.ID))
	}
	if t.MaxSessionLength != nil && *t.MaxSessionLength < t.MinSessionLength {
		errs = append(errs, fmt.Errorf("task %s: max session length must be >= min session length", t.ID))
	}
	if t.BufferBefore < 0 || t.BufferAfter < 0 {
		errs = append(errs, fmt.Errorf("task %s: buffers must be non-negative", t.ID))
	}
	if t.Due != nil && t.StartsAt != nil && t.Due.Before(*t.StartsAt) {
		errs = append(errs, fmt.Errorf("task %s: due (%s) is before starts_at (%s)", t.ID, t.Due, t.StartsAt))
	}
	// DURING is defined only against event targets (spec section 3); against
	// another task it is reserved, same as CONTAINS and CONCURRENT.
	for targetID, kind := range t.TaskDependencies {
		if kind != DependencyBefore && kind != DependencyAfter {
			errs = append(errs, fmt.Errorf("task %s: dependency kind %s on task %s is reserved and not accepted", t.ID, kind, targetID))
		}
	}
	for targetID, kind := range t.EventDependencies {
		if !kind.Consumed() {
			errs = append(errs, fmt.Errorf("task %s: dependency kind %s on event %s is reserved and not accepted", t.ID, kind, targetID))
		}
	}
	for _, p := range t.Profiles {
		if err := p.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("task %s: %w", t.ID, err))
		}
	}
	return errs
}
