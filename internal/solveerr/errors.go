// Package solveerr defines the solver's error taxonomy (spec section 7):
// sentinel values for errors.Is checks, and typed errors carrying the
// offending task/field for human-readable messages — the same
// sentinel-plus-typed-error split the donor stack uses for its LLM
// subsystem (sentinels) and its use-case errors (typed, see *ReplanError
// in the teacher's app package).
package solveerr

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidInput marks a request that fails structural validation:
	// negative durations, end <= start, buffer < 0, due before starts_at,
	// malformed recurrence (the last is a caller concern; see spec section 6).
	ErrInvalidInput = errors.New("invalid input")

	// ErrInfeasible marks a task whose constructed domain has less total
	// time than its remaining duration, discovered before any placement is
	// attempted.
	ErrInfeasible = errors.New("infeasible before search")

	// ErrCyclicDependencies marks a cycle in the task-dependency graph.
	ErrCyclicDependencies = errors.New("cyclic dependencies")

	// ErrInconsistentState marks a post-commit invariant violation. Per
	// spec section 4.4 this should be impossible given the pre-commit
	// compatibility check; seeing it signals a solver bug.
	ErrInconsistentState = errors.New("inconsistent state")
)

// InvalidInputError wraps every structural validation failure collected
// for a single presolve call.
type InvalidInputError struct {
	Context string
	Causes  []error
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: invalid input (%d issue(s)): %v", e.Context, len(e.Causes), errors.Join(e.Causes...))
}

func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

// InfeasibleError names the task whose eligibility domain cannot hold its
// own remaining duration.
type InfeasibleError struct {
	TaskID    string
	Required  time.Duration
	Available time.Duration
}

func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("task %s: requires %s but only %s of eligible time remains after profiles, events, and dependency trims",
		e.TaskID, e.Required, e.Available)
}

func (e *InfeasibleError) Unwrap() error { return ErrInfeasible }

// CyclicDependencyError names a task on the cycle detected while
// topologically ranking the AFTER-edge dependency graph.
type CyclicDependencyError struct {
	TaskID string
}

func (e *CyclicDependencyError) Error() string {
	return fmt.Sprintf("cyclic AFTER dependency detected at task %s", e.TaskID)
}

func (e *CyclicDependencyError) Unwrap() error { return ErrCyclicDependencies }

// InconsistentStateError names the task and the invariant that failed
// after a commit, a fatal bug signal per spec section 7.
type InconsistentStateError struct {
	TaskID string
	Detail string
}

func (e *InconsistentStateError) Error() string {
	return fmt.Sprintf("inconsistent state for task %s: %s", e.TaskID, e.Detail)
}

func (e *InconsistentStateError) Unwrap() error { return ErrInconsistentState }
