// Package testutil provides functional-options fixture builders for the
// entity model, used across the solver's test suites.
package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/horizon/internal/domain"
)

// TaskOption customizes a fixture Task.
type TaskOption func(*domain.Task)

func WithDue(d time.Time) TaskOption {
	return func(t *domain.Task) { t.Due = &d }
}

func WithStartsAt(d time.Time) TaskOption {
	return func(t *domain.Task) { t.StartsAt = &d }
}

func WithProfiles(p ...domain.TimeProfile) TaskOption {
	return func(t *domain.Task) { t.Profiles = p }
}

func WithSessionBounds(min time.Duration, max time.Duration) TaskOption {
	return func(t *domain.Task) {
		t.MinSessionLength = min
		t.MaxSessionLength = &max
	}
}

func WithBuffers(before, after time.Duration) TaskOption {
	return func(t *domain.Task) {
		t.BufferBefore = before
		t.BufferAfter = after
	}
}

func WithTaskDependency(targetID string, kind domain.DependencyKind) TaskOption {
	return func(t *domain.Task) { t.TaskDependencies[targetID] = kind }
}

func WithEventDependency(targetID string, kind domain.DependencyKind) TaskOption {
	return func(t *domain.Task) { t.EventDependencies[targetID] = kind }
}

// NewTestTask returns a Task with a random ID, a 15-minute minimum
// session, and the given title and total duration.
func NewTestTask(title string, total time.Duration, opts ...TaskOption) *domain.Task {
	t := domain.NewTask(uuid.NewString(), title, total)
	t.MinSessionLength = 15 * time.Minute
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// EventOption customizes a fixture Event.
type EventOption func(*domain.Event)

func WithEventTitle(title string) EventOption {
	return func(e *domain.Event) { e.Title = title }
}

// NewTestEvent returns an Event with a random ID spanning [start, start+d).
func NewTestEvent(start time.Time, d time.Duration, opts ...EventOption) *domain.Event {
	e := &domain.Event{ID: uuid.NewString(), Start: start, End: start.Add(d)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewTestProfile builds a TimeProfile with the same window on every
// weekday given.
func NewTestProfile(weekdays []domain.Weekday, startHour, endHour int) domain.TimeProfile {
	windows := make(map[domain.Weekday][]domain.Window, len(weekdays))
	for _, d := range weekdays {
		windows[d] = []domain.Window{{StartHour: startHour, EndHour: endHour}}
	}
	return domain.TimeProfile{ID: uuid.NewString(), Windows: windows}
}
