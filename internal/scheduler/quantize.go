package scheduler

import (
	"time"

	"github.com/alexanderramin/horizon/internal/domain"
)

// EffectiveMinDuration is the smallest session length worth placing for
// a task: its configured minimum, never longer than what remains, and
// rounded up to the grid (spec section 4.4 step 2's prune threshold).
func EffectiveMinDuration(minSessionLength, remaining time.Duration) time.Duration {
	m := minSessionLength
	if remaining < m {
		m = remaining
	}
	return domain.CeilToGrid(m)
}

// MaxCandidateDuration is the largest session length a slot of the given
// length can offer a task: bounded by the task's effective max session
// length, what remains, and the slot itself, rounded down to the grid
// (spec section 4.4 step 4).
func MaxCandidateDuration(effectiveMax, remaining, slotLength time.Duration) time.Duration {
	d := effectiveMax
	if remaining < d {
		d = remaining
	}
	if slotLength < d {
		d = slotLength
	}
	return domain.FloorToGrid(d)
}
