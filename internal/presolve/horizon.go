// Package presolve builds each task's eligibility domain and the shared
// weighted overlap map, ranks tasks topologically along AFTER
// dependencies, and seeds the priority queue the placement loop drains
// (spec section 4.3).
package presolve

import "time"

// Horizon is the half-open planning window [Start, Start+Days days).
type Horizon struct {
	Start time.Time
	Days  int
}

// End returns the horizon's exclusive end instant.
func (h Horizon) End() time.Time {
	return h.Start.AddDate(0, 0, h.Days)
}
