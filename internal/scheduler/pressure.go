package scheduler

import (
	"time"

	"github.com/alexanderramin/horizon/internal/timedomain"
)

// OverlapMetric reports how contested taskDomain is against the shared
// weighted overlap map: the average weight across taskDomain's own
// support, restricted to the portion overlap actually covers. A task
// whose entire eligible window is claimed by three other tasks scores
// higher than one with a lightly-contested window of the same length.
func OverlapMetric(taskDomain, overlap timedomain.Domain) float64 {
	restricted := overlap.Intersection(taskDomain)
	return timedomain.Density(restricted.TotalWeightedTime(), restricted.TotalTime())
}

// Pressure combines contention with flexibility: overlap metric scaled
// by how much of taskDomain's total time the task still needs. A task
// with little slack left in a heavily contested window has the highest
// pressure and is placed first (spec section 4.3 step 5).
func Pressure(taskDomain, overlap timedomain.Domain, remaining time.Duration) float64 {
	total := taskDomain.TotalTime()
	if total <= 0 {
		return 0
	}
	return OverlapMetric(taskDomain, overlap) * float64(remaining) / float64(total)
}
