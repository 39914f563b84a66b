package presolve

import (
	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/alexanderramin/horizon/internal/solveerr"
	"github.com/alexanderramin/horizon/internal/timedomain"
)

// buildTaskDomain constructs a task's eligibility domain DT (spec
// section 4.3 step 2): project and intersect its time profiles (or the
// full horizon at weight 1 if it has none), clamp to StartsAt/Due,
// subtract every event, then trim against event dependencies. It
// returns an Infeasible-Before-Search error the moment DT cannot hold
// the task's own remaining duration.
func buildTaskDomain(t *domain.Task, eventsByID map[string]*domain.Event, eventsDomain timedomain.Domain, horizon Horizon) (timedomain.Domain, error) {
	var dt timedomain.Domain
	if len(t.Profiles) > 0 {
		dt = domain.IntersectProfiles(t.Profiles, horizon.Start, horizon.Days)
	} else {
		dt = timedomain.Single(horizon.Start, horizon.End(), 1)
	}

	lower := horizon.Start
	if t.StartsAt != nil && t.StartsAt.After(lower) {
		lower = *t.StartsAt
	}
	upper := horizon.End()
	if t.Due != nil && t.Due.Before(upper) {
		upper = *t.Due
	}
	dt = dt.Slice(lower, upper)

	dt = dt.Difference(eventsDomain)

	for targetID, kind := range t.EventDependencies {
		e, ok := eventsByID[targetID]
		if !ok {
			continue
		}
		switch kind {
		case domain.DependencyBefore:
			dt = dt.TrimRight(e.Start)
		case domain.DependencyAfter:
			dt = dt.TrimLeft(e.End)
		case domain.DependencyDuring:
			dt = dt.Intersection(timedomain.Single(e.Start, e.End, 1))
		}
	}

	if dt.TotalTime() < t.RemainingDuration {
		return timedomain.Empty(), &solveerr.InfeasibleError{
			TaskID:    t.ID,
			Required:  t.RemainingDuration,
			Available: dt.TotalTime(),
		}
	}
	return dt, nil
}
