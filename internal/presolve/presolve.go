package presolve

import (
	"fmt"

	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/alexanderramin/horizon/internal/scheduler"
	"github.com/alexanderramin/horizon/internal/solveerr"
	"github.com/alexanderramin/horizon/internal/timedomain"
)

// Result is everything the placement loop needs to start draining: the
// shared weighted overlap map and a seeded, heap-ordered queue of
// per-task working domains.
type Result struct {
	Overlap timedomain.Domain
	Heap    *scheduler.Heap
}

// Presolve validates tasks and events, ranks tasks topologically,
// builds every task's eligibility domain and the shared overlap map,
// and seeds the priority queue (spec section 4.3).
func Presolve(tasks []*domain.Task, events []*domain.Event, horizon Horizon) (*Result, error) {
	taskIndex := make(map[string]*domain.Task, len(tasks))
	for _, t := range tasks {
		taskIndex[t.ID] = t
	}
	eventsByID := make(map[string]*domain.Event, len(events))
	for _, e := range events {
		eventsByID[e.ID] = e
	}

	var causes []error
	for _, e := range events {
		if err := e.Validate(); err != nil {
			causes = append(causes, err)
		}
	}
	for _, t := range tasks {
		causes = append(causes, t.Validate()...)
		for depID := range t.TaskDependencies {
			if _, ok := taskIndex[depID]; !ok {
				causes = append(causes, fmt.Errorf("task %s: depends on unknown task %s", t.ID, depID))
			}
		}
		for depID := range t.EventDependencies {
			if _, ok := eventsByID[depID]; !ok {
				causes = append(causes, fmt.Errorf("task %s: depends on unknown event %s", t.ID, depID))
			}
		}
	}
	if len(causes) > 0 {
		return nil, &solveerr.InvalidInputError{Context: "presolve", Causes: causes}
	}

	ranks, err := topoRanks(tasks)
	if err != nil {
		return nil, err
	}

	eventsDomain := timedomain.Empty()
	for _, e := range events {
		eventsDomain = eventsDomain.Union(timedomain.Single(e.Start, e.End, 1))
	}

	taskDomains := make(map[string]timedomain.Domain, len(tasks))
	for _, t := range tasks {
		dt, err := buildTaskDomain(t, eventsByID, eventsDomain, horizon)
		if err != nil {
			return nil, err
		}
		taskDomains[t.ID] = dt
	}

	overlap := timedomain.Empty()
	for _, dt := range taskDomains {
		overlap = overlap.Add(dt)
	}

	h := scheduler.NewHeap()
	for _, t := range tasks {
		dt := taskDomains[t.ID]
		if dt.IsEmpty() {
			continue
		}
		pressure := scheduler.Pressure(dt, overlap, t.RemainingDuration)
		h.PushEntry(&scheduler.Entry{Task: t, Domain: dt, Rank: ranks[t.ID], Pressure: pressure})
	}

	return &Result{Overlap: overlap, Heap: h}, nil
}
