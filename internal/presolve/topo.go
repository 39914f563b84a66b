package presolve

import (
	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/alexanderramin/horizon/internal/solveerr"
)

const (
	white = 0
	gray  = 1
	black = 2
)

// topoRanks computes each task's longest-path depth along its AFTER
// dependency edges: a task with no AFTER dependency ranks 0, and a task
// depending on others ranks one more than the deepest of its targets
// (spec section 4.3 step 1). Edges pointing at tasks outside the batch
// are ignored; those are scheduling-irrelevant cross references caught
// separately during validation.
func topoRanks(tasks []*domain.Task) (map[string]int, error) {
	index := make(map[string]*domain.Task, len(tasks))
	for _, t := range tasks {
		index[t.ID] = t
	}

	ranks := make(map[string]int, len(tasks))
	state := make(map[string]int, len(tasks))

	var visit func(id string) (int, error)
	visit = func(id string) (int, error) {
		switch state[id] {
		case gray:
			return 0, &solveerr.CyclicDependencyError{TaskID: id}
		case black:
			return ranks[id], nil
		}
		state[id] = gray

		maxDep := -1
		for depID, kind := range index[id].TaskDependencies {
			if kind != domain.DependencyAfter {
				continue
			}
			if _, ok := index[depID]; !ok {
				continue
			}
			r, err := visit(depID)
			if err != nil {
				return 0, err
			}
			if r > maxDep {
				maxDep = r
			}
		}

		rank := maxDep + 1
		ranks[id] = rank
		state[id] = black
		return rank, nil
	}

	for _, t := range tasks {
		if _, err := visit(t.ID); err != nil {
			return nil, err
		}
	}
	return ranks, nil
}
