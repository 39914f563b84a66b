package scheduler

import "sort"

// CanonicalOrder returns a sorted copy of entries using the same
// (rank, pressure, task ID) rule the Heap pops in, without disturbing
// the heap itself. Observers use it to log a deterministic snapshot of
// the queue between commits.
func CanonicalOrder(entries []*Entry) []*Entry {
	out := make([]*Entry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Rank != b.Rank {
			return a.Rank < b.Rank
		}
		if a.Pressure != b.Pressure {
			return a.Pressure > b.Pressure
		}
		return a.Task.ID < b.Task.ID
	})
	return out
}
