package scheduler

import (
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/alexanderramin/horizon/internal/solveerr"
	"github.com/alexanderramin/horizon/internal/timedomain"
)

// Range is a half-open instant span with no weight, used for the
// buffered window a commit removes from every working domain.
type Range struct {
	Start, End time.Time
}

func bufferedRange(start, end time.Time, before, after time.Duration) Range {
	return Range{Start: start.Add(-before), End: end.Add(after)}
}

// Result is everything the placement loop produced: committed sessions
// and the tasks that could not be fully placed, keyed by task ID with
// the duration left unplaced (spec section 4.5's Residual Work input).
type Result struct {
	Sessions  []domain.Session
	Residuals map[string]time.Duration
}

// Run drains h, committing one session at a time until it is empty. It
// mutates entries in h and overlap in place; callers should not reuse
// either afterward.
func Run(h *Heap, overlap *timedomain.Domain, w Weights) (Result, error) {
	result := Result{Residuals: make(map[string]time.Duration)}

	for h.Len() > 0 {
		entry := h.PopEntry()
		t := entry.Task
		dt := entry.Domain

		effectiveMin := EffectiveMinDuration(t.MinSessionLength, t.RemainingDuration)
		dt = pruneShorterThan(dt, effectiveMin)
		if dt.IsEmpty() {
			result.Residuals[t.ID] += t.RemainingDuration
			continue
		}

		committed := false
		for _, slot := range CandidateSlots(dt, *overlap, t, w) {
			maxCandidate := MaxCandidateDuration(t.EffectiveMaxSessionLength(), t.RemainingDuration, slot.Duration())
			if maxCandidate < effectiveMin {
				continue
			}
			d, ok := bestCompatibleDuration(t, slot, effectiveMin, maxCandidate, h.Entries())
			if !ok {
				continue
			}

			start := slot.Start
			end := start.Add(d)
			result.Sessions = append(result.Sessions, domain.Session{
				TaskID:    t.ID,
				SessionID: uuid.NewSHA1(uuid.NameSpaceOID, []byte(t.ID+"@"+start.UTC().Format(time.RFC3339Nano))).String(),
				Start:     start,
				End:       end,
			})

			rem := bufferedRange(start, end, t.BufferBefore, t.BufferAfter)
			t.Commit(d)

			if t.IsFullyScheduled() {
				*overlap = overlap.Subtract(dt)
			} else {
				newDT := dt.Remove(rem.Start, rem.End)
				entry.Domain = newDT
				entry.Pressure = Pressure(newDT, *overlap, t.RemainingDuration)
				h.PushEntry(entry)
			}

			for _, other := range h.Entries() {
				other.Domain = other.Domain.Remove(rem.Start, rem.End)
				if other.Domain.TotalTime() < other.Task.RemainingDuration {
					return Result{}, &solveerr.InconsistentStateError{
						TaskID: other.Task.ID,
						Detail: "remaining eligible time fell below remaining duration after a commit",
					}
				}
				other.Pressure = Pressure(other.Domain, *overlap, other.Task.RemainingDuration)
			}
			h.Rebuild()

			committed = true
			break
		}
		if !committed {
			result.Residuals[t.ID] += t.RemainingDuration
		}
	}

	return result, nil
}

func pruneShorterThan(d timedomain.Domain, min time.Duration) timedomain.Domain {
	out := timedomain.Empty()
	for _, e := range d.Entries() {
		if e.Duration() >= min {
			out = out.Union(timedomain.Single(e.Start, e.End, e.Weight))
		}
	}
	return out
}

// bestCompatibleDuration binary-searches the grid for the longest
// duration d in [effectiveMin, maxCandidate] such that placing the slot
// [start, start+d] (buffered) leaves every other queued task enough
// slack to still fit its own remaining duration (spec section 4.4 step
// 4). Returns ok=false if even effectiveMin is incompatible.
func bestCompatibleDuration(t *domain.Task, slot timedomain.Entry, effectiveMin, maxCandidate time.Duration, others []*Entry) (time.Duration, bool) {
	if effectiveMin > maxCandidate {
		return 0, false
	}
	compatible := func(d time.Duration) bool {
		rem := bufferedRange(slot.Start, slot.Start.Add(d), t.BufferBefore, t.BufferAfter)
		for _, other := range others {
			cost := other.Domain.Slice(rem.Start, rem.End).TotalTime()
			slack := other.Domain.TotalTime() - other.Task.RemainingDuration
			if slack < cost {
				return false
			}
		}
		return true
	}

	if !compatible(effectiveMin) {
		return 0, false
	}

	lo, hi := effectiveMin, maxCandidate
	best := lo
	for i := 0; i < 12 && lo <= hi; i++ {
		mid := domain.FloorToGrid(lo + (hi-lo)/2)
		if mid < lo {
			mid = lo
		}
		if compatible(mid) {
			best = mid
			lo = mid + domain.Quantum
		} else {
			if mid < domain.Quantum {
				break
			}
			hi = mid - domain.Quantum
		}
	}
	return best, true
}
