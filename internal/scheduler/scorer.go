package scheduler

import (
	"math"
	"sort"

	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/alexanderramin/horizon/internal/timedomain"
)

// Weights controls the composite slot score's three terms (spec section
// 4.4 step 3). DefaultWeights matches the spec's stated coefficients;
// callers may override for experimentation without touching the scoring
// code itself.
type Weights struct {
	Overlap   float64
	LengthFit float64
	Deadline  float64
}

// DefaultWeights returns the spec's composite score coefficients.
func DefaultWeights() Weights {
	return Weights{Overlap: 0.4, LengthFit: 0.3, Deadline: 1.0}
}

type scoredSlot struct {
	Entry timedomain.Entry
	Score float64
}

// CandidateSlots scores every atomic piece of dt and returns them
// best-first: lowest composite score wins, ties break on earlier start
// then shorter duration, giving a fully deterministic order.
func CandidateSlots(dt timedomain.Domain, overlap timedomain.Domain, t *domain.Task, w Weights) []timedomain.Entry {
	entries := dt.Entries()
	scored := make([]scoredSlot, 0, len(entries))
	for _, e := range entries {
		scored = append(scored, scoredSlot{Entry: e, Score: compositeScore(e, overlap, t, w)})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score < scored[j].Score
		}
		if !scored[i].Entry.Start.Equal(scored[j].Entry.Start) {
			return scored[i].Entry.Start.Before(scored[j].Entry.Start)
		}
		return scored[i].Entry.Duration() < scored[j].Entry.Duration()
	})
	out := make([]timedomain.Entry, len(scored))
	for i, s := range scored {
		out[i] = s.Entry
	}
	return out
}

func compositeScore(s timedomain.Entry, overlap timedomain.Domain, t *domain.Task, w Weights) float64 {
	return w.Overlap*overlapScore(overlap, s) + w.LengthFit*lengthFitScore(s, t) + w.Deadline*deadlineProximityScore(s, t)
}

// overlapScore is the average overlap weight across the slot: higher
// where more other tasks could also use this time. Since lower composite
// scores sort first, heavily contested slots are tried later.
func overlapScore(overlap timedomain.Domain, s timedomain.Entry) float64 {
	if s.Duration() <= 0 {
		return 0
	}
	sliced := overlap.Slice(s.Start, s.End)
	return timedomain.Density(sliced.TotalWeightedTime(), s.Duration())
}

// lengthFitScore penalizes slots whose length is far from the task's
// effective ideal session length; 0 is a perfect fit.
func lengthFitScore(s timedomain.Entry, t *domain.Task) float64 {
	ideal := t.EffectiveMaxSessionLength()
	if ideal <= 0 {
		return 0
	}
	return math.Abs(float64(s.Duration())-float64(ideal)) / float64(ideal)
}

// deadlineProximityScore grows as a slot's end approaches the task's due
// date (capped at 1 within a day of it), so with lower composite scores
// sorting first, slots well ahead of the deadline are preferred; tasks
// with no due date contribute nothing, as if infinitely far.
func deadlineProximityScore(s timedomain.Entry, t *domain.Task) float64 {
	if t.Due == nil {
		return 0
	}
	days := t.Due.Sub(s.End).Hours() / 24
	if days < 1 {
		days = 1
	}
	return 1.0 / days
}
