package timedomain

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2023, 10, 2, 0, 0, 0, 0, time.UTC)

func at(h, m int) time.Time {
	return base.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

func TestSingle_DegenerateIsEmpty(t *testing.T) {
	d := Single(at(1, 0), at(1, 0), 1)
	assert.True(t, d.IsEmpty())
	d2 := Single(at(2, 0), at(1, 0), 1)
	assert.True(t, d2.IsEmpty())
}

func TestAdd_SumsOverlap(t *testing.T) {
	a := Single(at(0, 0), at(2, 0), 1)
	b := Single(at(1, 0), at(3, 0), 2)
	sum := a.Add(b)
	entries := sum.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, 1, entries[0].Weight) // [0,1): only a
	assert.Equal(t, 3, entries[1].Weight) // [1,2): a+b
	assert.Equal(t, 2, entries[2].Weight) // [2,3): only b
}

func TestSubtract_RestrictedToSelfSupport(t *testing.T) {
	a := Single(at(0, 0), at(2, 0), 3)
	b := Single(at(1, 0), at(4, 0), 1) // b extends beyond a's support
	result := a.Subtract(b)
	entries := result.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, at(0, 0), entries[0].Start)
	assert.Equal(t, at(1, 0), entries[0].End)
	assert.Equal(t, 3, entries[0].Weight)
	assert.Equal(t, at(1, 0), entries[1].Start)
	assert.Equal(t, at(2, 0), entries[1].End)
	assert.Equal(t, 2, entries[1].Weight) // 3 - 1
	// subtract never introduces a key beyond self's support
	assert.True(t, result.TrimLeft(at(2, 0)).IsEmpty())
}

func TestDifference_RemovesOtherSupportEntirely(t *testing.T) {
	a := Single(at(0, 0), at(4, 0), 1)
	b := Single(at(1, 0), at(2, 0), 99)
	result := a.Difference(b)
	entries := result.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, at(0, 0), entries[0].Start)
	assert.Equal(t, at(1, 0), entries[0].End)
	assert.Equal(t, at(2, 0), entries[1].Start)
	assert.Equal(t, at(4, 0), entries[1].End)
}

func TestIntersection_KeepsSelfWeight(t *testing.T) {
	a := Single(at(0, 0), at(4, 0), 7)
	b := Single(at(1, 0), at(2, 0), 1)
	result := a.Intersection(b)
	entries := result.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, 7, entries[0].Weight)
	assert.Equal(t, at(1, 0), entries[0].Start)
	assert.Equal(t, at(2, 0), entries[0].End)
}

func TestUnion_KeepsSelfWeightWhereBothPresent(t *testing.T) {
	a := Single(at(0, 0), at(2, 0), 5)
	b := Single(at(1, 0), at(3, 0), 9)
	result := a.Union(b)
	entries := result.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, 5, entries[0].Weight) // [0,2) self weight even where b also present
	assert.Equal(t, 9, entries[1].Weight) // [2,3) only b
}

func TestTrimLeft(t *testing.T) {
	d := Single(at(0, 0), at(4, 0), 1)
	trimmed := d.TrimLeft(at(2, 0))
	entries := trimmed.Entries()
	require.Len(t, entries, 1)
	assert.False(t, entries[0].Start.Before(at(2, 0)))
}

func TestTrimRight(t *testing.T) {
	d := Single(at(0, 0), at(4, 0), 1)
	trimmed := d.TrimRight(at(2, 0))
	entries := trimmed.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, at(2, 0), entries[0].End)
}

func TestRemove_SplitsAtBoundary(t *testing.T) {
	d := Single(at(0, 0), at(4, 0), 1)
	result := d.Remove(at(1, 0), at(2, 0))
	entries := result.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, at(0, 0), entries[0].Start)
	assert.Equal(t, at(1, 0), entries[0].End)
	assert.Equal(t, at(2, 0), entries[1].Start)
	assert.Equal(t, at(4, 0), entries[1].End)
}

func TestEndingBeforeStarting_NoOverlapAtSharedBoundary(t *testing.T) {
	a := Entry{Start: at(0, 0), End: at(1, 0)}
	b := Entry{Start: at(1, 0), End: at(2, 0)}
	assert.False(t, a.Overlaps(b))
}

func TestCoalesce_SameWeightAdjacentMerge(t *testing.T) {
	a := Single(at(0, 0), at(1, 0), 1)
	b := Single(at(1, 0), at(2, 0), 1)
	merged := a.Union(b)
	entries := merged.Entries()
	require.Len(t, entries, 1, "adjacent equal-weight pieces coalesce")
	assert.Equal(t, at(0, 0), entries[0].Start)
	assert.Equal(t, at(2, 0), entries[0].End)
}

func TestCoalesce_DifferentWeightAdjacentNotMerged(t *testing.T) {
	a := Single(at(0, 0), at(1, 0), 1)
	b := Single(at(1, 0), at(2, 0), 2)
	merged := a.Union(b)
	entries := merged.Entries()
	require.Len(t, entries, 2, "adjacent different-weight pieces must not coalesce")
}

func TestTotalTime(t *testing.T) {
	d := Single(at(0, 0), at(1, 30), 1)
	assert.Equal(t, 90*time.Minute, d.TotalTime())
}

func TestTotalWeightedTime(t *testing.T) {
	d := Single(at(0, 0), at(1, 0), 3)
	assert.Equal(t, 3*time.Hour, d.TotalWeightedTime())
}

func TestDensity_ZeroDuration(t *testing.T) {
	assert.Equal(t, 0.0, Density(time.Hour, 0))
}

// --- property tests mirroring spec section 8's testable laws ---

func randomDomain(rng *rand.Rand, n int) Domain {
	d := Empty()
	cursor := 0
	for i := 0; i < n; i++ {
		cursor += rng.Intn(60)
		start := base.Add(time.Duration(cursor) * time.Minute)
		span := rng.Intn(120) + 5
		cursor += span
		end := base.Add(time.Duration(cursor) * time.Minute)
		weight := rng.Intn(4)
		d = d.Union(Single(start, end, weight))
	}
	return d
}

func TestProperty_AddThenSubtractRestoresSelf(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		a := randomDomain(rng, rng.Intn(6)+1)
		b := randomDomain(rng, rng.Intn(6)+1)

		result := a.Add(b).Subtract(b)
		// restricted to support(a): every entry of a, recomputed weight must
		// match a's original weight on that exact span.
		for _, ea := range a.Entries() {
			got := result.Slice(ea.Start, ea.End)
			want := Single(ea.Start, ea.End, ea.Weight)
			assertSameWeightedTime(t, trial, want, got)
		}
	}
}

func TestProperty_DifferenceThenIntersectionIsEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 200; trial++ {
		a := randomDomain(rng, rng.Intn(6)+1)
		b := randomDomain(rng, rng.Intn(6)+1)

		result := a.Difference(b).Intersection(b)
		assert.True(t, result.IsEmpty(), "trial %d: difference(B).intersection(B) must be empty", trial)
	}
}

func TestProperty_UnionTotalTimeBound(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	for trial := 0; trial < 200; trial++ {
		a := randomDomain(rng, rng.Intn(6)+1)
		b := randomDomain(rng, rng.Intn(6)+1)

		union := a.Union(b)
		assert.LessOrEqual(t, union.TotalTime(), a.TotalTime()+b.TotalTime(),
			"trial %d: total_time(union) must not exceed sum of parts", trial)
	}
}

func TestProperty_TrimLeftLowerBound(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for trial := 0; trial < 200; trial++ {
		a := randomDomain(rng, rng.Intn(6)+1)
		cut := base.Add(time.Duration(rng.Intn(600)) * time.Minute)

		trimmed := a.TrimLeft(cut)
		for _, e := range trimmed.Entries() {
			assert.False(t, e.Start.Before(cut), "trial %d: every piece must start at or after the trim point", trial)
		}
	}
}

// assertSameWeightedTime compares two domains by total weighted time over
// their shared span, tolerating the zero-weight "still in support" pieces
// subtract can legitimately leave behind.
func assertSameWeightedTime(t *testing.T, trial int, want, got Domain) {
	t.Helper()
	assert.Equal(t, want.TotalWeightedTime(), got.TotalWeightedTime(), "trial %d", trial)
}
