package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/horizon/internal/domain"
)

func TestCanonicalOrder_RankThenPressureThenID(t *testing.T) {
	a := &Entry{Task: &domain.Task{ID: "b"}, Rank: 0, Pressure: 1.0}
	b := &Entry{Task: &domain.Task{ID: "a"}, Rank: 0, Pressure: 1.0}
	c := &Entry{Task: &domain.Task{ID: "c"}, Rank: 0, Pressure: 5.0}
	d := &Entry{Task: &domain.Task{ID: "d"}, Rank: 1, Pressure: 99.0}

	ordered := CanonicalOrder([]*Entry{a, b, c, d})
	ids := make([]string, len(ordered))
	for i, e := range ordered {
		ids[i] = e.Task.ID
	}
	assert.Equal(t, []string{"c", "a", "b", "d"}, ids)
}

func TestCanonicalOrder_DoesNotMutateInput(t *testing.T) {
	entries := []*Entry{
		{Task: &domain.Task{ID: "z"}, Rank: 0},
		{Task: &domain.Task{ID: "a"}, Rank: 0},
	}
	_ = CanonicalOrder(entries)
	assert.Equal(t, "z", entries[0].Task.ID)
}
