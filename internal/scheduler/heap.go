// Package scheduler implements the placement loop (spec section 4.4):
// pruning, composite slot scoring, binary-search duration selection, and
// the commit/update cycle that drains the presolver's priority queue.
package scheduler

import (
	"container/heap"

	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/alexanderramin/horizon/internal/timedomain"
)

// Entry is one priority-queue item: a task, its current working
// eligibility domain, its topological rank, and its cached pressure
// score. The presolver seeds a Heap of these; the placement loop mutates
// Domain and Pressure in place and rebuilds heap order after every
// commit.
type Entry struct {
	Task     *domain.Task
	Domain   timedomain.Domain
	Rank     int
	Pressure float64
}

// Heap orders entries by ascending rank, then descending pressure, then
// ascending task ID — dependency targets and contested tasks surface
// first, with a deterministic tie-break so two runs over the same input
// always pop in the same order (spec section 5, determinism guarantee).
type Heap struct {
	entries []*Entry
}

// NewHeap returns an empty, ready-to-use Heap.
func NewHeap() *Heap { return &Heap{} }

func (h *Heap) Len() int { return len(h.entries) }

func (h *Heap) Less(i, j int) bool {
	a, b := h.entries[i], h.entries[j]
	if a.Rank != b.Rank {
		return a.Rank < b.Rank
	}
	if a.Pressure != b.Pressure {
		return a.Pressure > b.Pressure
	}
	return a.Task.ID < b.Task.ID
}

func (h *Heap) Swap(i, j int) { h.entries[i], h.entries[j] = h.entries[j], h.entries[i] }

func (h *Heap) Push(x any) { h.entries = append(h.entries, x.(*Entry)) }

func (h *Heap) Pop() any {
	old := h.entries
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	h.entries = old[:n-1]
	return item
}

// Entries exposes the heap's current contents, unordered. The placement
// loop uses it to check compatibility of a candidate session against
// every other task still queued.
func (h *Heap) Entries() []*Entry { return h.entries }

// PushEntry pushes e onto the heap, restoring heap order.
func (h *Heap) PushEntry(e *Entry) { heap.Push(h, e) }

// PopEntry removes and returns the lowest-(rank,-pressure,id) entry.
func (h *Heap) PopEntry() *Entry { return heap.Pop(h).(*Entry) }

// Rebuild restores heap order after entries have been mutated in place,
// required after every commit since every remaining entry's domain and
// pressure change (spec section 4.4 step 6).
func (h *Heap) Rebuild() { heap.Init(h) }
