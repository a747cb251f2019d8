package engine

import "container/heap"

// orderedView yields a doctor's live events in ascending Start order. It is
// a min-heap keyed by Start, the reference design in spec.md §4.3,
// implemented atop the standard library's container/heap rather than the C
// source's hand-rolled array heap.
//
// Ties on Start are broken by ID, which keeps iteration order deterministic
// within one process run (spec.md §4.3: "tie-break order is unspecified but
// must be deterministic").
type orderedView struct {
	h eventHeap
}

func newOrderedView() *orderedView {
	ov := &orderedView{}
	heap.Init(&ov.h)
	return ov
}

func (ov *orderedView) insert(e Event) {
	heap.Push(&ov.h, e)
}

// removeByID performs the O(n) linear scan spec.md §4.3 calls out as
// acceptable given MAX_TOTAL, followed by heap repair.
func (ov *orderedView) removeByID(id int) (Event, bool) {
	for i, e := range ov.h {
		if e.ID == id {
			removed := heap.Remove(&ov.h, i)
			return removed.(Event), true
		}
	}
	return Event{}, false
}

func (ov *orderedView) len() int {
	return ov.h.Len()
}

// iterateInOrder returns a start-time-sorted snapshot. It never mutates the
// underlying heap: the heap's backing slice is copied and the copy is
// sorted independently, so repeated calls are idempotent and the live heap
// invariant is undisturbed.
func (ov *orderedView) iterateInOrder() []Event {
	snapshot := make(eventHeap, len(ov.h))
	copy(snapshot, ov.h)
	out := make([]Event, 0, len(snapshot))
	for snapshot.Len() > 0 {
		out = append(out, heap.Pop(&snapshot).(Event))
	}
	return out
}

// eventHeap implements container/heap.Interface, ordered by Start then ID.
type eventHeap []Event

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	if h[i].Start != h[j].Start {
		return h[i].Start < h[j].Start
	}
	return h[i].ID < h[j].ID
}

func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x any) {
	*h = append(*h, x.(Event))
}

func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
