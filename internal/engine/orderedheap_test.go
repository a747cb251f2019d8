package engine

import "testing"

func TestOrderedViewIterationIsSorted(t *testing.T) {
	ov := newOrderedView()
	ov.insert(Event{ID: 3, Start: 300})
	ov.insert(Event{ID: 1, Start: 100})
	ov.insert(Event{ID: 2, Start: 200})

	got := ov.iterateInOrder()
	want := []int{100, 200, 300}
	for i, e := range got {
		if e.Start != want[i] {
			t.Fatalf("position %d: expected start %d, got %d", i, want[i], e.Start)
		}
	}
}

func TestOrderedViewTieBreaksByID(t *testing.T) {
	ov := newOrderedView()
	ov.insert(Event{ID: 5, Start: 100})
	ov.insert(Event{ID: 2, Start: 100})
	ov.insert(Event{ID: 8, Start: 100})

	got := ov.iterateInOrder()
	want := []int{2, 5, 8}
	for i, e := range got {
		if e.ID != want[i] {
			t.Fatalf("position %d: expected id %d, got %d", i, want[i], e.ID)
		}
	}
}

func TestOrderedViewRemoveByID(t *testing.T) {
	ov := newOrderedView()
	ov.insert(Event{ID: 1, Start: 100})
	ov.insert(Event{ID: 2, Start: 200})
	ov.insert(Event{ID: 3, Start: 300})

	removed, ok := ov.removeByID(2)
	if !ok || removed.ID != 2 {
		t.Fatalf("expected to remove event 2, got %+v ok=%v", removed, ok)
	}
	if ov.len() != 2 {
		t.Fatalf("expected 2 remaining events, got %d", ov.len())
	}

	if _, ok := ov.removeByID(999); ok {
		t.Fatal("expected removing a missing id to report false")
	}
}

func TestOrderedViewIterationDoesNotMutate(t *testing.T) {
	ov := newOrderedView()
	ov.insert(Event{ID: 1, Start: 200})
	ov.insert(Event{ID: 2, Start: 100})

	first := ov.iterateInOrder()
	second := ov.iterateInOrder()
	if len(first) != len(second) || first[0].ID != second[0].ID {
		t.Fatalf("expected repeated iteration to be idempotent: %+v vs %+v", first, second)
	}
	if ov.len() != 2 {
		t.Fatalf("expected iteration to leave the heap untouched, len=%d", ov.len())
	}
}
