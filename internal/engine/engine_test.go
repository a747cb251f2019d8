package engine

import (
	"testing"

	"github.com/k0kubun/pp"
)

func newTestEngine() *Engine {
	return New(DefaultConfig())
}

func TestBasicAdd(t *testing.T) {
	e := newTestEngine()
	id, err := e.AddEvent(0, 600, 30, Patient, BreakNone, "checkup")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 1 {
		t.Fatalf("expected id 1, got %d", id)
	}

	events, err := e.GetEventsOrdered(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d: %s", len(events), pp.Sprint(events))
	}
	got := events[0]
	if got.ID != 1 || got.Start != 600 || got.Duration != 30 || got.Kind != Patient || got.BreakKind != BreakNone || got.Description != "checkup" {
		t.Fatalf("unexpected event: %s", pp.Sprint(got))
	}
}

func TestCollision(t *testing.T) {
	e := newTestEngine()
	if _, err := e.AddEvent(0, 600, 30, Patient, BreakNone, "checkup"); err != nil {
		t.Fatalf("setup add failed: %v", err)
	}

	_, err := e.AddEvent(0, 610, 30, Patient, BreakNone, "other")
	ce, ok := err.(*CollisionError)
	if !ok {
		t.Fatalf("expected *CollisionError, got %v", err)
	}
	if ce.ExistingStart != 600 || ce.ExistingEnd != 630 {
		t.Fatalf("unexpected collision bounds: %+v", ce)
	}
}

func TestTouchBoundaryAllowed(t *testing.T) {
	e := newTestEngine()
	if _, err := e.AddEvent(0, 600, 30, Patient, BreakNone, "checkup"); err != nil {
		t.Fatalf("setup add failed: %v", err)
	}
	if _, err := e.AddEvent(0, 630, 30, Patient, BreakNone, "next"); err != nil {
		t.Fatalf("expected touch-boundary add to succeed, got: %v", err)
	}
}

func TestDailyLimit(t *testing.T) {
	e := newTestEngine()
	for i := 0; i < 7; i++ {
		start := i * 60
		if _, err := e.AddEvent(0, start, 30, Patient, BreakNone, "appt"); err != nil {
			t.Fatalf("add %d failed: %v", i, err)
		}
	}
	if _, err := e.AddEvent(0, 7*60, 30, Patient, BreakNone, "eighth"); err != ErrCapacityExceeded {
		t.Fatalf("expected ErrCapacityExceeded on 8th same-day add, got: %v", err)
	}
	if _, err := e.AddEvent(0, minutesPerDay, 30, Patient, BreakNone, "nextday"); err != nil {
		t.Fatalf("expected next-day add to succeed, got: %v", err)
	}
}

func TestUndoThenReAddGetsNewID(t *testing.T) {
	e := newTestEngine()
	if _, err := e.AddEvent(0, 600, 30, Patient, BreakNone, "checkup"); err != nil {
		t.Fatalf("setup add failed: %v", err)
	}
	if err := e.UndoLast(0); err != nil {
		t.Fatalf("undo failed: %v", err)
	}
	events, _ := e.GetEventsOrdered(0)
	if len(events) != 0 {
		t.Fatalf("expected empty timeline after undo, got %s", pp.Sprint(events))
	}

	id, err := e.AddEvent(0, 600, 30, Patient, BreakNone, "checkup")
	if err != nil {
		t.Fatalf("re-add failed: %v", err)
	}
	if id != 2 {
		t.Fatalf("expected re-add to get id 2, got %d", id)
	}
}

func TestUndoEmptyLogIsNoOp(t *testing.T) {
	e := newTestEngine()
	if err := e.UndoLast(0); err != nil {
		t.Fatalf("undo on empty log should succeed, got: %v", err)
	}
	events, _ := e.GetEventsOrdered(0)
	if len(events) != 0 {
		t.Fatalf("expected no events, got %s", pp.Sprint(events))
	}
}

func TestSuggestSlot(t *testing.T) {
	e := newTestEngine()
	if _, err := e.AddEvent(1, 480, 30, Patient, BreakNone, "a"); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	if _, err := e.AddEvent(1, 540, 30, Patient, BreakNone, "b"); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	slot, err := e.SuggestSlot(1, 30, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slot != 510 {
		t.Fatalf("expected suggestion 510, got %d", slot)
	}

	// The suggestion must actually be addable without collision.
	if _, err := e.AddEvent(1, slot, 30, Patient, BreakNone, "suggested"); err != nil {
		t.Fatalf("suggested slot should not collide: %v", err)
	}
}

func TestSuggestSlotNoneAvailable(t *testing.T) {
	e := newTestEngine()
	// Fill the entire 08:00-20:30 window with one giant event so nothing
	// in [480, 1200] fits a 30-minute slot.
	if _, err := e.AddEvent(2, 480, 1200-480+30, Patient, BreakNone, "all day"); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	slot, err := e.SuggestSlot(2, 30, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slot != -1 {
		t.Fatalf("expected -1, got %d", slot)
	}
}

func TestAlert(t *testing.T) {
	e := newTestEngine()
	if _, err := e.AddEvent(0, 1000, 30, Patient, BreakNone, "checkup"); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	diff, err := e.TimeToNextEvent(0, 950)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff != 50 {
		t.Fatalf("expected 50, got %d", diff)
	}

	diff, err = e.TimeToNextEvent(0, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff != 0 {
		t.Fatalf("expected 0 for an event starting exactly now, got %d", diff)
	}
}

func TestAlertNoEvents(t *testing.T) {
	e := newTestEngine()
	diff, err := e.TimeToNextEvent(0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff != -1 {
		t.Fatalf("expected -1, got %d", diff)
	}
}

func TestInvalidDoctorRejected(t *testing.T) {
	e := newTestEngine()
	if _, err := e.AddEvent(-1, 0, 30, Patient, BreakNone, "x"); err != ErrInvalidDoctor {
		t.Fatalf("expected ErrInvalidDoctor, got %v", err)
	}
	if _, err := e.AddEvent(100, 0, 30, Patient, BreakNone, "x"); err != ErrInvalidDoctor {
		t.Fatalf("expected ErrInvalidDoctor, got %v", err)
	}
}

func TestInvalidArgumentRejected(t *testing.T) {
	e := newTestEngine()
	if _, err := e.AddEvent(0, 0, 0, Patient, BreakNone, "x"); err != ErrInvalidArgument {
		t.Fatalf("expected ErrInvalidArgument for zero duration, got %v", err)
	}
	if _, err := e.AddEvent(0, -1, 30, Patient, BreakNone, "x"); err != ErrInvalidArgument {
		t.Fatalf("expected ErrInvalidArgument for negative start, got %v", err)
	}
}

func TestDescriptionTruncated(t *testing.T) {
	e := newTestEngine()
	long := make([]byte, 150)
	for i := range long {
		long[i] = 'a'
	}
	if _, err := e.AddEvent(0, 0, 30, Patient, BreakNone, string(long)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	events, _ := e.GetEventsOrdered(0)
	if len(events[0].Description) != maxDescriptionLen {
		t.Fatalf("expected description truncated to %d, got %d", maxDescriptionLen, len(events[0].Description))
	}
}

func TestDoctorsAreIndependent(t *testing.T) {
	e := newTestEngine()
	if _, err := e.AddEvent(0, 600, 30, Patient, BreakNone, "a"); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	if _, err := e.AddEvent(1, 600, 30, Patient, BreakNone, "b"); err != nil {
		t.Fatalf("expected doctor 1 to be unaffected by doctor 0's schedule: %v", err)
	}
}
