package engine

// eventStore owns the live event records for one doctor. It is the single
// owner referred to in spec.md §9 ("single owner / non-owning handles
// ... in every other index"); the interval index, ordered view, and id map
// all hold copies of the same immutable Event value, never a pointer back
// into this store, so there is nothing to keep in sync by aliasing.
type eventStore struct {
	live map[int]Event
}

func newEventStore() *eventStore {
	return &eventStore{live: make(map[int]Event)}
}

// create mints an Event with the given id and records it as live. The
// caller (the orchestrator in engine.go) has already performed every check
// in spec.md §4.6 before calling this, so create is infallible.
func (s *eventStore) create(id, doctor, start, duration int, kind Kind, breakKind BreakKind, desc string) Event {
	e := Event{
		ID:          id,
		DoctorID:    doctor,
		Start:       start,
		Duration:    duration,
		End:         start + duration,
		Kind:        kind,
		BreakKind:   breakKind,
		Description: truncateDescription(desc),
	}
	s.live[id] = e
	return e
}

// destroy removes an event from the live set. Called only from undo
// (spec.md §4.7: "Only undo_last triggers Live→Destroyed").
func (s *eventStore) destroy(id int) {
	delete(s.live, id)
}

func (s *eventStore) count() int {
	return len(s.live)
}
