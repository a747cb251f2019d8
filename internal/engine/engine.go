package engine

// Engine is a fixed-capacity collection of Doctor Timelines, keyed by
// doctor id, plus the one process-wide mutable state spec.md §5 allows: a
// monotonically increasing event id counter.
//
// Engine is not safe for concurrent use. Spec.md §5 specifies a
// single-threaded cooperative model: the caller (the shell in
// internal/proto) processes one request to completion before starting the
// next. A sharded, concurrent-safe Engine is possible — state is already
// partitioned strictly by doctor id — but is not attempted here, per
// spec.md §5's "MAY shard by doctor" being a possibility, not a
// requirement.
type Engine struct {
	cfg       Config
	timelines []*timeline
	nextID    int
}

// New builds an Engine ready to accept requests, the Go-idiomatic
// replacement for the C source's package-level globals and its
// init_scheduler() call (SPEC_FULL.md §11).
func New(cfg Config) *Engine {
	e := &Engine{
		cfg:       cfg,
		timelines: make([]*timeline, cfg.Doctors),
		nextID:    1,
	}
	for i := range e.timelines {
		e.timelines[i] = newTimeline()
	}
	return e
}

func (e *Engine) timelineFor(doctor int) (*timeline, error) {
	if !e.cfg.validDoctor(doctor) {
		return nil, ErrInvalidDoctor
	}
	return e.timelines[doctor], nil
}

// AddEvent implements spec.md §4.6's add_event: validates preconditions in
// order, aborting on the first failure without mutating any state, then
// mints and inserts a new event into every index.
func (e *Engine) AddEvent(doctor, start, duration int, kind Kind, breakKind BreakKind, description string) (int, error) {
	if duration <= 0 || start < 0 {
		return 0, ErrInvalidArgument
	}
	t, err := e.timelineFor(doctor)
	if err != nil {
		return 0, err
	}

	if t.store.count() >= e.cfg.MaxTotal {
		return 0, ErrCapacityExceeded
	}
	if t.dailyCountFor(start) >= e.cfg.MaxDaily {
		return 0, ErrCapacityExceeded
	}
	if existing, collides := t.collides(start, start+duration); collides {
		return 0, &CollisionError{ExistingStart: existing.Start, ExistingEnd: existing.End}
	}

	id := e.nextID
	e.nextID++
	ev := t.store.create(id, doctor, start, duration, kind, breakKind, description)
	t.insert(ev)
	return id, nil
}

// SuggestSlot implements spec.md §4.6's suggest_slot: the smallest
// 15-minute-lattice candidate in [dayStart+480, dayStart+1200] whose
// [t, t+duration) does not collide with any stored event, or -1 if none
// exists in that window. It never mutates state.
func (e *Engine) SuggestSlot(doctor, duration, dayStartMinutes int) (int, error) {
	t, err := e.timelineFor(doctor)
	if err != nil {
		return 0, err
	}
	const (
		windowOpen  = 480
		windowClose = 1200
		lattice     = 15
	)
	for offset := windowOpen; offset <= windowClose; offset += lattice {
		candidate := dayStartMinutes + offset
		if _, collides := t.collides(candidate, candidate+duration); !collides {
			return candidate, nil
		}
	}
	return -1, nil
}

// UndoLast implements spec.md §4.6's undo_last: pops one id from the
// doctor's undo log and removes the corresponding event from every index.
// An empty log is a silent no-op that still reports success, per spec.md
// §4.5.
func (e *Engine) UndoLast(doctor int) error {
	t, err := e.timelineFor(doctor)
	if err != nil {
		return err
	}
	id := t.undo.pop()
	if id == noUndo {
		return nil
	}
	ev, ok := t.ids.lookup(id)
	if !ok {
		// Invariant 3 (spec.md §3) guarantees this cannot happen: every id
		// pushed onto the undo log was also inserted into the id map, and
		// undo is the only way either is removed, in lockstep. Treated as
		// a no-op rather than a panic, matching spec.md §4.8's guidance
		// that only input-precondition violations may panic.
		return nil
	}
	t.removeLive(ev)
	return nil
}

// GetEventsOrdered implements spec.md §4.6's get_events_ordered: a
// read-only, start-time-ordered snapshot suitable for serialization.
func (e *Engine) GetEventsOrdered(doctor int) ([]Event, error) {
	t, err := e.timelineFor(doctor)
	if err != nil {
		return nil, err
	}
	return t.eventsOrdered(), nil
}

// TimeToNextEvent implements spec.md §4.6's time_to_next_event: the
// smallest non-negative Start-currentMinutes over all live events, or -1
// if none is upcoming.
func (e *Engine) TimeToNextEvent(doctor, currentMinutes int) (int, error) {
	t, err := e.timelineFor(doctor)
	if err != nil {
		return 0, err
	}
	for _, ev := range t.eventsOrdered() {
		if ev.Start >= currentMinutes {
			// eventsOrdered is ascending by Start, so the first qualifying
			// event is also the nearest one.
			return ev.Start - currentMinutes, nil
		}
	}
	return -1, nil
}
