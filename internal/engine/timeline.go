package engine

// timeline aggregates the four indices spec.md §2 requires for one
// doctor's live event set, plus the per-doctor undo log and an auxiliary
// per-day counter (spec.md §9's permitted optimization over a heap linear
// scan for the daily-limit check).
type timeline struct {
	store      *eventStore
	intervals  *intervalTree
	ordered    *orderedView
	ids        *idMap
	undo       *undoLog
	dailyCount map[int]int // calendar day -> live event count
}

func newTimeline() *timeline {
	return &timeline{
		store:      newEventStore(),
		intervals:  &intervalTree{},
		ordered:    newOrderedView(),
		ids:        &idMap{},
		undo:       &undoLog{},
		dailyCount: make(map[int]int),
	}
}

// collides reports the first event overlapping [start, end), if any.
func (t *timeline) collides(start, end int) (Event, bool) {
	return t.intervals.collision(start, end)
}

// dailyCountFor returns the number of live events on the calendar day that
// start falls on.
func (t *timeline) dailyCountFor(start int) int {
	return t.dailyCount[floorDiv(start, minutesPerDay)]
}

// insert adds e to every index and pushes its id onto the undo log, the
// final step of a successful add_event (spec.md §4.6 step 5).
func (t *timeline) insert(e Event) {
	t.intervals.insert(e)
	t.ordered.insert(e)
	t.ids.insert(e)
	t.undo.push(e.ID)
	t.dailyCount[e.day()]++
}

// removeLive removes e from every index and the store, the core of undo
// (spec.md §4.6 "undo_last").
func (t *timeline) removeLive(e Event) {
	t.ordered.removeByID(e.ID)
	t.ids.remove(e.ID)
	t.store.destroy(e.ID)
	t.dailyCount[e.day()]--
	if t.dailyCount[e.day()] <= 0 {
		delete(t.dailyCount, e.day())
	}
	// Interval index deletion is a full rebuild from the ordered view,
	// the accepted tradeoff in spec.md §4.2/§9.
	t.intervals.rebuild(t.ordered.iterateInOrder())
}

func (t *timeline) eventsOrdered() []Event {
	return t.ordered.iterateInOrder()
}
