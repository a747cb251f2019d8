package engine

// idBuckets is the fixed bucket count for the id→event map, matching the
// C source's HASH_SIZE (spec.md §4.4 gives 1024 as the reference size; we
// use the same order of magnitude).
const idBuckets = 1024

// idMap is a bounded hash map from event id to Event, used to resolve undo
// in expected O(1) (spec.md §4.4). It is separate chaining over a fixed
// bucket count, the reference design; Go's built-in map would do this job
// in one line, but the chained-bucket shape is kept to mirror the C
// original's event_hash_map, generalized to a single doctor's id space
// (the C source keyed by [doctor_id][bucket]; here one idMap belongs to
// one Timeline).
type idMap struct {
	buckets [idBuckets][]Event
}

func (m *idMap) insert(e Event) {
	k := e.ID % idBuckets
	m.buckets[k] = append(m.buckets[k], e)
}

func (m *idMap) remove(id int) {
	k := id % idBuckets
	chain := m.buckets[k]
	for i, e := range chain {
		if e.ID == id {
			m.buckets[k] = append(chain[:i], chain[i+1:]...)
			return
		}
	}
}

func (m *idMap) lookup(id int) (Event, bool) {
	k := id % idBuckets
	for _, e := range m.buckets[k] {
		if e.ID == id {
			return e, true
		}
	}
	return Event{}, false
}
