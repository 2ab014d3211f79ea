package league

// groups holds records bucketed by key. Keys iterate in the order they were
// first seen in the source slice; extremum selection relies on that order.
type groups[K comparable, T any] struct {
	order   []K
	members map[K][]T
}

func groupBy[K comparable, T any](records []T, key func(T) K) *groups[K, T] {
	g := &groups[K, T]{members: make(map[K][]T)}
	for _, rec := range records {
		k := key(rec)
		if _, exists := g.members[k]; !exists {
			g.order = append(g.order, k)
		}
		g.members[k] = append(g.members[k], rec)
	}
	return g
}

// reduce collapses every group to a scalar, keeping key order.
func reduce[K comparable, T any, V any](g *groups[K, T], fn func([]T) V) *tally[K, V] {
	t := newTally[K, V]()
	for _, k := range g.order {
		t.set(k, fn(g.members[k]))
	}
	return t
}

// tally is an insertion-ordered map with an explicit get-or-zero accessor.
// Reading a missing key never inserts it.
type tally[K comparable, V any] struct {
	order  []K
	values map[K]V
}

func newTally[K comparable, V any]() *tally[K, V] {
	return &tally[K, V]{values: make(map[K]V)}
}

func (t *tally[K, V]) get(k K) V {
	return t.values[k]
}

func (t *tally[K, V]) set(k K, v V) {
	if _, exists := t.values[k]; !exists {
		t.order = append(t.order, k)
	}
	t.values[k] = v
}

func (t *tally[K, V]) len() int {
	return len(t.order)
}

// toMap returns a fresh copy the caller may keep.
func (t *tally[K, V]) toMap() map[K]V {
	out := make(map[K]V, len(t.values))
	for k, v := range t.values {
		out[k] = v
	}
	return out
}

type number interface {
	~int | ~int64 | ~float64
}

// pickMax returns the key with the largest value. Ties go to the key seen
// first; an empty tally yields false.
func pickMax[K comparable, V number](t *tally[K, V]) (K, bool) {
	return pick(t, func(candidate, best V) bool { return candidate > best })
}

// pickMin mirrors pickMax for the smallest value.
func pickMin[K comparable, V number](t *tally[K, V]) (K, bool) {
	return pick(t, func(candidate, best V) bool { return candidate < best })
}

func pick[K comparable, V number](t *tally[K, V], better func(candidate, best V) bool) (K, bool) {
	var bestKey K
	if t.len() == 0 {
		return bestKey, false
	}
	bestKey = t.order[0]
	best := t.values[bestKey]
	for _, k := range t.order[1:] {
		// strict comparison keeps the earlier key on ties
		if v := t.values[k]; better(v, best) {
			bestKey, best = k, v
		}
	}
	return bestKey, true
}

// goalRate accumulates goals over appearances for the scoring queries.
type goalRate struct {
	goals       int
	appearances int
}

func (r goalRate) value() float64 {
	return Ratio(float64(r.goals), float64(r.appearances))
}
