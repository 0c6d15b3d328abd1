package phamt

// Source provides (key, value) pairs to merge into a Map. Both Map itself
// (via Range) and Pairs (a plain slice adapter) implement it, so Merge can
// fold either kind of input uniformly — the "arbitrary key→value sequence"
// the distilled spec asks for, scoped down from a full lazy-sequence
// abstraction to the one capability the core actually consumes.
type Source[K comparable, V any] interface {
	// ForEach calls fn for every pair the source provides, in source
	// order, stopping early if fn returns false.
	ForEach(fn func(K, V) bool)
}

// Pair is a single key/value binding, the element type of Pairs.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Pairs adapts a plain slice of Pair into a Source, for merging literal
// key/value lists that aren't already a Map.
type Pairs[K comparable, V any] []Pair[K, V]

func (p Pairs[K, V]) ForEach(fn func(K, V) bool) {
	for _, pair := range p {
		if !fn(pair.Key, pair.Value) {
			return
		}
	}
}

// ForEach implements Source by delegating to Range in forward order.
func (m Map[K, V]) ForEach(fn func(K, V) bool) {
	m.Range(fn, false)
}

// Merge folds sources into the receiver; for a key present in more than one
// place, the value from the last source to bind it wins.
func (m Map[K, V]) Merge(sources ...Source[K, V]) (Map[K, V], error) {
	return m.MergeWith(func(existing, incoming V) V { return incoming }, sources...)
}

// MergeWith folds sources into the receiver; for a key already bound in
// the receiver (or by an earlier source in this call), resolve(existing,
// incoming) decides the new value. A key with no prior binding takes the
// incoming value unconditionally.
func (m Map[K, V]) MergeWith(resolve func(existing, incoming V) V, sources ...Source[K, V]) (Map[K, V], error) {
	var mergeErr error

	result := m.WithMutations(func(mutable Map[K, V]) Map[K, V] {
		for _, src := range sources {
			src.ForEach(func(k K, incoming V) bool {
				next := incoming
				if existing, found := mutable.GetOk(k); found {
					next = resolve(existing, incoming)
				}

				updated, setErr := mutable.Set(k, next)
				if setErr != nil {
					mergeErr = setErr
					return false
				}
				mutable = updated
				return true
			})

			if mergeErr != nil {
				break
			}
		}

		return mutable
	})

	if mergeErr != nil {
		return m, mergeErr
	}
	return result, nil
}

// MergeDeep folds sources into m, recursing into nested maps: where both
// the existing and incoming value at a key are themselves Map[K, any],
// they are merged deeply rather than one replacing the other. Leaves (any
// pair of values where at least one side isn't a map) resolve incoming-wins.
//
// Deep merge only type-checks against a fixed value type (Map[K, any])
// because recognizing "is this value itself a map" requires a concrete
// type to assert against; callers working with a homogeneously typed
// Map[K, V] use Merge/MergeWith instead.
func MergeDeep[K comparable](m Map[K, any], sources ...Source[K, any]) (Map[K, any], error) {
	return MergeDeepWith[K](func(existing, incoming any) any { return incoming }, m, sources...)
}

// MergeDeepWith is MergeDeep with leaf conflicts (neither side a nested
// map, or exactly one side a nested map) resolved by resolve instead of
// incoming-wins.
func MergeDeepWith[K comparable](resolve func(existing, incoming any) any, m Map[K, any], sources ...Source[K, any]) (Map[K, any], error) {
	var mergeErr error

	result := m.WithMutations(func(mutable Map[K, any]) Map[K, any] {
		for _, src := range sources {
			src.ForEach(func(k K, incoming any) bool {
				next := incoming

				if existing, found := mutable.GetOk(k); found {
					existingMap, existingIsMap := existing.(Map[K, any])
					incomingMap, incomingIsMap := incoming.(Map[K, any])

					switch {
					case existingIsMap && incomingIsMap:
						merged, deepErr := MergeDeepWith[K](resolve, existingMap, Source[K, any](incomingMap))
						if deepErr != nil {
							mergeErr = deepErr
							return false
						}
						next = merged
					default:
						next = resolve(existing, incoming)
					}
				}

				updated, setErr := mutable.Set(k, next)
				if setErr != nil {
					mergeErr = setErr
					return false
				}
				mutable = updated
				return true
			})

			if mergeErr != nil {
				break
			}
		}

		return mutable
	})

	if mergeErr != nil {
		return m, mergeErr
	}
	return result, nil
}
