package phamt

// UpdateIn walks path through nested maps, applying fn to the value bound
// at the final path element and writing the result back, rewrapping every
// intermediate map along the way via structural sharing.
//
// A missing key at an interior path position is treated as an empty nested
// map (so UpdateIn can be used to populate a path that doesn't exist yet);
// a value at an interior position that is not itself a Map[K, any] is a
// hard failure (ErrInvalidKeyPath) — there is nothing to descend into.
//
// An empty path calls fn(m, true) directly, handing the receiver itself to
// fn as its value argument; the result must type-assert back to
// Map[K, any] (ErrInvalidKeyPath otherwise). UpdateInMap is a convenience
// wrapper for exactly this whole-map-transform case, typed so the caller
// never has to perform that assertion themselves.
func UpdateIn[K comparable](m Map[K, any], path []K, fn func(value any, found bool) any) (Map[K, any], error) {
	if len(path) == 0 {
		result := fn(any(m), true)

		updated, ok := result.(Map[K, any])
		if !ok {
			cLog.Error("updateIn: fn on an empty path must return a Map[K, any]")
			return m, ErrInvalidKeyPath
		}
		return updated, nil
	}

	return updateInLeaf(m, path, fn)
}

func updateInLeaf[K comparable](m Map[K, any], path []K, fn func(value any, found bool) any) (Map[K, any], error) {
	key := path[0]
	rest := path[1:]

	if len(rest) == 0 {
		current, found := m.GetOk(key)
		return m.Set(key, fn(current, found))
	}

	nested, descendErr := descend(m, key)
	if descendErr != nil {
		return m, descendErr
	}

	updatedNested, err := updateInLeaf(nested, rest, fn)
	if err != nil {
		return m, err
	}

	return m.Set(key, updatedNested)
}

// UpdateInMap is UpdateIn's counterpart for transforming the nested map at
// path as a whole, rather than a single leaf value within it. An empty
// path applies fn to the receiver directly, mirroring UpdateIn's own
// empty-path behavior without requiring the caller to type-assert fn's
// result themselves.
func UpdateInMap[K comparable](m Map[K, any], path []K, fn func(Map[K, any]) Map[K, any]) (Map[K, any], error) {
	if len(path) == 0 {
		return fn(m), nil
	}
	return updateInWhole(m, path, fn)
}

func updateInWhole[K comparable](m Map[K, any], path []K, fn func(Map[K, any]) Map[K, any]) (Map[K, any], error) {
	key := path[0]
	rest := path[1:]

	nested, descendErr := descend(m, key)
	if descendErr != nil {
		return m, descendErr
	}

	if len(rest) == 0 {
		return m.Set(key, fn(nested))
	}

	updatedNested, err := updateInWhole(nested, rest, fn)
	if err != nil {
		return m, err
	}

	return m.Set(key, updatedNested)
}

// descend returns the nested map bound to key in m, substituting an empty
// map if key is absent and failing with ErrInvalidKeyPath if key is bound
// to a value that isn't itself a Map[K, any].
func descend[K comparable](m Map[K, any], key K) (Map[K, any], error) {
	current, found := m.GetOk(key)
	if !found {
		return Empty[K, any](), nil
	}

	nested, ok := current.(Map[K, any])
	if !ok {
		cLog.Error("updateIn: descended into a non-map value at an interior key")
		return Map[K, any]{}, ErrInvalidKeyPath
	}
	return nested, nil
}
