package phamt

// valuesEqual reports whether a and b compare equal under Go's native ==.
// V is intentionally left unconstrained (any, not comparable) so that
// Map[K, V] can hold slice/map/func values without forcing every caller to
// prove comparability at compile time; == on two interface values wrapping
// a non-comparable dynamic type panics at runtime, so that case is treated
// as "not equal" (the safe default — it only costs an extra allocation on
// the write path, never correctness).
//
// No third-party deep-equality helper in the dependency set (go-cmp included)
// is free of the same runtime caveat for arbitrary, possibly-unexported
// value shapes, so a recover-guarded == is the narrowest correct tool here.
func valuesEqual[V any](a, b V) (equal bool) {
	defer func() {
		if recover() != nil {
			equal = false
		}
	}()

	return any(a) == any(b)
}

// Equal reports whether a and b are deeply equal: same length, and every
// key in a is bound to an equal value in b. The SENTINEL-style "found"
// bool from GetOk guards against a key missing from b being misread as
// present-and-equal to the zero value.
func Equal[K comparable, V any](a, b Map[K, V]) bool {
	if a.length != b.length {
		return false
	}

	equal := true
	a.Range(func(k K, v V) bool {
		other, found := b.GetOk(k)
		if !found || !valuesEqual(v, other) {
			equal = false
			return false
		}
		return true
	}, false)

	return equal
}
