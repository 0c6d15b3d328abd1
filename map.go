package phamt

import "github.com/sirgallo/utils"

// Map is the persistent, hash array mapped trie backed associative
// container. The zero value is not useful — construct one with Empty,
// From, or NewWithHasher. Map is a small value type (length, a root node
// pointer, an optional owner token, and a hasher), copied on every
// assignment; its persistence guarantee comes from the root node's
// structural sharing, not from Map itself being a reference type.
type Map[K comparable, V any] struct {
	length int
	root   node[K, V]
	owner  *OwnerToken
	hasher func(K) (uint32, error)
}

// Empty returns the canonical empty map for key type K and value type V,
// using the built-in Hash dispatch (see Hash) to hash keys.
//
// Returns:
//	An empty, persistent Map[K, V]
func Empty[K comparable, V any]() Map[K, V] {
	return Map[K, V]{hasher: defaultHasher[K]()}
}

// NewWithHasher returns an empty map that hashes keys with hasher instead
// of the built-in Hash dispatch. Use this for key types that are neither
// one of Hash's built-in kinds nor implement HashCoder.
func NewWithHasher[K comparable, V any](hasher func(K) (uint32, error)) Map[K, V] {
	return Map[K, V]{hasher: hasher}
}

// From returns src itself when it is already a Map[K, V] (no copy);
// otherwise it returns the empty map merged with every pair src produces.
func From[K comparable, V any](src Source[K, V]) (Map[K, V], error) {
	if existing, ok := src.(Map[K, V]); ok {
		return existing, nil
	}
	return Empty[K, V]().Merge(src)
}

func defaultHasher[K comparable]() func(K) (uint32, error) {
	return func(k K) (uint32, error) {
		return Hash(any(k))
	}
}

// Len returns the number of entries reachable from the map's root.
func (m Map[K, V]) Len() int {
	return m.length
}

// IsEmpty reports whether the map has no entries.
func (m Map[K, V]) IsEmpty() bool {
	return m.length == 0
}

// Get returns the value bound to key, or defaultValue if key is absent.
// A null-ish key (the untyped nil, or a nil pointer/interface/channel
// boxed inside K) always returns defaultValue without descending into the
// trie — null-ish keys are never allowed to occupy it. An error is
// returned only if a non-null key cannot be hashed (see Hash).
func (m Map[K, V]) Get(key K, defaultValue V) (V, error) {
	if m.root == nil || isNilKey(key) {
		return defaultValue, nil
	}

	hash, hashErr := m.hasher(key)
	if hashErr != nil {
		return utils.GetZero[V](), hashErr
	}

	value, found := m.root.get(0, hash, key)
	if !found {
		return defaultValue, nil
	}
	return value, nil
}

// GetOk returns the value bound to key and true, or the zero value and
// false if key is absent. A key that fails to hash, or a null-ish key
// (see Get), is treated as absent — callers that need to distinguish
// "absent" from "unhashable" should use Get or Hash directly.
func (m Map[K, V]) GetOk(key K) (V, bool) {
	if m.root == nil || isNilKey(key) {
		return utils.GetZero[V](), false
	}

	hash, hashErr := m.hasher(key)
	if hashErr != nil {
		return utils.GetZero[V](), false
	}

	return m.root.get(0, hash, key)
}

// Set returns a map with (key, value) bound, sharing every node of the
// receiver's trie that the new binding doesn't touch. If the receiver
// already binds key to an == value, Set returns the receiver unchanged. A
// null-ish key (see Get) is a silent no-op returning the receiver —
// null-ish keys are never allowed to occupy the trie.
func (m Map[K, V]) Set(key K, value V) (Map[K, V], error) {
	if isNilKey(key) {
		return m, nil
	}

	hash, hashErr := m.hasher(key)
	if hashErr != nil {
		return m, hashErr
	}

	return m.setHashed(hash, key, value), nil
}

func (m Map[K, V]) setHashed(hash uint32, key K, value V) Map[K, V] {
	var didAdd bool

	var newRoot node[K, V]
	if m.root == nil {
		newRoot = newBitmapNode[K, V](m.owner)
	} else {
		newRoot = m.root
	}

	newRoot = newRoot.set(m.owner, 0, hash, key, value, &didAdd)
	if newRoot == m.root && !didAdd {
		return m
	}

	return m.withRoot(newRoot, boolToDelta(didAdd))
}

// Delete returns a map without key. An absent key returns the receiver
// unchanged; deleting the last entry returns the canonical empty map. A
// null-ish key (see Get) is always absent, so it is always a no-op.
func (m Map[K, V]) Delete(key K) (Map[K, V], error) {
	if m.root == nil || isNilKey(key) {
		return m, nil
	}

	hash, hashErr := m.hasher(key)
	if hashErr != nil {
		return m, hashErr
	}

	var didRemove bool
	newRoot := m.root.delete(m.owner, 0, hash, key, &didRemove)
	if !didRemove {
		return m, nil
	}

	return m.withRoot(newRoot, -1), nil
}

// Update binds key to fn(currentValue, found), where found reports whether
// key was already present (currentValue is the zero value otherwise). It
// is shorthand for Set(key, fn(Get(key, zero))).
func (m Map[K, V]) Update(key K, fn func(current V, found bool) V) (Map[K, V], error) {
	current, found := m.GetOk(key)
	return m.Set(key, fn(current, found))
}

// Clear returns an empty map that keeps the receiver's owner and hasher:
// the canonical empty map for a persistent receiver, an empty transient
// handle for a transient one. The receiver itself is not modified.
func (m Map[K, V]) Clear() Map[K, V] {
	return Map[K, V]{owner: m.owner, hasher: m.hasher}
}

// Range walks every (key, value) pair in the map in slot-index order
// (reverse order if reverse is true), calling fn for each. It stops early
// if fn returns false. The overall return value is true iff the walk
// completed without being short-circuited.
func (m Map[K, V]) Range(fn func(K, V) bool, reverse bool) bool {
	if m.root == nil {
		return true
	}
	return m.root.iterate(fn, reverse)
}

// withRoot returns a copy of m with newRoot installed and length adjusted
// by delta (+1, -1, or 0), collapsing to the canonical empty map when the
// last entry is removed.
func (m Map[K, V]) withRoot(newRoot node[K, V], delta int) Map[K, V] {
	newLength := m.length + delta
	if newLength == 0 {
		return Map[K, V]{owner: m.owner, hasher: m.hasher}
	}

	return Map[K, V]{
		length: newLength,
		root:   newRoot,
		owner:  m.owner,
		hasher: m.hasher,
	}
}

func boolToDelta(didAdd bool) int {
	if didAdd {
		return 1
	}
	return 0
}

// Same reports whether a and b are the exact same handle: same root node
// reference, same length, same owner. This is the Go analogue of the
// source material's `before === after` pointer-identity check, since a
// struct-valued Map can't be compared with == (its hasher field is a
// func, which Go forbids comparing).
func Same[K comparable, V any](a, b Map[K, V]) bool {
	return a.root == b.root && a.length == b.length && a.owner == b.owner
}
