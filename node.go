package phamt

// node is the unexported sum type shared by bitmapIndexedNode and
// hashCollisionNode. Both variants are dispatched through this interface
// rather than a class hierarchy: every method is a direct, total
// implementation on one of exactly two concrete types, so there is never a
// need to downcast or ask "what kind am I" outside a node's own methods.
type node[K comparable, V any] interface {
	// get returns the value bound to key at this subtree, if any.
	get(shift uint, hash uint32, key K) (V, bool)

	// set binds key to value within this subtree.
	//
	// owner authorizes in-place editing for the current batch (nil outside
	// a WithMutations scope). didAdd is set to true iff this call created a
	// new binding rather than overwriting an existing one.
	//
	// Returns the receiver unchanged (same node) if no structural change
	// was necessary (idempotent set of an identical value).
	set(owner *OwnerToken, shift uint, hash uint32, key K, value V, didAdd *bool) node[K, V]

	// delete removes key from this subtree.
	//
	// Returns nil if removing key would leave this subtree empty (signaling
	// to the parent that the slot holding this node should be spliced out),
	// the receiver unchanged if key was absent, or an edited node otherwise.
	// didRemove is set to true iff a binding was actually removed.
	delete(owner *OwnerToken, shift uint, hash uint32, key K, didRemove *bool) node[K, V]

	// iterate walks every (key, value) pair reachable from this subtree in
	// slot-index order (or reverse order), calling fn for each. It returns
	// false as soon as fn returns false (short-circuit), true if the walk
	// completed.
	iterate(fn func(K, V) bool, reverse bool) bool
}

// mapEntry is a single key/value binding, used both as the payload of a
// bitmapIndexedNode leaf slot and as the element type of a
// hashCollisionNode's entry list.
type mapEntry[K comparable, V any] struct {
	key   K
	value V
	hash  uint32
}
