package phamt

// hashCollisionNode is the terminal node used when two or more distinct
// keys hash to the exact same 32 bit value. It never occupies a slot by
// itself in a bitmapIndexedNode's bitmap arithmetic — it is reached only
// through a child slot — but it may appear at any depth, since collisions
// are a property of the full hash, not of the path taken to reach it.
type hashCollisionNode[K comparable, V any] struct {
	hash    uint32
	owner   *OwnerToken
	entries []mapEntry[K, V]
}

func (n *hashCollisionNode[K, V]) get(shift uint, hash uint32, key K) (V, bool) {
	if hash != n.hash {
		var zero V
		return zero, false
	}

	for _, e := range n.entries {
		if e.key == key {
			return e.value, true
		}
	}

	var zero V
	return zero, false
}

func (n *hashCollisionNode[K, V]) set(owner *OwnerToken, shift uint, hash uint32, key K, value V, didAdd *bool) node[K, V] {
	if hash != n.hash {
		// Only reachable one level down from a bitmap node's slot: wrap
		// this collision node inside a fresh bitmap node whose single
		// populated slot corresponds to this node's hash at the current
		// shift, then insert the new pair into that wrapper. If the new
		// key's index at this shift happens to match, the wrapper's own
		// set recurses back into this method at shift+5, converging once
		// the hashes diverge in some 5-bit chunk.
		bit := bitposAtIndex(indexAtShift(n.hash, shift))
		wrapper := &bitmapIndexedNode[K, V]{
			bitmap: bit,
			owner:  owner,
			slots:  []bitmapSlot[K, V]{{isChild: true, child: n}},
		}

		return wrapper.set(owner, shift, hash, key, value, didAdd)
	}

	for i := range n.entries {
		if n.entries[i].key == key {
			if valuesEqual(value, n.entries[i].value) {
				return n
			}

			editable := n.ensureEditable(owner)
			editable.entries[i].value = value
			return editable
		}
	}

	*didAdd = true

	editable := n.ensureEditable(owner)
	editable.entries = append(editable.entries, mapEntry[K, V]{key: key, value: value, hash: hash})
	return editable
}

func (n *hashCollisionNode[K, V]) delete(owner *OwnerToken, shift uint, hash uint32, key K, didRemove *bool) node[K, V] {
	if hash != n.hash {
		return n
	}

	idx := -1
	for i := range n.entries {
		if n.entries[i].key == key {
			idx = i
			break
		}
	}
	if idx == -1 {
		return n
	}

	*didRemove = true
	if len(n.entries) == 1 {
		return nil
	}

	editable := n.ensureEditable(owner)
	last := len(editable.entries) - 1
	editable.entries[idx] = editable.entries[last]
	editable.entries = editable.entries[:last]

	return editable
}

func (n *hashCollisionNode[K, V]) iterate(fn func(K, V) bool, reverse bool) bool {
	if !reverse {
		for _, e := range n.entries {
			if !fn(e.key, e.value) {
				return false
			}
		}
		return true
	}

	for i := len(n.entries) - 1; i >= 0; i-- {
		e := n.entries[i]
		if !fn(e.key, e.value) {
			return false
		}
	}
	return true
}

// ensureEditable returns a node that owner is authorized to mutate in
// place, taking a shallow copy if the current owner does not match.
func (n *hashCollisionNode[K, V]) ensureEditable(owner *OwnerToken) *hashCollisionNode[K, V] {
	if sameOwner(n.owner, owner) {
		return n
	}

	cLog.Debug("path-copying collision node for new owner:", owner)

	entriesCopy := make([]mapEntry[K, V], len(n.entries))
	copy(entriesCopy, n.entries)

	return &hashCollisionNode[K, V]{
		hash:    n.hash,
		owner:   owner,
		entries: entriesCopy,
	}
}
