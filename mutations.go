package phamt

// AsMutable returns a transient handle over the same trie: if the receiver
// is already transient (has an owner), it is returned unchanged; otherwise
// a clone stamped with a fresh OwnerToken is returned. The receiver itself
// is never mutated — it remains a valid, immutable view of the trie as it
// stood at the moment AsMutable was called.
func (m Map[K, V]) AsMutable() Map[K, V] {
	if m.owner != nil {
		return m
	}

	owner := newOwnerToken()
	cLog.Debug("opening mutable batch, owner:", owner)

	return Map[K, V]{
		length: m.length,
		root:   m.root,
		owner:  owner,
		hasher: m.hasher,
	}
}

// AsImmutable clears the handle's owner, disabling further in-place edits
// through it. Interior nodes keep whatever owner token they were last
// stamped with — that token simply never authorizes an edit again, since
// no handle will ever present it to ensureEditable after this call.
func (m Map[K, V]) AsImmutable() Map[K, V] {
	if m.owner == nil {
		return m
	}

	cLog.Debug("closing mutable batch, owner:", m.owner)

	return Map[K, V]{
		length: m.length,
		root:   m.root,
		owner:  nil,
		hasher: m.hasher,
	}
}

// WithMutations runs fn against a transient view of the receiver, batching
// every Set/Delete/Update performed inside fn into in-place node edits
// rather than a fresh path copy per call, then returns the result restored
// to the receiver's original owner state (immutable if the receiver was,
// transient with the receiver's own token if it was already mid-batch).
//
// fn must be total: if it panics, the transient handle it was building is
// abandoned along with whatever partial edits it already made — there is
// no rollback, matching the no-partial-mutation-safety-net contract of the
// source this was ported from.
func (m Map[K, V]) WithMutations(fn func(Map[K, V]) Map[K, V]) Map[K, V] {
	originalOwner := m.owner

	mutable := m.AsMutable()
	result := fn(mutable)

	cLog.Debug("closing withMutations batch, root replaced:", result.root != m.root)

	return Map[K, V]{
		length: result.length,
		root:   result.root,
		owner:  originalOwner,
		hasher: result.hasher,
	}
}
