package phamt

import "testing"

import "github.com/stretchr/testify/require"

// Test batch equivalence: a WithMutations batch of Sets produces the same
// observable bindings as the same Sets applied one at a time persistently.
func TestWithMutationsBatchEquivalence(t *testing.T) {
	persistent := Empty[string, int]()
	for i := 0; i < 100; i++ {
		persistent, _ = persistent.Set(keyFor(i), i)
	}

	batched := Empty[string, int]().WithMutations(func(mutable Map[string, int]) Map[string, int] {
		for i := 0; i < 100; i++ {
			mutable, _ = mutable.Set(keyFor(i), i)
		}
		return mutable
	})

	require.True(t, Equal(persistent, batched))
	require.Equal(t, persistent.Len(), batched.Len())
}

// Test that WithMutations restores the receiver's original owner state: a
// persistent receiver gets back a persistent (owner-less) result even
// though the work happened through a transient handle internally.
func TestWithMutationsRestoresImmutability(t *testing.T) {
	m := Empty[string, int]()
	result := m.WithMutations(func(mutable Map[string, int]) Map[string, int] {
		next, _ := mutable.Set("k", 1)
		return next
	})

	require.Nil(t, result.owner)

	again, _ := result.Set("k", 1)
	require.True(t, Same(result, again))
}

// Test AsMutable/AsImmutable: AsMutable on an already-transient handle is a
// no-op; AsImmutable clears the owner so subsequent edits path-copy again.
func TestAsMutableAsImmutable(t *testing.T) {
	m := Empty[string, int]()
	mutable := m.AsMutable()
	require.NotNil(t, mutable.owner)

	stillMutable := mutable.AsMutable()
	require.True(t, mutable.owner == stillMutable.owner)

	frozen := mutable.AsImmutable()
	require.Nil(t, frozen.owner)
}

// Test that a Set through a transient handle is visible through that
// handle but not through the persistent handle it was made from.
func TestTransientEditsDoNotLeakIntoPriorPersistentHandle(t *testing.T) {
	base := Empty[string, int]()
	base, _ = base.Set("seed", 0)

	mutable := base.AsMutable()
	mutable, _ = mutable.Set("added-in-batch", 1)

	_, found := base.GetOk("added-in-batch")
	require.False(t, found)

	_, found = mutable.GetOk("added-in-batch")
	require.True(t, found)
}

// Test re-freezing: once AsImmutable is called, the resulting handle's
// owner is gone, so a subsequent Set on it performs a structural copy
// (the old owner token is never reused by any live handle).
func TestReFreezingDisablesFurtherInPlaceEdits(t *testing.T) {
	mutable := Empty[string, int]().AsMutable()
	mutable, _ = mutable.Set("a", 1)

	frozen := mutable.AsImmutable()
	next, _ := frozen.Set("b", 2)

	require.False(t, Same(frozen, next))
	_, found := frozen.GetOk("b")
	require.False(t, found)
}
