package phamt

import "testing"

import "github.com/stretchr/testify/require"

// Test isNilKey on a non-nilable K (string, int): always false, since
// those types have no "null", only their ordinary zero value.
func TestIsNilKeyNeverMatchesNonNilableKinds(t *testing.T) {
	require.False(t, isNilKey(""))
	require.False(t, isNilKey("x"))
	require.False(t, isNilKey(0))
	require.False(t, isNilKey(42))
}

// Test isNilKey on a nilable K (*int): true for a nil pointer, false for
// a pointer to a zero value.
func TestIsNilKeyMatchesTypedNilPointer(t *testing.T) {
	var nilPtr *int
	require.True(t, isNilKey(nilPtr))

	zero := 0
	require.False(t, isNilKey(&zero))
}

// Test isNilKey on a nilable K boxed through an interface-typed K (any):
// true for the untyped nil, true for a typed-nil value of a nilable kind
// boxed inside the interface, false for any non-nil value.
func TestIsNilKeyMatchesNilAnyKey(t *testing.T) {
	require.True(t, isNilKey[any](nil))

	var nilPtr *int
	require.True(t, isNilKey[any](nilPtr))

	require.False(t, isNilKey[any](0))
	require.False(t, isNilKey[any]("k"))
}

// Test Get/GetOk/Set/Delete all treat a null-ish key as a no-op, per
// spec.md's get(null)/set(null, ...)/delete(null) rule: a null-ish key is
// never allowed to occupy the trie.
func TestNullKeyIsANoOpAcrossAllOperations(t *testing.T) {
	var nilKey *int
	other := 7

	m := NewWithHasher[*int, string](func(k *int) (uint32, error) { return uint32(*k), nil })
	m, err := m.Set(&other, "present")
	require.NoError(t, err)

	v, err := m.Get(nilKey, "default")
	require.NoError(t, err)
	require.Equal(t, "default", v)

	_, ok := m.GetOk(nilKey)
	require.False(t, ok)

	afterSet, err := m.Set(nilKey, "should not be stored")
	require.NoError(t, err)
	require.True(t, Same(m, afterSet))

	afterDelete, err := m.Delete(nilKey)
	require.NoError(t, err)
	require.True(t, Same(m, afterDelete))

	require.Equal(t, 1, m.Len())
}
