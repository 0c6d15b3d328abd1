package phamt

import "testing"

import "github.com/stretchr/testify/require"

// Test bit-trie arithmetic in isolation from any node.
func TestBitopsArithmetic(t *testing.T) {
	t.Run("indexAtShift extracts consecutive 5-bit chunks", func(t *testing.T) {
		hash := uint32(0b10101_00110_11001)
		require.Equal(t, 0b11001, indexAtShift(hash, 0))
		require.Equal(t, 0b00110, indexAtShift(hash, bitChunkSize))
		require.Equal(t, 0b10101, indexAtShift(hash, 2*bitChunkSize))
	})

	t.Run("setBit then isBitSet round-trips", func(t *testing.T) {
		var bitmap uint32
		bit := bitposAtIndex(5)

		require.False(t, isBitSet(bitmap, bit))
		bitmap = setBit(bitmap, bit)
		require.True(t, isBitSet(bitmap, bit))
		bitmap = clearBit(bitmap, bit)
		require.False(t, isBitSet(bitmap, bit))
	})

	t.Run("compactIndex counts set bits below the target bit", func(t *testing.T) {
		bitmap := bitposAtIndex(0) | bitposAtIndex(2) | bitposAtIndex(5)
		require.Equal(t, 0, compactIndex(bitmap, bitposAtIndex(0)))
		require.Equal(t, 1, compactIndex(bitmap, bitposAtIndex(2)))
		require.Equal(t, 2, compactIndex(bitmap, bitposAtIndex(5)))
	})

	t.Run("popcount agrees with compactIndex at the top of the bitmap", func(t *testing.T) {
		bitmap := bitposAtIndex(0) | bitposAtIndex(2) | bitposAtIndex(5)
		require.Equal(t, popcount(bitmap), compactIndex(bitmap, bitposAtIndex(31)))
	})
}

// Test the packed slot slice helpers preserve order and don't mutate input.
func TestSlotSliceHelpers(t *testing.T) {
	t.Run("insertSlot inserts without disturbing the original slice", func(t *testing.T) {
		orig := []int{1, 2, 4}
		inserted := insertSlot(orig, 2, 3)

		require.Equal(t, []int{1, 2, 3, 4}, inserted)
		require.Equal(t, []int{1, 2, 4}, orig)
	})

	t.Run("removeSlot removes without disturbing the original slice", func(t *testing.T) {
		orig := []int{1, 2, 3, 4}
		removed := removeSlot(orig, 1)

		require.Equal(t, []int{1, 3, 4}, removed)
		require.Equal(t, []int{1, 2, 3, 4}, orig)
	})

	t.Run("insert at head and tail", func(t *testing.T) {
		require.Equal(t, []int{0, 1, 2}, insertSlot([]int{1, 2}, 0, 0))
		require.Equal(t, []int{1, 2, 3}, insertSlot([]int{1, 2}, 2, 3))
	})
}
