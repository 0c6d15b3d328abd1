package phamt

import "math/bits"

// bitChunkSize is the number of hash bits consumed per trie level (2^5 = 32
// slots per node).
const bitChunkSize = 5

// slotsPerLevel is the branching factor of a bitmapIndexedNode.
const slotsPerLevel = 1 << bitChunkSize

// levelMask isolates the low bitChunkSize bits of a shifted hash.
const levelMask = slotsPerLevel - 1

// indexAtShift returns the 0..31 slot index a hash maps to at the given
// shift (shift = level * bitChunkSize).
//
// Parameters:
//	hash: the 32 bit hash for the key
//	shift: the number of bits already consumed by parent levels
//
// Returns:
//	The sparse index in [0, 32) for this level
func indexAtShift(hash uint32, shift uint) int {
	return int((hash >> shift) & levelMask)
}

// bitposAtIndex returns the single set bit in a bitmap corresponding to a
// slot index.
func bitposAtIndex(index int) uint32 {
	return uint32(1) << uint(index)
}

// popcount returns the number of set bits in a bitmap, which is also the
// number of occupied slots in a bitmapIndexedNode.
func popcount(bitmap uint32) int {
	return bits.OnesCount32(bitmap)
}

// isBitSet reports whether the slot at bit is occupied in bitmap.
func isBitSet(bitmap, bit uint32) bool {
	return bitmap&bit != 0
}

// setBit returns bitmap with bit flipped on. It is the caller's
// responsibility to only call this for bits that are currently clear.
func setBit(bitmap, bit uint32) uint32 {
	return bitmap | bit
}

// clearBit returns bitmap with bit flipped off.
func clearBit(bitmap, bit uint32) uint32 {
	return bitmap &^ bit
}

// compactIndex translates a bit position into the packed slot array offset,
// which is the number of set bits in bitmap strictly below bit. This is the
// "popcount offset" that lets bitmapIndexedNode store a dense array instead
// of 32 slots with holes.
func compactIndex(bitmap, bit uint32) int {
	return popcount(bitmap & (bit - 1))
}

// insertSlot returns a new slice with value inserted at pos, growing the
// backing array by one. The original slice is left untouched.
func insertSlot[T any](orig []T, pos int, value T) []T {
	newSlots := make([]T, len(orig)+1)
	copy(newSlots[:pos], orig[:pos])
	newSlots[pos] = value
	copy(newSlots[pos+1:], orig[pos:])
	return newSlots
}

// removeSlot returns a new slice with the element at pos removed, shrinking
// the backing array by one. The original slice is left untouched.
func removeSlot[T any](orig []T, pos int) []T {
	newSlots := make([]T, len(orig)-1)
	copy(newSlots[:pos], orig[:pos])
	copy(newSlots[pos:], orig[pos+1:])
	return newSlots
}
