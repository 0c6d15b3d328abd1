package phamt

import "sync"

// stringCacheCap is the default size of the memoized string-hash cache.
// When the cache reaches this many entries it is cleared wholesale rather
// than evicting individual entries — a deliberately simple policy that
// trades an occasional cache miss for never needing per-entry bookkeeping.
const stringCacheCap = 255

// HashCoder is implemented by key types that know how to hash themselves.
// Hash consults HashCoder before falling back to ErrUnhashableKey.
type HashCoder interface {
	HashCode() uint32
}

// stringHashCache memoizes the polynomial hash of a string since string
// keys are the common case and re-hashing on every trie descent would
// otherwise repeat the same work at every level (hashing only happens once
// per operation here, but callers that re-derive hashes across many
// operations on the same key set benefit from not re-walking the bytes).
type stringHashCache struct {
	mu      sync.Mutex
	entries map[string]uint32
}

var globalStringCache = &stringHashCache{entries: make(map[string]uint32, stringCacheCap)}

func (c *stringHashCache) get(s string) (uint32, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	h, ok := c.entries[s]
	return h, ok
}

func (c *stringHashCache) put(s string, h uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= stringCacheCap {
		c.entries = make(map[string]uint32, stringCacheCap)
	}
	c.entries[s] = h
}

// hashString returns the memoized JVM-style polynomial hash of s
// (h = 0; for each byte c: h = 31*h + c, reduced mod 2^32 by uint32
// overflow), computing and caching it on a miss.
func hashString(s string) uint32 {
	if h, ok := globalStringCache.get(s); ok {
		return h
	}

	var h uint32
	for i := 0; i < len(s); i++ {
		h = 31*h + uint32(s[i])
	}
	globalStringCache.put(s, h)

	return h
}

// Hash computes the 32 bit trie hash for an arbitrary key value.
//
// Parameters:
//	k: the key to hash, as its dynamic type
//
// Returns:
//	The 32 bit hash, or ErrUnhashableKey if k's dynamic type is none of the
//	built-in kinds and does not implement HashCoder
func Hash(k any) (uint32, error) {
	switch v := k.(type) {
	case nil:
		return 0, nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case string:
		return hashString(v), nil
	case int:
		return hashInt64(int64(v)), nil
	case int8:
		return hashInt64(int64(v)), nil
	case int16:
		return hashInt64(int64(v)), nil
	case int32:
		return hashInt64(int64(v)), nil
	case int64:
		return hashInt64(v), nil
	case uint:
		return hashUint64(uint64(v)), nil
	case uint8:
		return hashUint64(uint64(v)), nil
	case uint16:
		return hashUint64(uint64(v)), nil
	case uint32:
		return hashUint64(uint64(v)), nil
	case uint64:
		return hashUint64(v), nil
	case HashCoder:
		return v.HashCode(), nil
	default:
		cLog.Error("unhashable key type encountered:", k)
		return 0, ErrUnhashableKey
	}
}

// hashInt64 reduces a signed integer into the 31-bit positive space the
// source spec defines: floor(k) mod (2^31 - 1).
func hashInt64(k int64) uint32 {
	const modulus = int64(1<<31 - 1)
	r := k % modulus
	if r < 0 {
		r += modulus
	}
	return uint32(r)
}

// hashUint64 is the unsigned analogue of hashInt64.
func hashUint64(k uint64) uint32 {
	const modulus = uint64(1<<31 - 1)
	return uint32(k % modulus)
}
