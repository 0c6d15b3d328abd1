package phamt

import "errors"

// ErrUnhashableKey is returned by Hash when a key's dynamic type is not one
// of the built-in hashable kinds and does not implement HashCoder.
// NewWithHasher bypasses this path entirely.
var ErrUnhashableKey = errors.New("phamt: key of this type cannot be hashed; implement HashCoder or use NewWithHasher")

// ErrInvalidKeyPath is returned by UpdateIn when the path descends through
// a value at an interior position that is not itself a nested Map.
var ErrInvalidKeyPath = errors.New("phamt: updateIn descended into a non-map value at an interior key")
