package phamt

import "reflect"

// isNilKey reports whether key is a null-ish key: the untyped nil, or a
// nil value of a nilable kind (pointer, interface, channel, unsafe
// pointer) boxed inside K. Key types that can never be nil (numbers,
// strings, structs, arrays) always report false here — there is no
// "null" for those, only their ordinary zero value, which is a perfectly
// legitimate key.
//
// reflect is the only way to ask this question generically: K is merely
// comparable, not nilable, so there is no compile-time test available —
// this is inherent to mixing Go generics with a dynamically-nilable
// source-language key space, not a stand-in for some missing library.
func isNilKey[K comparable](key K) bool {
	v := any(key)
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
