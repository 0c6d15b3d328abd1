package phamt

// Cursor is a localized view onto a subtree of a Map[K, any], addressed by
// a path of keys. It lets a caller repeatedly read and update the value at
// that path without re-stating the path on every call, and without the
// caller threading the root map through its own state by hand.
type Cursor[K comparable] struct {
	root     Map[K, any]
	path     []K
	onChange func(newMap, oldMap Map[K, any], path []K)
}

// NewCursor returns a Cursor rooted at m, focused on path. onChange, if
// non-nil, is invoked after every Update that actually changes the map
// (by Same's pointer-identity test), with the map before and after.
func NewCursor[K comparable](m Map[K, any], path []K, onChange func(newMap, oldMap Map[K, any], path []K)) *Cursor[K] {
	pathCopy := make([]K, len(path))
	copy(pathCopy, path)

	return &Cursor[K]{root: m, path: pathCopy, onChange: onChange}
}

// Deref returns the cursor's current root map, reflecting every Update
// applied through this cursor so far.
func (c *Cursor[K]) Deref() Map[K, any] {
	return c.root
}

// Get returns the value at the cursor's path, or defaultValue if absent or
// if an interior path element isn't itself a nested map.
func (c *Cursor[K]) Get(defaultValue any) any {
	value, found := c.value()
	if !found {
		return defaultValue
	}
	return value
}

func (c *Cursor[K]) value() (any, bool) {
	if len(c.path) == 0 {
		return c.root, true
	}

	current := c.root
	for _, key := range c.path[:len(c.path)-1] {
		nested, found := current.GetOk(key)
		if !found {
			return nil, false
		}
		nestedMap, ok := nested.(Map[K, any])
		if !ok {
			return nil, false
		}
		current = nestedMap
	}

	return current.GetOk(c.path[len(c.path)-1])
}

// Update applies fn to the value at the cursor's path (see UpdateIn),
// rewriting the root map and firing onChange if the result differs from
// the map the cursor held immediately before the call.
func (c *Cursor[K]) Update(fn func(value any, found bool) any) (Map[K, any], error) {
	updated, err := UpdateIn(c.root, c.path, fn)
	if err != nil {
		return c.root, err
	}

	if Same(updated, c.root) {
		return c.root, nil
	}

	previous := c.root
	c.root = updated

	if c.onChange != nil {
		c.onChange(c.root, previous, c.path)
	}
	return c.root, nil
}
