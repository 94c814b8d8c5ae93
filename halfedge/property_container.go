package halfedge

import "sync"

// erasedProperty is the type-erased interface a PropertyContainer uses to
// drive every registered property array without knowing its element type.
type erasedProperty interface {
	alive() bool
	reserve(n int) error
	resize(n int) error
	clear() error
	pushDefault() error
	swap(i, j int) error
	copyElem(src, dst int) error
	length() (int, error)
}

// PropertyContainer manages a set of type-erased property slots in
// parallel, applying bulk mutations to every live slot in insertion
// order so that externally owned side arrays stay the same length as the
// topological array they track. It never owns the array data itself:
// each slot is a weak back-reference, and the client's Property handle is
// what keeps the storage alive.
//
// A slot whose owning Property has been released is dead. Dead slots are
// discovered lazily (on the next operation) and are silently dropped
// rather than surfaced as an error.
type PropertyContainer struct {
	mu    sync.Mutex
	slots []erasedProperty
}

// NewPropertyContainer constructs an empty container.
func NewPropertyContainer() *PropertyContainer {
	return &PropertyContainer{}
}

func (c *PropertyContainer) register(p erasedProperty) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.slots = append(c.slots, p)
}

// compact drops dead slots and returns the live ones. Must be called with
// c.mu held.
func (c *PropertyContainer) compact() []erasedProperty {
	live := c.slots[:0]
	for _, p := range c.slots {
		if p.alive() {
			live = append(live, p)
		}
	}
	c.slots = live
	return live
}

func (c *PropertyContainer) forEachLive(fn func(erasedProperty) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, p := range c.compact() {
		if err := fn(p); err != nil {
			return err
		}
	}

	return nil
}

// Reserve grows every live property array's capacity to at least n
// without changing its length.
func (c *PropertyContainer) Reserve(n int) error {
	return c.forEachLive(func(p erasedProperty) error { return p.reserve(n) })
}

// Resize grows or truncates every live property array to exactly n
// elements, backfilling new slots with the zero value.
func (c *PropertyContainer) Resize(n int) error {
	return c.forEachLive(func(p erasedProperty) error { return p.resize(n) })
}

// Clear empties every live property array.
func (c *PropertyContainer) Clear() error {
	return c.forEachLive(func(p erasedProperty) error { return p.clear() })
}

// PushDefault appends one zero-valued element to every live property
// array. The topology calls this whenever it appends a vertex or face.
func (c *PropertyContainer) PushDefault() error {
	return c.forEachLive(func(p erasedProperty) error { return p.pushDefault() })
}

// Swap exchanges the elements at i and j in every live property array.
func (c *PropertyContainer) Swap(i, j int) error {
	return c.forEachLive(func(p erasedProperty) error { return p.swap(i, j) })
}

// Copy overwrites the element at dst with the element at src in every
// live property array.
func (c *PropertyContainer) Copy(src, dst int) error {
	return c.forEachLive(func(p erasedProperty) error { return p.copyElem(src, dst) })
}

// Len returns the common length of every live property array. It panics
// if two live arrays disagree, since that indicates a bulk operation was
// applied to one array and not another — a bug in this package, not a
// caller error.
func (c *PropertyContainer) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	slots := c.compact()
	if len(slots) == 0 {
		return 0
	}

	first, err := slots[0].length()
	if err != nil {
		return 0
	}

	for _, p := range slots[1:] {
		n, err := p.length()
		if err != nil {
			continue
		}
		if n != first {
			fatalf("halfedge: property arrays diverged in length (%d vs %d)", first, n)
		}
	}

	return first
}
