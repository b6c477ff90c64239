package deferred

import "sync/atomic"

// cell is the single-assignment slot backing a Deferred. The value is
// heap-boxed and published by swapping the pointer; Go's atomic pointer
// operations provide the release/acquire pairing, so a non-nil load
// observes the fully constructed value.
type cell[T any] struct {
	p atomic.Pointer[T]
}

// load returns the published value, or nil while the cell is empty.
func (c *cell[T]) load() *T {
	return c.p.Load()
}

// tryStore attempts to publish v. Exactly one call succeeds across all
// goroutines; losers return false and the caller discards its value.
func (c *cell[T]) tryStore(v *T) bool {
	return c.p.CompareAndSwap(nil, v)
}
