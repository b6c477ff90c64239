package deferred

import "context"

// Deferred is a write-once cell of T. The zero value is an empty Deferred,
// the same as New returns; Filled builds one already holding a value. A
// Deferred is both the promise (Fill) and the future
// (Upon, Peek, Wait); hand out a read-only view via Future.
//
// All methods are safe for concurrent use. Fill, Upon, and Peek are
// non-blocking; Wait is the only blocking operation.
type Deferred[T any] struct {
	cell  cell[T]
	queue waiterQueue[T]
}

// New returns an empty Deferred.
func New[T any]() *Deferred[T] {
	return &Deferred[T]{}
}

// Filled returns a Deferred already holding v. Its waiter queue is never
// used: every subscription takes the filled fast path.
func Filled[T any](v T) *Deferred[T] {
	d := &Deferred[T]{}
	d.cell.tryStore(&v)
	return d
}

// Fill publishes v and reports whether this call won. Exactly one Fill per
// Deferred succeeds; racing fills have one winner and the losers' values are
// discarded. The winner drains the waiter queue, submitting every pending
// handler with v.
func (d *Deferred[T]) Fill(v T) bool {
	if !d.cell.tryStore(&v) {
		return false
	}
	d.queue.drain(v)
	return true
}

// IsFilled reports whether the cell holds a value.
func (d *Deferred[T]) IsFilled() bool {
	return d.cell.load() != nil
}

// Peek returns a copy of the value if the cell is filled.
func (d *Deferred[T]) Peek() (T, bool) {
	if v := d.cell.load(); v != nil {
		return *v, true
	}
	var zero T
	return zero, false
}

// Upon subscribes fn to run with the filled value, submitted through exec.
// If the cell is already filled the handler is submitted immediately,
// bypassing the queue; it still runs via exec, never inline on the caller.
// A nil exec or fn is a programmer error and panics; use the executor
// subpackage's Immediate explicitly when inline execution is wanted.
func (d *Deferred[T]) Upon(exec Executor, fn func(T)) {
	if exec == nil {
		panic(ErrNilExecutor)
	}
	if fn == nil {
		panic(ErrNilHandler)
	}

	if v := d.cell.load(); v != nil {
		exec.Submit(func() { fn(*v) })
		return
	}

	w := &waiter[T]{exec: exec, fn: fn}
	if d.queue.push(w) == pushedFirst {
		// The fill may have raced this push: its drain can have observed an
		// empty queue and returned. The head-establishing pusher re-checks
		// and drains the chain it started.
		if v := d.cell.load(); v != nil {
			d.queue.drain(*v)
		}
	}
}

// Wait blocks until the cell fills or ctx ends, and reports which happened.
// Use context.Background for an unbounded wait and a deadline or timeout
// context for a timed one; a ctx already done degrades to a poll. Returning
// false is a status, not an error: the cell may still fill later.
func (d *Deferred[T]) Wait(ctx context.Context) (T, bool) {
	if v, ok := d.Peek(); ok {
		return v, true
	}

	ch := make(chan T, 1)
	d.Upon(inline{}, func(v T) { ch <- v })

	select {
	case v := <-ch:
		return v, true
	case <-ctx.Done():
		// One more poll: a fill racing the deadline should win.
		return d.Peek()
	}
}
