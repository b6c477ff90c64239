package deferred

import "context"

// Future is the read-only projection of a Deferred: everything except Fill.
type Future[T any] interface {
	// Upon subscribes fn to run with the value, via exec, once available.
	Upon(exec Executor, fn func(T))

	// Peek returns a copy of the value if one is available.
	Peek() (T, bool)

	// Wait blocks until a value is available or ctx ends.
	Wait(ctx context.Context) (T, bool)

	// IsFilled reports whether a value is available.
	IsFilled() bool
}

// Future returns the read-only view of d. The promise side stays with the
// caller holding the Deferred.
func (d *Deferred[T]) Future() Future[T] {
	return readOnly[T]{d}
}

type readOnly[T any] struct {
	d *Deferred[T]
}

func (r readOnly[T]) Upon(exec Executor, fn func(T))     { r.d.Upon(exec, fn) }
func (r readOnly[T]) Peek() (T, bool)                    { return r.d.Peek() }
func (r readOnly[T]) Wait(ctx context.Context) (T, bool) { return r.d.Wait(ctx) }
func (r readOnly[T]) IsFilled() bool                     { return r.d.IsFilled() }

// Always returns a future that is already filled with v. No cell or queue is
// allocated; subscriptions submit directly.
func Always[T any](v T) Future[T] {
	return always[T]{v}
}

type always[T any] struct {
	v T
}

func (a always[T]) Upon(exec Executor, fn func(T)) {
	if exec == nil {
		panic(ErrNilExecutor)
	}
	if fn == nil {
		panic(ErrNilHandler)
	}
	v := a.v
	exec.Submit(func() { fn(v) })
}

func (a always[T]) Peek() (T, bool)                { return a.v, true }
func (a always[T]) Wait(context.Context) (T, bool) { return a.v, true }
func (a always[T]) IsFilled() bool                 { return true }

// Never returns a future that never fills. Handlers subscribed to it are
// dropped at once and never invoked.
func Never[T any]() Future[T] {
	return never[T]{}
}

type never[T any] struct{}

func (never[T]) Upon(exec Executor, fn func(T)) {
	if exec == nil {
		panic(ErrNilExecutor)
	}
	if fn == nil {
		panic(ErrNilHandler)
	}
}

func (never[T]) Peek() (T, bool) {
	var zero T
	return zero, false
}

func (never[T]) Wait(ctx context.Context) (T, bool) {
	<-ctx.Done()
	var zero T
	return zero, false
}

func (never[T]) IsFilled() bool { return false }

// Transformed returns a non-storing view of base that applies f on every
// read. f must be pure: it may run once per Upon, Peek, and Wait, on
// whichever goroutine performs the read or delivery. Intended for cheap type
// conversions; use Map when the transform should run once and be stored.
func Transformed[T, U any](base Future[T], f func(T) U) Future[U] {
	return transformed[T, U]{base: base, f: f}
}

type transformed[T, U any] struct {
	base Future[T]
	f    func(T) U
}

func (t transformed[T, U]) Upon(exec Executor, fn func(U)) {
	f := t.f
	t.base.Upon(exec, func(v T) { fn(f(v)) })
}

func (t transformed[T, U]) Peek() (U, bool) {
	if v, ok := t.base.Peek(); ok {
		return t.f(v), true
	}
	var zero U
	return zero, false
}

func (t transformed[T, U]) Wait(ctx context.Context) (U, bool) {
	if v, ok := t.base.Wait(ctx); ok {
		return t.f(v), true
	}
	var zero U
	return zero, false
}

func (t transformed[T, U]) IsFilled() bool { return t.base.IsFilled() }
