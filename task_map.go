package deferred

import "sync/atomic"

// MapSuccess returns a task whose success value is f applied to t's success
// value; failure propagates unchanged. An error returned by f, or a panic
// inside it, becomes the new task's failure. The transform runs via exec
// (package default when nil) after t completes.
//
// Cancelling the returned task cancels t, the currently running step;
// the shared progress chain accounts the step with the map weight.
func MapSuccess[T, U any](t *Task[T], exec Executor, f func(T) (U, error)) *Task[U] {
	d := New[Result[U]]()
	commit := t.chain.registerMap()

	t.future.Upon(orDefault(exec), func(r Result[T]) {
		var out Result[U]
		if err := r.Err(); err != nil {
			out = Failure[U](err)
		} else {
			out = Catching(func() (U, error) { return f(r.Value()) })
		}
		commit()
		d.Fill(out)
	})

	return &Task[U]{
		future:   d.Future(),
		exec:     t.exec,
		chain:    t.chain,
		cancelFn: t.Cancel,
	}
}

// ThenTask returns a task that, once t succeeds, starts the task produced by
// f and completes with its outcome; failure of t short-circuits. f runs via
// exec (package default when nil).
//
// Cancelling the returned task cancels the currently running step: t while
// the inner task has not started, the inner task afterwards. Upstream
// completed steps are unaffected. The progress chain reserves provisional
// units for the step and settles them when the inner task is known,
// adopting the inner chain's root so inner work drives the outer fraction.
func ThenTask[T, U any](t *Task[T], exec Executor, f func(T) *Task[U]) *Task[U] {
	d := New[Result[U]]()
	step := t.chain.beginAndThen()

	var inner atomic.Pointer[Task[U]]
	var wantCancel atomic.Bool

	nt := &Task[U]{
		future: d.Future(),
		exec:   t.exec,
		chain:  t.chain,
	}
	nt.cancelFn = func() {
		wantCancel.Store(true)
		if in := inner.Load(); in != nil {
			in.Cancel()
			return
		}
		t.Cancel()
	}

	t.future.Upon(orDefault(exec), func(r Result[T]) {
		if err := r.Err(); err != nil {
			step.skip()
			d.Fill(Failure[U](err))
			return
		}

		in, err := makeTask(func() *Task[U] { return f(r.Value()) })
		if err != nil {
			step.skip()
			d.Fill(Failure[U](err))
			return
		}

		inner.Store(in)
		if wantCancel.Load() {
			// Cancel raced the inner task's creation; deliver it now.
			in.Cancel()
		}

		units := int64(unitsSynthetic)
		if in.chain.external {
			units = unitsExternal
		}
		step.commit(in.chain.root, units)

		in.future.Upon(inline{}, func(ru Result[U]) { d.Fill(ru) })
	})

	return nt
}

// Recover returns a task that replaces t's failure with h(err); success
// passes through unchanged. An error returned by h, or a panic inside it,
// becomes the new failure. Accounted as a map step on the shared chain.
func Recover[T any](t *Task[T], exec Executor, h func(error) (T, error)) *Task[T] {
	d := New[Result[T]]()
	commit := t.chain.registerMap()

	t.future.Upon(orDefault(exec), func(r Result[T]) {
		out := r
		if err := r.Err(); err != nil {
			out = Catching(func() (T, error) { return h(err) })
		}
		commit()
		d.Fill(out)
	})

	return &Task[T]{
		future:   d.Future(),
		exec:     t.exec,
		chain:    t.chain,
		cancelFn: t.Cancel,
	}
}

// Fallback returns a task that, once t fails, starts the task produced by
// h(err) and completes with its outcome; success of t passes through
// unchanged. The cancellation and progress wiring mirror ThenTask, with the
// branches swapped.
func Fallback[T any](t *Task[T], exec Executor, h func(error) *Task[T]) *Task[T] {
	d := New[Result[T]]()
	step := t.chain.beginAndThen()

	var inner atomic.Pointer[Task[T]]
	var wantCancel atomic.Bool

	nt := &Task[T]{
		future: d.Future(),
		exec:   t.exec,
		chain:  t.chain,
	}
	nt.cancelFn = func() {
		wantCancel.Store(true)
		if in := inner.Load(); in != nil {
			in.Cancel()
			return
		}
		t.Cancel()
	}

	t.future.Upon(orDefault(exec), func(r Result[T]) {
		if r.IsSuccess() {
			step.skip()
			d.Fill(r)
			return
		}

		in, err := makeTask(func() *Task[T] { return h(r.Err()) })
		if err != nil {
			step.skip()
			d.Fill(Failure[T](err))
			return
		}

		inner.Store(in)
		if wantCancel.Load() {
			in.Cancel()
		}

		units := int64(unitsSynthetic)
		if in.chain.external {
			units = unitsExternal
		}
		step.commit(in.chain.root, units)

		in.future.Upon(inline{}, func(ru Result[T]) { d.Fill(ru) })
	})

	return nt
}

// IgnoredTask drops the success payload, keeping failure, cancellation, and
// progress wiring intact.
func IgnoredTask[T any](t *Task[T]) *Task[struct{}] {
	return MapSuccess(t, inline{}, func(T) (struct{}, error) { return struct{}{}, nil })
}

// makeTask runs a task-producing closure, converting a panic or a nil task
// into an error.
func makeTask[U any](fn func() *Task[U]) (t *Task[U], err error) {
	r := Catching(func() (*Task[U], error) {
		in := fn()
		if in == nil {
			return nil, ErrNilTask
		}
		return in, nil
	})
	return r.Value(), r.Err()
}
