package deferred

import (
	"strconv"
	"sync/atomic"

	"github.com/ygrebnov/errorc"
)

// AllSucceeded returns a task that succeeds with every input's success value
// once all inputs have completed, preserving input positions regardless of
// completion order. The first failure wins: it becomes the result, tagged
// with the failing input's index, and the remaining inputs are cancelled.
// An empty input succeeds immediately with an empty slice.
//
// Each input's progress root is adopted under the returned task's root, so
// the aggregate fraction advances as the inputs do. Cancelling the returned
// task cancels every input.
func AllSucceeded[T any](tasks []*Task[T]) *Task[[]T] {
	d := New[Result[[]T]]()
	if len(tasks) == 0 {
		d.Fill(Success([]T{}))
		return NewTask(d.Future())
	}

	out := &Task[[]T]{future: d.Future(), chain: &chain{root: &Progress{}}}
	out.cancelFn = func() {
		for _, t := range tasks {
			t.Cancel()
		}
	}

	results := make([]T, len(tasks))
	var remaining atomic.Int64
	remaining.Store(int64(len(tasks)))
	var failed atomic.Bool

	for i, t := range tasks {
		i, t := i, t

		units := int64(unitsSynthetic)
		if t.chain.external {
			units = unitsExternal
		}
		out.chain.root.Adopt(t.chain.root, units)

		t.future.Upon(inline{}, func(r Result[T]) {
			if err := r.Err(); err != nil {
				if failed.CompareAndSwap(false, true) {
					d.Fill(Failure[[]T](errorc.With(err, errorc.String("task_index", strconv.Itoa(i)))))
					for j, o := range tasks {
						if j != i {
							o.Cancel()
						}
					}
				}
				return
			}
			results[i] = r.Value()
			if remaining.Add(-1) == 0 {
				d.Fill(Success(results))
			}
		})
	}

	return out
}

// AndSuccess returns a task that succeeds with both success values once a
// and b have succeeded; the first failure wins and cancels the other input.
func AndSuccess[A, B any](a *Task[A], b *Task[B]) *Task[Pair[A, B]] {
	d := New[Result[Pair[A, B]]]()

	out := &Task[Pair[A, B]]{future: d.Future(), chain: &chain{root: &Progress{}}}
	out.cancelFn = func() {
		a.Cancel()
		b.Cancel()
	}

	adopt := func(c *chain) {
		units := int64(unitsSynthetic)
		if c.external {
			units = unitsExternal
		}
		out.chain.root.Adopt(c.root, units)
	}
	adopt(a.chain)
	adopt(b.chain)

	var av atomic.Pointer[A]
	var bv atomic.Pointer[B]
	var failed atomic.Bool

	settle := func() {
		pa, pb := av.Load(), bv.Load()
		if pa != nil && pb != nil {
			d.Fill(Success(Pair[A, B]{First: *pa, Second: *pb}))
		}
	}
	fail := func(err error, other func()) {
		if failed.CompareAndSwap(false, true) {
			d.Fill(Failure[Pair[A, B]](err))
			other()
		}
	}

	a.future.Upon(inline{}, func(r Result[A]) {
		if err := r.Err(); err != nil {
			fail(err, b.Cancel)
			return
		}
		v := r.Value()
		av.Store(&v)
		settle()
	})
	b.future.Upon(inline{}, func(r Result[B]) {
		if err := r.Err(); err != nil {
			fail(err, a.Cancel)
			return
		}
		v := r.Value()
		bv.Store(&v)
		settle()
	})

	return out
}
