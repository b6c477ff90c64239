package deferred

import "sync/atomic"

// Pair carries the two values gathered by Both.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Both returns a Deferred that fills with both values once a and b have
// filled, in whichever order they complete.
func Both[A, B any](a Future[A], b Future[B]) *Deferred[Pair[A, B]] {
	return AndThen(a, inline{}, func(av A) Future[Pair[A, B]] {
		return Map(b, inline{}, func(bv B) Pair[A, B] {
			return Pair[A, B]{First: av, Second: bv}
		}).Future()
	})
}

// AllFilled returns a future that fills once every input has filled. The
// result preserves input positions: element i is the value of futures[i],
// regardless of completion order. An empty input resolves immediately to an
// empty slice.
func AllFilled[T any](futures []Future[T]) Future[[]T] {
	d := New[[]T]()
	if len(futures) == 0 {
		d.Fill([]T{})
		return d.Future()
	}

	results := make([]T, len(futures))
	var remaining atomic.Int64
	remaining.Store(int64(len(futures)))

	for i, f := range futures {
		i := i
		f.Upon(inline{}, func(v T) {
			results[i] = v
			// The final decrement observes every earlier slot write: each
			// handler writes its slot before decrementing, and the atomic
			// decrements are totally ordered.
			if remaining.Add(-1) == 0 {
				d.Fill(results)
			}
		})
	}
	return d.Future()
}

// FirstFilled returns a future that fills with the value of whichever input
// fills first; later deliveries lose the store race and are discarded. An
// empty input never fills.
func FirstFilled[T any](futures []Future[T]) Future[T] {
	d := New[T]()
	for _, f := range futures {
		f.Upon(inline{}, func(v T) {
			d.Fill(v)
		})
	}
	return d.Future()
}
