package deferred

import (
	"runtime"
	"sync/atomic"
)

// waiter is one pending subscription: the handler plus the executor it will
// be submitted to. Waiters are owned by the queue between push and drain and
// are invoked at most once.
type waiter[T any] struct {
	exec Executor
	fn   func(T)
	next atomic.Pointer[waiter[T]]
}

func (w *waiter[T]) invoke(v T) {
	fn := w.fn
	w.exec.Submit(func() { fn(v) })
}

// pushRole reports whether a push established the queue head. The first
// pusher has an extra duty: if the fill has already happened, the fulfiller's
// drain may have found an empty queue and returned, so the first pusher must
// re-check the cell and drain its own chain (see Deferred.Upon).
type pushRole int

const (
	pushedNext pushRole = iota
	pushedFirst
)

// waiterQueue is an intrusive MPSC list: many concurrent pushers, one
// drainer per claimed chain. Pushers swap the tail and link the previous
// node's next pointer; the drainer claims the head and walks next links,
// spinning briefly for a pusher that has swapped the tail but not yet
// published its link.
type waiterQueue[T any] struct {
	head atomic.Pointer[waiter[T]]
	tail atomic.Pointer[waiter[T]]
}

func (q *waiterQueue[T]) push(w *waiter[T]) pushRole {
	prev := q.tail.Swap(w)
	if prev != nil {
		prev.next.Store(w)
		return pushedNext
	}
	q.head.Store(w)
	return pushedFirst
}

// drain invokes every waiter currently linked, or linked concurrently while
// the drain runs, exactly once with v. It is safe to call from both the
// fulfiller and a racing first pusher: each caller only walks the chain it
// claimed by swapping out the head.
func (q *waiterQueue[T]) drain(v T) {
	for {
		head := q.head.Swap(nil)
		if head == nil {
			if q.tail.Load() == nil {
				return
			}
			// A pusher has swapped the tail but not yet published the head.
			runtime.Gosched()
			continue
		}

		n := head
		for {
			n.invoke(v)

			next := n.next.Load()
			if next == nil {
				// n may be the last node; closing the tail ends the chain.
				if q.tail.CompareAndSwap(n, nil) {
					break
				}
				// Tail moved past n: its pusher is about to link next.
				for next == nil {
					runtime.Gosched()
					next = n.next.Load()
				}
			}
			n = next
		}

		// Pushers that started a fresh chain after the tail was closed will
		// re-check the filled cell themselves (pushedFirst duty). Only loop
		// again if a new head is already visible.
		if q.head.Load() == nil {
			return
		}
	}
}
