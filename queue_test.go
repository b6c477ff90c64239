package deferred

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestWaiterQueue_PushRoles(t *testing.T) {
	var q waiterQueue[int]

	w1 := &waiter[int]{exec: inline{}, fn: func(int) {}}
	w2 := &waiter[int]{exec: inline{}, fn: func(int) {}}

	if got := q.push(w1); got != pushedFirst {
		t.Fatalf("first push role = %v, want pushedFirst", got)
	}
	if got := q.push(w2); got != pushedNext {
		t.Fatalf("second push role = %v, want pushedNext", got)
	}
}

func TestWaiterQueue_DrainVisitsAllOnce(t *testing.T) {
	const waiters = 100

	var q waiterQueue[int]
	var calls atomic.Int64
	seen := make([]atomic.Int64, waiters)

	for i := 0; i < waiters; i++ {
		i := i
		q.push(&waiter[int]{exec: inline{}, fn: func(v int) {
			calls.Add(1)
			seen[i].Add(1)
			if v != 42 {
				t.Errorf("waiter %d got %d, want 42", i, v)
			}
		}})
	}

	q.drain(42)

	if got := calls.Load(); got != waiters {
		t.Fatalf("calls = %d, want %d", got, waiters)
	}
	for i := range seen {
		if got := seen[i].Load(); got != 1 {
			t.Fatalf("waiter %d invoked %d times", i, got)
		}
	}
}

func TestWaiterQueue_DrainEmpty(t *testing.T) {
	var q waiterQueue[int]
	q.drain(1) // must return without invoking anything
}

func TestWaiterQueue_ConcurrentPushersSingleDrainer(t *testing.T) {
	const pushers = 16
	const perPusher = 50

	var q waiterQueue[int]
	var calls atomic.Int64
	var pushed sync.WaitGroup

	pushed.Add(pushers)
	for p := 0; p < pushers; p++ {
		go func() {
			defer pushed.Done()
			for i := 0; i < perPusher; i++ {
				q.push(&waiter[int]{exec: inline{}, fn: func(int) { calls.Add(1) }})
			}
		}()
	}
	pushed.Wait()

	q.drain(7)

	if got := calls.Load(); got != pushers*perPusher {
		t.Fatalf("calls = %d, want %d", got, pushers*perPusher)
	}
}
