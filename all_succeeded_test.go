package deferred

import (
	"errors"
	"testing"
	"time"
)

func TestAllSucceeded_PreservesInputOrder(t *testing.T) {
	ds := []*Deferred[Result[int]]{New[Result[int]](), New[Result[int]](), New[Result[int]]()}
	tasks := make([]*Task[int], len(ds))
	for i, d := range ds {
		tasks[i] = NewTask(d.Future())
	}

	out := AllSucceeded(tasks)

	ds[2].Fill(Success(30))
	ds[0].Fill(Success(10))
	ds[1].Fill(Success(20))

	r, ok := out.Peek()
	if !ok || r.Err() != nil {
		t.Fatalf("result = %+v, %v", r, ok)
	}
	want := []int{10, 20, 30}
	for i := range want {
		if r.Value()[i] != want[i] {
			t.Fatalf("values = %v, want %v", r.Value(), want)
		}
	}
}

func TestAllSucceeded_Empty(t *testing.T) {
	out := AllSucceeded[int](nil)

	r, ok := out.Peek()
	if !ok || r.Err() != nil || len(r.Value()) != 0 {
		t.Fatalf("result = %+v, %v", r, ok)
	}
}

func TestAllSucceeded_FirstFailureWinsAndCancelsRest(t *testing.T) {
	boom := errors.New("boom")
	cancelled := make(chan struct{})

	d0, d1 := New[Result[int]](), New[Result[int]]()
	tasks := []*Task[int]{
		NewTask(d0.Future()),
		NewTask(d1.Future(), WithCancelFunc(func() { close(cancelled) })),
	}

	out := AllSucceeded(tasks)
	d0.Fill(Failure[int](boom))

	r, ok := out.Peek()
	if !ok || !errors.Is(r.Err(), boom) {
		t.Fatalf("result = %+v, %v", r, ok)
	}

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatalf("pending sibling not cancelled")
	}
}

func TestAndSuccess(t *testing.T) {
	da, db := New[Result[int]](), New[Result[string]]()
	out := AndSuccess(NewTask(da.Future()), NewTask(db.Future()))

	db.Fill(Success("x"))
	if _, ok := out.Peek(); ok {
		t.Fatalf("resolved with one side pending")
	}
	da.Fill(Success(4))

	r, ok := out.Peek()
	if !ok || r.Err() != nil {
		t.Fatalf("result = %+v, %v", r, ok)
	}
	if p := r.Value(); p.First != 4 || p.Second != "x" {
		t.Fatalf("pair = %+v", p)
	}
}

func TestAndSuccess_FailureCancelsOther(t *testing.T) {
	boom := errors.New("boom")
	cancelled := make(chan struct{})

	da, db := New[Result[int]](), New[Result[string]]()
	a := NewTask(da.Future())
	b := NewTask(db.Future(), WithCancelFunc(func() { close(cancelled) }))

	out := AndSuccess(a, b)
	da.Fill(Failure[int](boom))

	r, _ := out.Peek()
	if !errors.Is(r.Err(), boom) {
		t.Fatalf("result err = %v", r.Err())
	}

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatalf("other side not cancelled")
	}
}
