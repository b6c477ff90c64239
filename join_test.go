package deferred

import (
	"testing"
)

func TestAllFilled_PreservesInputOrder(t *testing.T) {
	ds := []*Deferred[string]{New[string](), New[string](), New[string]()}
	fs := make([]Future[string], len(ds))
	for i, d := range ds {
		fs[i] = d.Future()
	}

	out := AllFilled(fs)

	// Fill out of order: positions 2, 0, 1.
	ds[2].Fill("a")
	ds[0].Fill("b")
	if out.IsFilled() {
		t.Fatalf("resolved before all inputs filled")
	}
	ds[1].Fill("c")

	got, ok := out.Peek()
	if !ok {
		t.Fatalf("not resolved after all inputs filled")
	}
	want := []string{"b", "c", "a"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("result = %v, want %v", got, want)
		}
	}
}

func TestAllFilled_Empty(t *testing.T) {
	out := AllFilled[int](nil)

	got, ok := out.Peek()
	if !ok {
		t.Fatalf("empty AllFilled did not resolve")
	}
	if len(got) != 0 {
		t.Fatalf("result = %v, want empty", got)
	}
}

func TestFirstFilled(t *testing.T) {
	ds := []*Deferred[int]{New[int](), New[int](), New[int]()}
	fs := make([]Future[int], len(ds))
	for i, d := range ds {
		fs[i] = d.Future()
	}

	out := FirstFilled(fs)

	ds[1].Fill(10)
	if v, ok := out.Peek(); !ok || v != 10 {
		t.Fatalf("Peek = %v, %v; want 10, true", v, ok)
	}

	// Late deliveries lose the store race and are discarded.
	ds[0].Fill(20)
	ds[2].Fill(30)
	if v, _ := out.Peek(); v != 10 {
		t.Fatalf("value changed to %d after late fills", v)
	}
}

func TestFirstFilled_EmptyNeverResolves(t *testing.T) {
	out := FirstFilled[int](nil)
	if out.IsFilled() {
		t.Fatalf("empty FirstFilled resolved")
	}
}

func TestBoth(t *testing.T) {
	a, b := New[int](), New[string]()

	out := Both(a.Future(), b.Future())

	b.Fill("x")
	if out.IsFilled() {
		t.Fatalf("resolved with one side pending")
	}
	a.Fill(1)

	got, ok := out.Peek()
	if !ok {
		t.Fatalf("not resolved after both filled")
	}
	if got.First != 1 || got.Second != "x" {
		t.Fatalf("result = %+v", got)
	}
}
