package deferred

import (
	"errors"
	"strings"
	"testing"
)

func TestResult_SuccessAndFailure(t *testing.T) {
	s := Success(7)
	if !s.IsSuccess() {
		t.Fatalf("Success reports failure")
	}
	if v, err := s.Get(); v != 7 || err != nil {
		t.Fatalf("Get = %v, %v", v, err)
	}

	boom := errors.New("boom")
	f := Failure[int](boom)
	if f.IsSuccess() {
		t.Fatalf("Failure reports success")
	}
	if _, err := f.Get(); !errors.Is(err, boom) {
		t.Fatalf("Get error = %v, want %v", err, boom)
	}
	if f.Value() != 0 {
		t.Fatalf("Value on failure = %d, want zero", f.Value())
	}
}

func TestFailure_NilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	Failure[int](nil)
}

func TestCatching(t *testing.T) {
	type testCase struct {
		name    string
		fn      func() (int, error)
		wantV   int
		wantErr func(error) bool
	}

	boom := errors.New("boom")

	tests := []testCase{
		{
			name:    "success",
			fn:      func() (int, error) { return 5, nil },
			wantV:   5,
			wantErr: func(err error) bool { return err == nil },
		},
		{
			name:    "returned error",
			fn:      func() (int, error) { return 0, boom },
			wantErr: func(err error) bool { return errors.Is(err, boom) },
		},
		{
			name:    "panic becomes ErrPanicked",
			fn:      func() (int, error) { panic("kaboom") },
			wantErr: func(err error) bool { return errors.Is(err, ErrPanicked) && strings.Contains(err.Error(), "kaboom") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Catching(tt.fn)
			if r.Value() != tt.wantV {
				t.Fatalf("value = %v, want %v", r.Value(), tt.wantV)
			}
			if !tt.wantErr(r.Err()) {
				t.Fatalf("unexpected error: %v", r.Err())
			}
		})
	}
}
