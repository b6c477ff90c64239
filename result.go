package deferred

import (
	"fmt"

	"github.com/ygrebnov/errorc"
)

// Result carries either a success value or a failure error, as an ordinary
// value. It is the payload type of Task: the cell itself has no failed
// state, so failure travels in-band.
//
// The zero Result is a success holding the zero value of T.
type Result[T any] struct {
	value T
	err   error
}

// Success returns a successful result holding v.
func Success[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Failure returns a failed result. A nil err is a programmer error and
// panics: success is expressed with Success, never with Failure(nil).
func Failure[T any](err error) Result[T] {
	if err == nil {
		panic(ErrNilFailure)
	}
	return Result[T]{err: err}
}

// IsSuccess reports whether the result carries a value.
func (r Result[T]) IsSuccess() bool { return r.err == nil }

// Get returns the value or the error, in the conventional Go shape.
func (r Result[T]) Get() (T, error) { return r.value, r.err }

// Value returns the success value, or the zero value on failure.
func (r Result[T]) Value() T { return r.value }

// Err returns the failure error, or nil on success.
func (r Result[T]) Err() error { return r.err }

// Catching runs fn and converts its outcome to a Result. A panic inside fn
// is recovered and becomes a failure wrapping ErrPanicked with the panic
// value attached.
func Catching[T any](fn func() (T, error)) (r Result[T]) {
	defer func() {
		if p := recover(); p != nil {
			r = Failure[T](errorc.With(ErrPanicked, errorc.String("value", fmt.Sprint(p))))
		}
	}()

	v, err := fn()
	if err != nil {
		return Failure[T](err)
	}
	return Success(v)
}
