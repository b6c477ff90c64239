package deferred

import "errors"

const Namespace = "deferred"

var (
	// ErrCancelled is the conventional failure a producer fills a Task with
	// after observing cancellation. The library never fills it on its own.
	ErrCancelled = errors.New(Namespace + ": task execution cancelled")

	// ErrPanicked wraps a panic value recovered by Catching.
	ErrPanicked = errors.New(Namespace + ": task execution panicked")

	// ErrNilExecutor is the panic value for an Upon call with a nil executor.
	ErrNilExecutor = errors.New(Namespace + ": nil executor")

	// ErrNilHandler is the panic value for an Upon call with a nil handler.
	ErrNilHandler = errors.New(Namespace + ": nil handler")

	// ErrNilTask reports a task-producing closure that returned nil; the
	// composed task fails with it.
	ErrNilTask = errors.New(Namespace + ": nil task")

	// ErrProgressAdopted is the panic value for adopting a progress node that
	// already has a parent.
	ErrProgressAdopted = errors.New(Namespace + ": progress node already adopted")

	// ErrNilFailure is the panic value for constructing a Failure result from
	// a nil error.
	ErrNilFailure = errors.New(Namespace + ": failure requires a non-nil error")
)
