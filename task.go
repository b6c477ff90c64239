package deferred

import (
	"context"
	"sync/atomic"
)

// Task is a future of Result plus cooperative cancellation and a progress
// tree. Composing tasks with MapSuccess, ThenTask, Recover, or Fallback
// extends the origin's progress chain rather than starting a sibling, so a
// whole pipeline reports through the single node returned by Progress.
type Task[T any] struct {
	future Future[Result[T]]
	exec   Executor

	chain *chain

	cancelled atomic.Bool
	cancelFn  func()
}

// TaskOption configures NewTask.
type TaskOption func(*taskOptions)

type taskOptions struct {
	cancelFn func()
	progress *Progress
	exec     Executor
}

// WithCancelFunc attaches the hook Cancel invokes, at most once,
// asynchronously on the task's executor. Producers use it to interrupt the
// work feeding the underlying future.
func WithCancelFunc(fn func()) TaskOption {
	return func(o *taskOptions) { o.cancelFn = fn }
}

// WithProgress adopts an externally driven progress node as the origin step.
// The chain reserves the external-work weight for it, so the node dominates
// the chain's fraction; without this option the origin is a synthetic
// one-unit step completing when the future fills.
func WithProgress(p *Progress) TaskOption {
	return func(o *taskOptions) { o.progress = p }
}

// WithExecutor sets the executor used for the cancellation hook and
// inherited by composed tasks for their own hooks. Defaults to the package
// default executor.
func WithExecutor(e Executor) TaskOption {
	return func(o *taskOptions) { o.exec = e }
}

// NewTask wraps a future of Result as an origin task.
func NewTask[T any](f Future[Result[T]], opts ...TaskOption) *Task[T] {
	var o taskOptions
	for _, opt := range opts {
		if opt == nil {
			panic(Namespace + ": nil task option")
		}
		opt(&o)
	}

	t := &Task[T]{
		future:   f,
		exec:     o.exec,
		chain:    newChain(o.progress),
		cancelFn: o.cancelFn,
	}
	if o.progress == nil {
		leaf := t.chain.adoptSynthetic()
		f.Upon(inline{}, func(Result[T]) { leaf.Finish() })
	}
	return t
}

// Succeeded returns a task already completed with v.
func Succeeded[T any](v T) *Task[T] {
	t := &Task[T]{future: Always(Success(v)), chain: newChain(nil)}
	t.chain.adoptSynthetic().Finish()
	return t
}

// Failed returns a task already completed with err.
func Failed[T any](err error) *Task[T] {
	t := &Task[T]{future: Always(Failure[T](err)), chain: newChain(nil)}
	t.chain.adoptSynthetic().Finish()
	return t
}

// Future returns the task's underlying future of Result.
func (t *Task[T]) Future() Future[Result[T]] { return t.future }

// Progress returns the root node of the task's chain.
func (t *Task[T]) Progress() *Progress { return t.chain.root }

// Cancel records the cancellation intent, cancels the progress root, and
// invokes the cancellation hook. Idempotent: the hook runs at most once, and
// it is submitted to the task's executor rather than called directly; with
// the package default executor it runs on a fresh goroutine.
// Cancellation is advisory; it does not fill the task. Producers observe
// IsCancelled at safe points and conventionally fill with a failure
// wrapping ErrCancelled.
func (t *Task[T]) Cancel() {
	if t.cancelled.Swap(true) {
		return
	}
	t.chain.root.Cancel()
	if fn := t.cancelFn; fn != nil {
		orDefault(t.exec).Submit(fn)
	}
}

// IsCancelled reports whether Cancel was called on this task.
func (t *Task[T]) IsCancelled() bool { return t.cancelled.Load() }

// Upon subscribes fn to the task's outcome.
func (t *Task[T]) Upon(exec Executor, fn func(Result[T])) {
	t.future.Upon(exec, fn)
}

// UponSuccess subscribes fn to run only when the task succeeds.
func (t *Task[T]) UponSuccess(exec Executor, fn func(T)) {
	t.future.Upon(exec, func(r Result[T]) {
		if r.IsSuccess() {
			fn(r.Value())
		}
	})
}

// UponFailure subscribes fn to run only when the task fails.
func (t *Task[T]) UponFailure(exec Executor, fn func(error)) {
	t.future.Upon(exec, func(r Result[T]) {
		if err := r.Err(); err != nil {
			fn(err)
		}
	})
}

// Peek returns the outcome if the task has completed.
func (t *Task[T]) Peek() (Result[T], bool) { return t.future.Peek() }

// Wait blocks until the task completes or ctx ends.
func (t *Task[T]) Wait(ctx context.Context) (Result[T], bool) {
	return t.future.Wait(ctx)
}
