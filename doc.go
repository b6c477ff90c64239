// Package deferred provides a write-once value cell with multi-subscriber
// notification, composition helpers, and a task layer adding recoverable
// failure, cooperative cancellation, and progress reporting.
//
// Core types
//   - Deferred: a single-assignment cell. Fill publishes a value exactly once;
//     Upon subscribes a handler that runs, via an Executor, with the filled
//     value; Wait blocks until the value is available or the context ends.
//   - Future: the read-only projection of a Deferred. Always and Never
//     construct the two trivial futures without allocating a cell.
//   - Result: a success-or-failure pair carried as an ordinary value.
//   - Task: a Future of Result plus a cancellation hook and a progress tree.
//
// Scheduling
// The package owns no long-lived goroutines. Every handler is run through an
// Executor supplied by the caller; even a handler subscribed after the fill
// goes through its executor rather than running inline. Reference executors
// (immediate, goroutine-spawning, bounded, serial, pooled) live in the
// executor subpackage. Combinators called with a nil executor use the
// package default, a goroutine-spawning one; see SetDefaultExecutor.
//
// Delivery guarantees
//   - At most one Fill succeeds per Deferred; racing fills have one winner.
//   - Every subscribed handler runs exactly once with the filled value.
//   - No ordering is promised between handlers of the same Deferred.
//   - The fill's memory writes happen before every handler invocation and
//     every successful Peek or Wait.
//
// Failure and cancellation
// Failure travels in-band as Result; the cell itself has no failed state.
// Cancel on a Task is advisory: it records intent, runs the cancellation
// hook at most once, and cancels the task's progress tree. Producers are
// expected to observe IsCancelled at safe points and fill with a failure,
// conventionally one wrapping ErrCancelled.
package deferred
