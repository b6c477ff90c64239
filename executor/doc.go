// Package executor provides reference implementations of the
// deferred.Executor capability: Immediate (run inline), Go (goroutine per
// submission), Limited (bounded concurrency), Serial (FIFO, one runner), and
// GoPool (shared goroutine pool). Instrumented decorates any of them with
// metrics.
//
// The deferred core consumes only the Executor interface; nothing here is
// required to use it.
package executor
