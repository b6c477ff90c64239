package executor

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// Limited runs submitted closures on goroutines while holding at most n of
// them runnable at a time. Submissions beyond the limit queue on the
// semaphore; Submit itself never blocks.
type Limited struct {
	sem *semaphore.Weighted
}

// NewLimited returns an executor bounded to n concurrent closures.
// n must be > 0.
func NewLimited(n int64) *Limited {
	if n < 1 {
		panic("executor: NewLimited requires n > 0")
	}
	return &Limited{sem: semaphore.NewWeighted(n)}
}

func (l *Limited) Submit(fn func()) {
	go func() {
		// Acquire with the background context cannot fail.
		_ = l.sem.Acquire(context.Background(), 1)
		defer l.sem.Release(1)
		fn()
	}()
}
