package tests

import (
	"context"
	"time"

	"github.com/ygrebnov/deferred"
)

// immediate runs handlers inline; most scenarios want fully deterministic
// delivery.
type immediate struct{}

func (immediate) Submit(fn func()) { fn() }

var _ deferred.Executor = immediate{}

// waitResult blocks up to a second for a task outcome.
func waitResult[T any](t *deferred.Task[T]) (deferred.Result[T], bool) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	return t.Wait(ctx)
}
