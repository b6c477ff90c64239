package executor

import "github.com/bytedance/gopkg/util/gopool"

// GoPool runs submitted closures on the shared gopool worker pool, which
// caps goroutine churn under bursty submission. A zero GoPool uses the
// library's default pool.
type GoPool struct{}

func (GoPool) Submit(fn func()) { gopool.Go(fn) }
