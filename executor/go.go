package executor

// Go runs every submitted closure on a fresh goroutine. This is also the
// behavior of the package default executor in the deferred core.
type Go struct{}

func (Go) Submit(fn func()) { go fn() }
