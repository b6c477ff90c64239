package executor

// Immediate runs every submitted closure inline on the calling goroutine.
// With Deferred this means a handler subscribed before the fill runs on the
// filler's goroutine, and one subscribed after the fill runs on the
// subscriber's. Choose it deliberately: a slow or blocking handler stalls
// whoever submitted it.
type Immediate struct{}

func (Immediate) Submit(fn func()) { fn() }
