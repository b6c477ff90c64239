package deferred

import (
	"sync"
	"sync/atomic"
)

// Progress is a node in a tree of counted work. Leaf nodes are driven
// directly through Add, SetCompleted, or Finish; interior nodes aggregate
// adopted children, each weighted by the pending unit count it was adopted
// with. Task composition builds such trees: every task chain exposes a
// single root node whose fraction advances as steps register and complete.
//
// Counter reads, including Fraction, are lock-free. The internal lock only
// serializes structural mutation: total extension and child adoption during
// chain growth.
type Progress struct {
	total     atomic.Int64
	completed atomic.Int64
	cancelled atomic.Bool
	paused    atomic.Bool

	mu       sync.Mutex
	parent   *Progress
	children atomic.Pointer[[]progressChild]
}

type progressChild struct {
	node  *Progress
	units int64
}

// NewProgress returns a leaf node expecting total units of work, driven by
// its owner through Add, SetCompleted, or Finish. Pass such a node to
// WithProgress to have a task chain reserve the external-work weight for it.
func NewProgress(total int64) *Progress {
	p := &Progress{}
	if total < 1 {
		total = 1
	}
	p.total.Store(total)
	return p
}

// Total returns the node's own unit count, including units held by adopted
// children.
func (p *Progress) Total() int64 { return p.total.Load() }

// Completed returns the node's own completed units. Children contribute to
// Fraction, not to this counter.
func (p *Progress) Completed() int64 { return p.completed.Load() }

// Fraction returns completion in [0, 1], aggregating adopted children by
// their unit weight. It is monotone for a live chain except across an
// and-then commit that re-weights a provisional step.
func (p *Progress) Fraction() float64 {
	total := p.total.Load()
	if total <= 0 {
		return 0
	}
	acc := float64(p.completed.Load())
	if cs := p.children.Load(); cs != nil {
		for _, c := range *cs {
			acc += float64(c.units) * c.node.Fraction()
		}
	}
	f := acc / float64(total)
	if f > 1 {
		f = 1
	}
	return f
}

// Add records n more completed units, clamped to the total.
func (p *Progress) Add(n int64) {
	total := p.total.Load()
	for {
		cur := p.completed.Load()
		next := cur + n
		if next > total {
			next = total
		}
		if next < cur {
			next = cur
		}
		if p.completed.CompareAndSwap(cur, next) {
			return
		}
	}
}

// SetCompleted sets the completed counter, never moving it backwards.
func (p *Progress) SetCompleted(n int64) {
	total := p.total.Load()
	if n > total {
		n = total
	}
	for {
		cur := p.completed.Load()
		if n <= cur {
			return
		}
		if p.completed.CompareAndSwap(cur, n) {
			return
		}
	}
}

// Finish marks the node fully completed.
func (p *Progress) Finish() {
	p.SetCompleted(p.total.Load())
}

// IsCancelled reports whether Cancel was called on this node or an ancestor.
func (p *Progress) IsCancelled() bool { return p.cancelled.Load() }

// IsPaused reports whether the node is currently paused.
func (p *Progress) IsPaused() bool { return p.paused.Load() }

// Cancel marks the node cancelled and propagates to adopted children, so a
// child wrapping externally owned work sees the cancellation through its own
// flag. Idempotent.
func (p *Progress) Cancel() {
	if p.cancelled.Swap(true) {
		return
	}
	p.eachChild(func(c *Progress) { c.Cancel() })
}

// Pause marks the node paused and propagates to adopted children.
func (p *Progress) Pause() {
	if p.paused.Swap(true) {
		return
	}
	p.eachChild(func(c *Progress) { c.Pause() })
}

// Resume clears the paused flag and propagates to adopted children.
func (p *Progress) Resume() {
	if !p.paused.Swap(false) {
		return
	}
	p.eachChild(func(c *Progress) { c.Resume() })
}

func (p *Progress) eachChild(fn func(*Progress)) {
	if cs := p.children.Load(); cs != nil {
		for _, c := range *cs {
			fn(c.node)
		}
	}
}

// Adopt links child under p, accounting for units of p's total. A node can
// be adopted at most once; a second adoption is a programmer error and
// panics. The child's cancelled and paused state is aligned with p's at
// adoption time.
func (p *Progress) Adopt(child *Progress, units int64) {
	if child == nil || units < 1 {
		panic(ErrProgressAdopted)
	}

	child.mu.Lock()
	if child.parent != nil {
		child.mu.Unlock()
		panic(ErrProgressAdopted)
	}
	child.parent = p
	child.mu.Unlock()

	p.mu.Lock()
	p.total.Add(units)
	cur := p.children.Load()
	var next []progressChild
	if cur != nil {
		next = append(next, *cur...)
	}
	next = append(next, progressChild{node: child, units: units})
	p.children.Store(&next)
	p.mu.Unlock()

	if p.IsCancelled() {
		child.Cancel()
	}
	if p.IsPaused() {
		child.Pause()
	}
}

// extend grows the node's total by n units without adopting a child. Used
// for steps tracked through the node's own completed counter.
func (p *Progress) extend(n int64) {
	p.mu.Lock()
	p.total.Add(n)
	p.mu.Unlock()
}

// shrink reduces the node's total by n units. Only the chain uses it, when a
// provisional step re-weights on commit.
func (p *Progress) shrink(n int64) {
	p.mu.Lock()
	p.total.Add(-n)
	p.mu.Unlock()
}
