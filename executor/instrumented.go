package executor

import (
	"time"

	"github.com/ygrebnov/deferred"
	"github.com/ygrebnov/deferred/metrics"
)

// Instrumented decorates an executor with three instruments: a submissions
// counter, an in-flight up-down counter, and a run-duration histogram in
// seconds. Instrument names are prefixed with name.
func Instrumented(inner deferred.Executor, name string, p metrics.Provider) deferred.Executor {
	if p == nil {
		p = metrics.Noop{}
	}
	return &instrumented{
		inner:     inner,
		submitted: p.Counter(name + "_submitted_total"),
		inflight:  p.UpDownCounter(name + "_inflight"),
		duration:  p.Histogram(name + "_run_seconds"),
	}
}

type instrumented struct {
	inner     deferred.Executor
	submitted metrics.Counter
	inflight  metrics.UpDownCounter
	duration  metrics.Histogram
}

func (e *instrumented) Submit(fn func()) {
	e.submitted.Add(1)
	e.inflight.Add(1)
	e.inner.Submit(func() {
		start := time.Now()
		defer func() {
			e.duration.Record(time.Since(start).Seconds())
			e.inflight.Add(-1)
		}()
		fn()
	})
}
