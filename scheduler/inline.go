// Package scheduler supplies execution contexts satisfying env.Scheduler:
// InlineScheduler runs work synchronously on the calling goroutine, RunLoop
// is a single cooperative queue a caller drains by calling Run, and
// ThreadRunLoop is a fixed worker pool built around a shared task channel, a
// fixed number of consumer goroutines, and a deterministic, run-once
// shutdown sequence (internal/shutdown) for Close.
package scheduler

import "github.com/nyxforge/exec/env"

// InlineScheduler runs every submitted closure synchronously, on whichever
// goroutine calls Execute. It is the degenerate scheduler used as a default
// and in tests: no queue, no concurrency, no forward-progress guarantee
// beyond the caller's own.
type InlineScheduler struct{}

// Equal reports whether sch is also an InlineScheduler; every InlineScheduler
// value names the same (trivial) execution context.
func (InlineScheduler) Equal(sch env.Scheduler) bool {
	_, ok := sch.(InlineScheduler)
	return ok
}

// Execute runs fn immediately, before returning.
func (InlineScheduler) Execute(fn func()) { fn() }
