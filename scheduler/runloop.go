package scheduler

import (
	"sync"

	"github.com/nyxforge/exec/env"
)

// RunLoop is a single cooperative task queue: schedulers obtained from it via
// Scheduler() push closures onto the queue with Execute, and a single caller
// goroutine drains them by calling Run, which blocks until Finish is called
// and the queue empties. This is the execution context a program's main
// goroutine typically drives itself, as opposed to ThreadRunLoop, which
// drives its own worker goroutines.
type RunLoop struct {
	mu     sync.Mutex
	cond   *sync.Cond
	queue  []func()
	closed bool
}

// NewRunLoop constructs an empty, open RunLoop.
func NewRunLoop() *RunLoop {
	rl := &RunLoop{}
	rl.cond = sync.NewCond(&rl.mu)
	return rl
}

// Push enqueues fn to run on the goroutine calling Run. Push after Finish is
// a no-op: nothing enqueued past Finish will ever run, matching run_loop's
// own "no more scheduling once finished" contract. Push itself is
// receiver-agnostic - it only ever sees the opaque closures Execute hands
// it - so the stop-token check a receiver crossing this boundary requires
// is applied by the caller building the closure, not here (exec.DeliverValue
// for Schedule/TransferJust/Transfer/ScheduleFrom, an equivalent inline
// check in adapt.On's Start).
func (rl *RunLoop) Push(fn func()) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	if rl.closed {
		return
	}
	rl.queue = append(rl.queue, fn)
	rl.cond.Signal()
}

// Run drains and executes queued closures, in FIFO order, blocking when the
// queue is empty until either more work arrives or Finish is called. Run
// returns once Finish has been called and the queue is empty.
func (rl *RunLoop) Run() {
	for {
		rl.mu.Lock()
		for len(rl.queue) == 0 && !rl.closed {
			rl.cond.Wait()
		}
		if len(rl.queue) == 0 && rl.closed {
			rl.mu.Unlock()
			return
		}
		fn := rl.queue[0]
		rl.queue = rl.queue[1:]
		rl.mu.Unlock()
		fn()
	}
}

// Finish stops accepting new work and wakes Run so it can drain the
// remaining queue and return.
func (rl *RunLoop) Finish() {
	rl.mu.Lock()
	rl.closed = true
	rl.cond.Broadcast()
	rl.mu.Unlock()
}

// Scheduler returns the env.Scheduler handle for this run loop: Execute
// pushes the closure onto the loop instead of running it immediately.
func (rl *RunLoop) Scheduler() RunLoopScheduler { return RunLoopScheduler{rl: rl} }

// RunLoopScheduler is the copyable, comparable scheduler handle for a
// particular RunLoop - two handles are Equal iff they name the same loop.
type RunLoopScheduler struct{ rl *RunLoop }

func (s RunLoopScheduler) Equal(sch env.Scheduler) bool {
	o, ok := sch.(RunLoopScheduler)
	return ok && o.rl == s.rl
}

func (s RunLoopScheduler) Execute(fn func()) { s.rl.Push(fn) }
