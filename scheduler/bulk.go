package scheduler

import (
	"sync"

	"github.com/nyxforge/exec"
	"github.com/nyxforge/exec/adapt"
	"github.com/nyxforge/exec/dispatch"
	"github.com/nyxforge/exec/internal/invoke"
)

// init registers a fused Bulk customization for ThreadRunLoopScheduler: when
// adapt.Bulk's search finds a ThreadRunLoopScheduler as its child's value
// completion scheduler, items run across the pool's own workers (via
// Execute) instead of adapt's sequential default - this is where Bulk's
// concurrency actually lives, scoped to a scheduler that has a worker pool
// to spread items across.
func init() {
	dispatch.Register[adapt.BulkTag, ThreadRunLoopScheduler](fusedBulk)
}

func fusedBulk(sch ThreadRunLoopScheduler, inner exec.Sender, r exec.Receiver, shape int, fn invoke.Func) exec.OperationState {
	return exec.Connect(inner, &fusedBulkReceiver{base: r, sch: sch, shape: shape, fn: fn})
}

type fusedBulkReceiver struct {
	base  exec.Receiver
	sch   ThreadRunLoopScheduler
	shape int
	fn    invoke.Func
}

func (r *fusedBulkReceiver) SetValue(values ...any) {
	if r.shape <= 0 {
		exec.DeliverValue(r.base, values...)
		return
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	wg.Add(r.shape)
	for i := 0; i < r.shape; i++ {
		r.sch.Execute(func() {
			defer wg.Done()
			args := append([]any{i}, values...)
			results, err := r.fn.Call(args...)
			if err == nil && len(results) > 0 {
				if e, ok := results[len(results)-1].(error); ok {
					err = e
				}
			}
			if err == nil {
				return
			}
			mu.Lock()
			if firstErr == nil {
				firstErr = exec.TagBulkIndex(i, fusedPanicError(err))
			}
			mu.Unlock()
		})
	}
	wg.Wait()

	if firstErr != nil {
		exec.SetErrorOn(r.base, firstErr)
		return
	}
	exec.DeliverValue(r.base, values...)
}

func (r *fusedBulkReceiver) SetError(err error) { exec.SetErrorOn(r.base, err) }
func (r *fusedBulkReceiver) SetStopped()        { exec.SetStoppedOn(r.base) }

func fusedPanicError(err error) error {
	if pe, ok := err.(*invoke.PanicError); ok {
		return &exec.PanicError{Recovered: pe.Recovered}
	}
	return err
}
