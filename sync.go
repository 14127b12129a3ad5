package exec

import (
	"context"

	"github.com/nyxforge/exec/env"
	"github.com/nyxforge/exec/stoptoken"
)

// syncResult is the outcome a syncReceiver reports for a completed sender:
// exactly one of values, err, or stopped is meaningful, matching whichever
// of SetValue/SetError/SetStopped actually ran.
type syncResult struct {
	values  []any
	err     error
	stopped bool
}

// Sync connects s to a receiver that blocks the calling goroutine until a
// completion arrives, then returns it as (values, error) - a synchronous
// "enqueue, wait for a done signal, then collect" entry point for code that
// doesn't want to drive the sender/receiver protocol itself. Sync starts s
// itself; callers never see the OperationState.
//
// ctx's cancellation is exposed to s (and everything it connects) as the
// receiver's stop token: a scheduler crossing or adaptor that honors
// get_stop_token sees it requested and completes with SetStopped instead of
// SetValue. A stopped completion - whether caused by ctx or produced by s
// on its own - is reported back as context.Canceled.
func Sync(ctx context.Context, s Sender) ([]any, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	src := stoptoken.NewSource()
	if ctx.Err() != nil {
		src.RequestStop()
	}

	relayDone := make(chan struct{})
	defer close(relayDone)
	if chDone := ctx.Done(); chDone != nil {
		go func() {
			select {
			case <-chDone:
				src.RequestStop()
			case <-relayDone:
			}
		}()
	}

	done := make(chan syncResult, 1)
	r := syncReceiver{done: done, env: env.With(env.EmptyEnv{}, env.GetStopToken, src.Token())}
	op := Connect(s, r)
	op.Start()

	res := <-done
	if res.stopped {
		return nil, context.Canceled
	}
	return res.values, res.err
}

type syncReceiver struct {
	done chan syncResult
	env  env.Env
}

func (r syncReceiver) SetValue(values ...any) { r.done <- syncResult{values: values} }
func (r syncReceiver) SetError(err error)     { r.done <- syncResult{err: err} }
func (r syncReceiver) SetStopped()            { r.done <- syncResult{stopped: true} }
func (r syncReceiver) Env() env.Env           { return r.env }
