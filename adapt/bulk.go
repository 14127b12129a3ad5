package adapt

import (
	"github.com/nyxforge/exec"
	"github.com/nyxforge/exec/env"
	"github.com/nyxforge/exec/internal/invoke"
)

// Bulk runs fn(i, values...) once for each i in [0, shape), where values are
// the child sender's value completion, then forwards that same value
// completion once every item finishes. fn's signature is func(i int,
// values...) or func(i int, values...) error; a returned non-nil error (or a
// recovered panic) is tagged with its item index (exec.TagBulkIndex) and
// becomes the pipeline's error completion, the first one in order winning.
// The generic default here runs items strictly sequentially, in order -
// parallelism is a scheduler's choice to make, not this adaptor's: a
// scheduler that wants concurrent items registers a fused Bulk customization
// over its own worker pool instead.
func Bulk(shape int, fn any) exec.Adaptor {
	wrapped := invoke.Wrap(fn)
	return func(s exec.Sender) exec.Sender {
		return &bulkSender{inner: s, shape: shape, fn: wrapped}
	}
}

type bulkSender struct {
	inner exec.Sender
	shape int
	fn    invoke.Func
}

func (s *bulkSender) Connect(r exec.Receiver) exec.OperationState {
	if op, ok := searchByCompletionScheduler[BulkTag](env.SetValueCPO, s.inner, r, s.shape, s.fn); ok {
		return op
	}
	return exec.Connect(s.inner, &bulkReceiver{base: r, shape: s.shape, fn: s.fn})
}

type bulkReceiver struct {
	base  exec.Receiver
	shape int
	fn    invoke.Func
}

func (r *bulkReceiver) SetValue(values ...any) {
	for i := 0; i < r.shape; i++ {
		args := append([]any{i}, values...)
		results, err := r.fn.Call(args...)
		if err == nil && len(results) > 0 {
			if e, ok := results[len(results)-1].(error); ok {
				err = e
			}
		}
		if err != nil {
			exec.SetErrorOn(r.base, exec.TagBulkIndex(i, asPanicError(err)))
			return
		}
	}
	exec.SetValueOn(r.base, values...)
}

func (r *bulkReceiver) SetError(err error) { exec.SetErrorOn(r.base, err) }
func (r *bulkReceiver) SetStopped()        { exec.SetStoppedOn(r.base) }
