package adapt

import (
	"github.com/nyxforge/exec"
	"github.com/nyxforge/exec/env"
	"github.com/nyxforge/exec/internal/invoke"
)

// LetValue runs fn on the value channel, where fn returns a new
// exec.Sender to continue the pipeline with: when the child completes with
// values, fn(values...) produces a sender that is itself connected and
// started against the original downstream receiver. This is how a pipeline
// branches its continuation on a runtime value rather than just transforming
// it (let_value, contrasted with Then's fixed-shape mapping).
func LetValue(fn any) exec.Adaptor {
	wrapped := invoke.Wrap(fn)
	return func(s exec.Sender) exec.Sender {
		return &letSender{inner: s, on: onValue, fn: wrapped}
	}
}

// LetError is LetValue's error-channel counterpart: fn(err) produces the
// sender to continue with when the child completes with an error.
func LetError(fn any) exec.Adaptor {
	wrapped := invoke.Wrap(fn)
	return func(s exec.Sender) exec.Sender {
		return &letSender{inner: s, on: onError, fn: wrapped}
	}
}

// LetStopped is LetValue's stopped-channel counterpart: fn() produces the
// sender to continue with when the child completes stopped.
func LetStopped(fn any) exec.Adaptor {
	wrapped := invoke.Wrap(fn)
	return func(s exec.Sender) exec.Sender {
		return &letSender{inner: s, on: onStopped, fn: wrapped}
	}
}

type letSender struct {
	inner exec.Sender
	on    continuationChannel
	fn    invoke.Func
}

func (s *letSender) Connect(r exec.Receiver) exec.OperationState {
	var (
		op exec.OperationState
		ok bool
	)
	switch s.on {
	case onValue:
		op, ok = searchByCompletionScheduler[LetValueTag](env.SetValueCPO, s.inner, r, s.fn)
	case onError:
		op, ok = searchByCompletionScheduler[LetErrorTag](env.SetErrorCPO, s.inner, r, s.fn)
	default:
		op, ok = searchByCompletionScheduler[LetStoppedTag](env.SetStoppedCPO, s.inner, r, s.fn)
	}
	if ok {
		return op
	}
	lr := &letReceiver{base: r, on: s.on, fn: s.fn}
	return exec.Connect(s.inner, lr)
}

// letReceiver holds the nested operation state produced by fn, once the
// child completes on the channel it watches. Start on the outer operation
// state only ever reaches the child; the nested operation is started from
// inside the completion itself, the moment its sender exists.
type letReceiver struct {
	base   exec.Receiver
	on     continuationChannel
	fn     invoke.Func
	nested exec.OperationState
}

func (r *letReceiver) SetValue(values ...any) {
	if r.on != onValue {
		exec.SetValueOn(r.base, values...)
		return
	}
	r.branch(values...)
}

func (r *letReceiver) SetError(err error) {
	if r.on != onError {
		exec.SetErrorOn(r.base, err)
		return
	}
	r.branch(err)
}

func (r *letReceiver) SetStopped() {
	if r.on != onStopped {
		exec.SetStoppedOn(r.base)
		return
	}
	r.branch()
}

func (r *letReceiver) branch(args ...any) {
	results, err := r.fn.Call(args...)
	if err != nil {
		exec.SetErrorOn(r.base, asPanicError(err))
		return
	}
	if len(results) != 1 {
		exec.SetErrorOn(r.base, exec.ErrInvalidCallback)
		return
	}
	next, ok := results[0].(exec.Sender)
	if !ok {
		exec.SetErrorOn(r.base, exec.ErrInvalidCallback)
		return
	}
	r.nested = exec.Connect(next, r.base)
	r.nested.Start()
}
