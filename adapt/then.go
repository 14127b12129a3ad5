// Package adapt implements the composing sender adaptors: each one wraps a
// child Sender and a user callback, producing a new Sender whose completion
// shapes are the callback's shapes instead of (or in addition to) the
// child's. Every adaptor follows a customization search before falling back
// to its own generic implementation here (dispatch.Invoke against the
// registry a scheduler or sender installs into via dispatch.Register): Then,
// Let and Bulk/Transfer search a scheduler-early override keyed on the
// completion scheduler their child's environment reports, then a
// sender-late override keyed on the child sender's own concrete type; On and
// ScheduleFrom search only the scheduler argument they were given directly,
// since their defaults compose from other primitives instead of a generic
// receiver of their own. Callback shapes are not fixed to a handful of
// signatures; any func(Args...) R is accepted via reflection.
package adapt

import (
	"github.com/nyxforge/exec"
	"github.com/nyxforge/exec/env"
	"github.com/nyxforge/exec/internal/invoke"
)

// Then runs fn on the value channel: when the child sender completes with
// values, fn is called with them and the result (if any) becomes the new
// value completion. Error and stopped completions pass through unchanged.
// A panic inside fn becomes an error completion carrying *exec.PanicError.
func Then(fn any) exec.Adaptor {
	wrapped := invoke.Wrap(fn)
	return func(s exec.Sender) exec.Sender {
		return &continuationSender{inner: s, on: onValue, fn: wrapped}
	}
}

// UponError runs fn on the error channel: when the child sender completes
// with an error, fn is called with it and the result becomes the new value
// completion (recovering from the error). Value and stopped completions
// pass through unchanged.
func UponError(fn any) exec.Adaptor {
	wrapped := invoke.Wrap(fn)
	return func(s exec.Sender) exec.Sender {
		return &continuationSender{inner: s, on: onError, fn: wrapped}
	}
}

// UponStopped runs fn (a func() R or func()) when the child sender completes
// stopped, turning that stop into a value completion. Value and error
// completions pass through unchanged.
func UponStopped(fn any) exec.Adaptor {
	wrapped := invoke.Wrap(fn)
	return func(s exec.Sender) exec.Sender {
		return &continuationSender{inner: s, on: onStopped, fn: wrapped}
	}
}

type continuationChannel int

const (
	onValue continuationChannel = iota
	onError
	onStopped
)

type continuationSender struct {
	inner exec.Sender
	on    continuationChannel
	fn    invoke.Func
}

func (s *continuationSender) Connect(r exec.Receiver) exec.OperationState {
	var (
		op exec.OperationState
		ok bool
	)
	switch s.on {
	case onValue:
		op, ok = searchByCompletionScheduler[ThenTag](env.SetValueCPO, s.inner, r, s.fn)
	case onError:
		op, ok = searchByCompletionScheduler[UponErrorTag](env.SetErrorCPO, s.inner, r, s.fn)
	default:
		op, ok = searchByCompletionScheduler[UponStoppedTag](env.SetStoppedCPO, s.inner, r, s.fn)
	}
	if ok {
		return op
	}
	return exec.Connect(s.inner, &continuationReceiver{base: r, on: s.on, fn: s.fn})
}

type continuationReceiver struct {
	base exec.Receiver
	on   continuationChannel
	fn   invoke.Func
}

func (r *continuationReceiver) SetValue(values ...any) {
	if r.on != onValue {
		exec.SetValueOn(r.base, values...)
		return
	}
	r.run(values...)
}

func (r *continuationReceiver) SetError(err error) {
	if r.on != onError {
		exec.SetErrorOn(r.base, err)
		return
	}
	r.run(err)
}

func (r *continuationReceiver) SetStopped() {
	if r.on != onStopped {
		exec.SetStoppedOn(r.base)
		return
	}
	r.run()
}

func (r *continuationReceiver) run(args ...any) {
	results, err := r.fn.Call(args...)
	if err != nil {
		exec.SetErrorOn(r.base, asPanicError(err))
		return
	}
	if r.fn.IsVoid() {
		exec.SetValueOn(r.base)
		return
	}
	exec.SetValueOn(r.base, results...)
}

func asPanicError(err error) error {
	if pe, ok := err.(*invoke.PanicError); ok {
		return &exec.PanicError{Recovered: pe.Recovered}
	}
	return err
}

// Every receiver this package connects a child sender to exposes its
// downstream receiver's environment unchanged, so queries such as
// get_stop_token reach the child through the adaptor. onReceiver, which
// shadows get_scheduler, defines its own Env in scheduling.go.
func (r *continuationReceiver) Env() env.Env      { return exec.EnvOf(r.base) }
func (r *letReceiver) Env() env.Env               { return exec.EnvOf(r.base) }
func (r *bulkReceiver) Env() env.Env              { return exec.EnvOf(r.base) }
func (r *transferReceiver) Env() env.Env          { return exec.EnvOf(r.base) }
func (r *scheduleFromReceiver) Env() env.Env      { return exec.EnvOf(r.base) }
func (r *intoVariantReceiver) Env() env.Env       { return exec.EnvOf(r.base) }
func (r *stoppedAsOptionalReceiver) Env() env.Env { return exec.EnvOf(r.base) }
func (r *stoppedAsErrorReceiver) Env() env.Env    { return exec.EnvOf(r.base) }
