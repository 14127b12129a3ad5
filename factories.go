package exec

import (
	"reflect"

	"github.com/nyxforge/exec/env"
	"github.com/nyxforge/exec/sig"
)

// Just returns a sender whose only operation is to complete r.SetValue with
// values, the moment it is started. It is the leaf most pipelines begin
// from in tests and examples.
func Just(values ...any) Sender { return &justSender{values: values} }

type justSender struct{ values []any }

func (s *justSender) Connect(r Receiver) OperationState {
	return opFunc(func() { SetValueOn(r, s.values...) })
}

func (s *justSender) CompletionSignatures(env.Env) sig.Set {
	return sig.Of(sig.ValueSigTypes(typesOf(s.values)...))
}

// JustError returns a sender that completes with SetError(err) when started.
func JustError(err error) Sender { return &justErrorSender{err: err} }

type justErrorSender struct{ err error }

func (s *justErrorSender) Connect(r Receiver) OperationState {
	return opFunc(func() { SetErrorOn(r, s.err) })
}

func (s *justErrorSender) CompletionSignatures(env.Env) sig.Set {
	return sig.Of(sig.ErrorSig(s.err))
}

// JustStopped returns a sender that completes with SetStopped when started.
func JustStopped() Sender { return justStoppedSender{} }

type justStoppedSender struct{}

func (justStoppedSender) Connect(r Receiver) OperationState {
	return opFunc(func() { SetStoppedOn(r) })
}

func (justStoppedSender) CompletionSignatures(env.Env) sig.Set {
	return sig.Of(sig.StoppedSig())
}

// Schedule returns a sender that, when started, asks sch to run a value
// completion on its own execution agent. sch must implement env.Scheduler
// plus an Execute(func()) method; most
// schedulers in the scheduler package satisfy both.
func Schedule(sch interface {
	env.Scheduler
	Execute(func())
}) Sender {
	return &scheduleSender{sch: sch}
}

type scheduleSender struct {
	sch interface {
		env.Scheduler
		Execute(func())
	}
}

func (s *scheduleSender) Connect(r Receiver) OperationState {
	return opFunc(func() { s.sch.Execute(func() { DeliverValue(r) }) })
}

func (s *scheduleSender) CompletionSignatures(env.Env) sig.Set {
	return sig.Of(sig.ValueSig())
}

func (s *scheduleSender) Env() env.Env {
	b := env.New(nil)
	env.SetQuery(b, env.GetScheduler, env.Scheduler(s.sch))
	env.SetQuery(b, env.GetCompletionScheduler(env.SetValueCPO), env.Scheduler(s.sch))
	return b.Build()
}

// Read returns a sender that, when started, resolves q against the
// receiver's environment and completes with that single value - a read_env
// factory used to pull a query's answer into the value channel of a
// pipeline.
func Read[T any](q env.Query[T]) Sender { return readSender[T]{q: q} }

type readSender[T any] struct{ q env.Query[T] }

func (s readSender[T]) Connect(r Receiver) OperationState {
	return opFunc(func() {
		v := env.Get(EnvOf(r), s.q)
		SetValueOn(r, v)
	})
}

func (s readSender[T]) CompletionSignatures(env.Env) sig.Set {
	var zero T
	return sig.Of(sig.ValueSigTypes(reflect.TypeOf(&zero).Elem()))
}

// TransferJust is equivalent to Transfer(Just(values...), sch): it completes
// with values, but delivers that completion through sch rather than on the
// starting agent. Provided as its own factory because it is common enough
// (and cheap enough to implement directly) to not require building the full
// adapt.Transfer adaptor chain.
func TransferJust(sch interface {
	env.Scheduler
	Execute(func())
}, values ...any) Sender {
	return &transferJustSender{sch: sch, values: values}
}

type transferJustSender struct {
	sch interface {
		env.Scheduler
		Execute(func())
	}
	values []any
}

func (s *transferJustSender) Connect(r Receiver) OperationState {
	return opFunc(func() { s.sch.Execute(func() { DeliverValue(r, s.values...) }) })
}

func (s *transferJustSender) CompletionSignatures(env.Env) sig.Set {
	return sig.Of(sig.ValueSigTypes(typesOf(s.values)...))
}

// opFunc adapts a plain func() into an OperationState; every leaf factory in
// this file has no state beyond "run this closure once started".
type opFunc func()

func (f opFunc) Start() { f() }

func typesOf(values []any) []reflect.Type {
	types := make([]reflect.Type, len(values))
	for i, v := range values {
		if v == nil {
			types[i] = nil
			continue
		}
		types[i] = reflect.TypeOf(v)
	}
	return types
}
