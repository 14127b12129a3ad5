package exec

import "github.com/nyxforge/exec/env"

// BaseReceiver is a composable base for receivers that only want to
// intercept some completions: rather than a receiver embedding a base
// template parameterized on itself (which Go cannot express), it embeds
// BaseReceiver and overrides whichever of OnValue/OnError/OnStopped/Env it
// needs by implementing the matching optional interface below. Every
// completion and environment lookup it doesn't override forwards to the
// wrapped Receiver unchanged.
type BaseReceiver struct {
	Base Receiver
}

// OnValueOverrider lets an embedder intercept set_value before it reaches
// the wrapped receiver.
type OnValueOverrider interface{ OnValue(values ...any) }

// OnErrorOverrider lets an embedder intercept set_error.
type OnErrorOverrider interface{ OnError(err error) }

// OnStoppedOverrider lets an embedder intercept set_stopped.
type OnStoppedOverrider interface{ OnStopped() }

// EnvOverrider lets an embedder shadow queries on top of the base
// receiver's environment; typical implementations call env.With on
// EnvOf(b.Base) and return the result.
type EnvOverrider interface{ Env() env.Env }

// DispatchValue routes a set_value completion arriving at self (an
// embedder of BaseReceiver) to self's own OnValue if it implements
// OnValueOverrider, otherwise straight through to Base.
func (b BaseReceiver) DispatchValue(self any, values ...any) {
	if o, ok := self.(OnValueOverrider); ok {
		o.OnValue(values...)
		return
	}
	SetValueOn(b.Base, values...)
}

// DispatchError routes a set_error completion the same way DispatchValue
// routes set_value.
func (b BaseReceiver) DispatchError(self any, err error) {
	if o, ok := self.(OnErrorOverrider); ok {
		o.OnError(err)
		return
	}
	SetErrorOn(b.Base, err)
}

// DispatchStopped routes a set_stopped completion the same way
// DispatchValue routes set_value.
func (b BaseReceiver) DispatchStopped(self any) {
	if o, ok := self.(OnStoppedOverrider); ok {
		o.OnStopped()
		return
	}
	SetStoppedOn(b.Base)
}

// DispatchEnv resolves self's environment: self's own Env() if it
// implements EnvOverrider, otherwise the wrapped receiver's environment
// unchanged (environments forward by default).
func (b BaseReceiver) DispatchEnv(self any) env.Env {
	if o, ok := self.(EnvOverrider); ok {
		return o.Env()
	}
	return EnvOf(b.Base)
}
