package exec

import "github.com/nyxforge/exec/env"

// Receiver is the completion side of a connected operation: a channel for
// exactly one of SetValue, SetError, or SetStopped, delivered at most once
// and never before the owning OperationState is started. None of the three
// methods may panic outward; a callback that panics while producing a
// completion is converted to an error completion carrying *PanicError
// (stage_errors.go).
type Receiver interface {
	SetValue(values ...any)
	SetError(err error)
	SetStopped()
}

// SetValueOn delivers a value completion to r, preferring a registered
// dispatch override for setValueTag over r's own SetValue method.
func SetValueOn(r Receiver, values ...any) {
	if _, ok := callCPO[setValueTag](r, values...); ok {
		return
	}
	r.SetValue(values...)
}

// SetErrorOn delivers an error completion to r.
func SetErrorOn(r Receiver, err error) {
	if _, ok := callCPO[setErrorTag](r, err); ok {
		return
	}
	r.SetError(err)
}

// SetStoppedOn delivers a stopped completion to r.
func SetStoppedOn(r Receiver) {
	if _, ok := callCPO[setStoppedTag](r); ok {
		return
	}
	r.SetStopped()
}

// DeliverValue delivers a value completion to r, unless r's stop token is
// already requested, in which case SetStopped is delivered instead of
// SetValue. This is the check every built-in scheduler crossing must
// perform before handing a pending value completion back to a receiver -
// Schedule, TransferJust, and adapt's Transfer/ScheduleFrom route their
// value delivery through it directly; adapt.On performs the equivalent
// check itself before ever starting its child, since there a stop must
// prevent the child's execution outright rather than just recolor its
// eventual completion. Either way, a stop requested before the completion
// was ever dispatched is observed instead of silently ignored.
func DeliverValue(r Receiver, values ...any) {
	if env.Get(EnvOf(r), env.GetStopToken).StopRequested() {
		SetStoppedOn(r)
		return
	}
	SetValueOn(r, values...)
}

type (
	setValueTag   struct{}
	setErrorTag   struct{}
	setStoppedTag struct{}
)
