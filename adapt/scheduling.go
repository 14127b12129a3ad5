package adapt

import (
	"github.com/nyxforge/exec"
	"github.com/nyxforge/exec/env"
)

// executor is the minimal capability adaptors in this file need from a
// scheduler: somewhere to hand a closure off to. scheduler.InlineScheduler,
// scheduler.RunLoop, and scheduler.ThreadRunLoop all satisfy it.
type executor interface {
	env.Scheduler
	Execute(func())
}

// Transfer forwards only the value completion of s through sch; an error or
// stopped completion propagates on whatever execution agent produced it, the
// same asymmetry transfer has versus schedule_from.
func Transfer(sch executor) exec.Adaptor {
	return func(s exec.Sender) exec.Sender {
		return &transferSender{inner: s, sch: sch}
	}
}

type transferSender struct {
	inner exec.Sender
	sch   executor
}

func (s *transferSender) Connect(r exec.Receiver) exec.OperationState {
	if op, ok := searchByCompletionScheduler[TransferTag](env.SetValueCPO, s.inner, r, s.sch); ok {
		return op
	}
	return exec.Connect(s.inner, &transferReceiver{base: r, sch: s.sch})
}

// Env advertises sch as the value channel's completion scheduler, so an
// adaptor composed on top (Then, Bulk, a further Transfer) can find it
// through the scheduler-early step of its own customization search without
// needing to know Transfer was involved at all.
func (s *transferSender) Env() env.Env {
	b := env.New(nil)
	env.SetQuery(b, env.GetCompletionScheduler(env.SetValueCPO), env.Scheduler(s.sch))
	return b.Build()
}

type transferReceiver struct {
	base exec.Receiver
	sch  executor
}

func (r *transferReceiver) SetValue(values ...any) {
	r.sch.Execute(func() { exec.DeliverValue(r.base, values...) })
}
func (r *transferReceiver) SetError(err error) { exec.SetErrorOn(r.base, err) }
func (r *transferReceiver) SetStopped()        { exec.SetStoppedOn(r.base) }

// ScheduleFrom forwards every completion of s - value, error, or stopped -
// through sch, unlike Transfer which only redirects the value channel.
func ScheduleFrom(sch executor) exec.Adaptor {
	return func(s exec.Sender) exec.Sender {
		return &scheduleFromSender{inner: s, sch: sch}
	}
}

type scheduleFromSender struct {
	inner exec.Sender
	sch   executor
}

func (s *scheduleFromSender) Connect(r exec.Receiver) exec.OperationState {
	if op, ok := searchByScheduler[ScheduleFromTag](s.sch, s.inner, r); ok {
		return op
	}
	return exec.Connect(s.inner, &scheduleFromReceiver{base: r, sch: s.sch})
}

type scheduleFromReceiver struct {
	base exec.Receiver
	sch  executor
}

func (r *scheduleFromReceiver) SetValue(values ...any) {
	r.sch.Execute(func() { exec.DeliverValue(r.base, values...) })
}
func (r *scheduleFromReceiver) SetError(err error) {
	r.sch.Execute(func() { exec.SetErrorOn(r.base, err) })
}
func (r *scheduleFromReceiver) SetStopped() {
	r.sch.Execute(func() { exec.SetStoppedOn(r.base) })
}

// On runs s's entire execution - from Start through whichever completion it
// produces - on sch: Start schedules the child's own Start onto sch instead
// of running it on the calling agent.
func On(sch executor, s exec.Sender) exec.Sender {
	return &onSender{inner: s, sch: sch}
}

type onSender struct {
	inner exec.Sender
	sch   executor
}

func (s *onSender) Connect(r exec.Receiver) exec.OperationState {
	if op, ok := searchByScheduler[OnTag](s.sch, s.inner, r); ok {
		return op
	}
	wrapped := &onReceiver{base: r, sch: s.sch}
	inner := exec.Connect(s.inner, wrapped)
	return &onOperationState{inner: inner, outer: r, sch: s.sch}
}

func (s *onSender) Env() env.Env {
	b := env.New(nil)
	env.SetQuery(b, env.GetScheduler, env.Scheduler(s.sch))
	return b.Build()
}

// onReceiver is what s.inner actually connects to: it forwards every
// completion to base unchanged, but its Env shadows get_scheduler with sch
// so that work running inside s.inner sees On's scheduler as its own
// preferred one, the way a nested schedule() or further On would expect.
type onReceiver struct {
	base exec.Receiver
	sch  executor
}

func (r *onReceiver) SetValue(values ...any) { exec.SetValueOn(r.base, values...) }
func (r *onReceiver) SetError(err error)     { exec.SetErrorOn(r.base, err) }
func (r *onReceiver) SetStopped()            { exec.SetStoppedOn(r.base) }

func (r *onReceiver) Env() env.Env {
	return env.With(exec.EnvOf(r.base), env.GetScheduler, env.Scheduler(r.sch))
}

type onOperationState struct {
	inner exec.OperationState
	outer exec.Receiver
	sch   executor
}

// Start hands the child's own Start off to sch instead of running it on the
// calling agent. If outer's stop token is already set by the time sch runs
// this, the child's Start never happens at all - the whole point of On is
// that its child's execution, not just its completion, belongs to sch, so a
// stop requested before that execution began must short-circuit it rather
// than merely convert its eventual completion afterward.
func (o *onOperationState) Start() {
	o.sch.Execute(func() {
		if env.Get(exec.EnvOf(o.outer), env.GetStopToken).StopRequested() {
			exec.SetStoppedOn(o.outer)
			return
		}
		o.inner.Start()
	})
}
