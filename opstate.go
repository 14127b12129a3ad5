package exec

import (
	"sync/atomic"

	"github.com/nyxforge/exec/env"
)

// OperationState is the object returned by Connect: it owns the storage for
// a connected sender/receiver pair and, once Start is called, runs the work
// to exactly one completion. An OperationState must never be moved or
// copied after Connect - callers must hold it by the pointer or interface
// value Connect returned and never re-derive a second handle to the same
// underlying state.
type OperationState interface {
	Start()
}

// StartOn starts o, preferring a registered dispatch override for startTag.
func StartOn(o OperationState) {
	if _, ok := callCPO[startTag](o); ok {
		return
	}
	o.Start()
}

type startTag struct{}

// Connect produces the OperationState for s/r, wrapping r in an
// exactly-once / no-completion-before-start guard before handing it to s's
// own Connect (or a dispatch-registered override). Every Connect call adds
// its own guard, so when a composing adaptor connects its child through
// Connect, the intermediate receiver it passes is guarded too; adaptors never
// need to guard their receivers by hand.
func Connect(s Sender, r Receiver) OperationState {
	guarded, markStarted := newGuardedReceiver(r)

	var inner OperationState
	if out, ok := callCPO[connectTag](s, guarded); ok {
		inner = out[0].(OperationState)
	} else {
		inner = s.Connect(guarded)
	}

	return &guardedOperationState{inner: inner, markStarted: markStarted}
}

type connectTag struct{}

type guardedOperationState struct {
	inner       OperationState
	markStarted func()
	started     atomic.Bool
}

func (g *guardedOperationState) Start() {
	if !g.started.CompareAndSwap(false, true) {
		panic(ErrAlreadyStarted)
	}
	g.markStarted()
	StartOn(g.inner)
}

// guardedReceiver wraps a user Receiver so that a completion delivered
// before Start (markStarted) or a second completion after the first both
// panic with a sentinel error rather than silently corrupting state. Two
// independent one-shot flags (started, completed) track the two invariants.
type guardedReceiver struct {
	r         Receiver
	startedAt *atomic.Bool
	completed atomic.Bool
}

func newGuardedReceiver(r Receiver) (Receiver, func()) {
	started := &atomic.Bool{}
	g := &guardedReceiver{r: r, startedAt: started}
	return g, func() { started.Store(true) }
}

func (g *guardedReceiver) guard() {
	if !g.startedAt.Load() {
		panic(ErrNotStarted)
	}
	if !g.completed.CompareAndSwap(false, true) {
		panic(ErrAlreadyCompleted)
	}
}

func (g *guardedReceiver) SetValue(values ...any) {
	g.guard()
	SetValueOn(g.r, values...)
}

func (g *guardedReceiver) SetError(err error) {
	g.guard()
	SetErrorOn(g.r, err)
}

func (g *guardedReceiver) SetStopped() {
	g.guard()
	SetStoppedOn(g.r)
}

func (g *guardedReceiver) Env() env.Env { return EnvOf(g.r) }
