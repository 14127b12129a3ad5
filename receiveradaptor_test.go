package exec

import (
	"testing"

	"github.com/nyxforge/exec/env"
)

type doublingReceiver struct {
	BaseReceiver
}

func (d *doublingReceiver) OnValue(values ...any) {
	doubled := make([]any, len(values))
	for i, v := range values {
		doubled[i] = v.(int) * 2
	}
	SetValueOn(d.Base, doubled...)
}

func TestBaseReceiver_OnValueOverrideIntercepts(t *testing.T) {
	rec := &recordingReceiver{}
	d := &doublingReceiver{BaseReceiver{Base: rec}}

	d.DispatchValue(d, 3)
	if len(rec.values) != 1 || rec.values[0][0] != 6 {
		t.Fatalf("unexpected values: %v", rec.values)
	}
}

type plainWrapReceiver struct {
	BaseReceiver
}

func TestBaseReceiver_ForwardsWhenNoOverride(t *testing.T) {
	rec := &recordingReceiver{}
	p := &plainWrapReceiver{BaseReceiver{Base: rec}}

	p.DispatchValue(p, 1, 2)
	p.DispatchError(p, nil)
	p.DispatchStopped(p)

	if len(rec.values) != 1 || rec.stopped != 1 {
		t.Fatalf("expected forwarding to base receiver, got %+v", rec)
	}
}

type envShadowReceiver struct {
	BaseReceiver
	q env.Query[int]
}

func (e *envShadowReceiver) Env() env.Env {
	return env.With(EnvOf(e.Base), e.q, 99)
}

func TestBaseReceiver_EnvOverrideShadowsBase(t *testing.T) {
	rec := &recordingReceiver{}
	q := env.NewQuery[int]("shadow-test", func() int { return 0 })
	e := &envShadowReceiver{BaseReceiver{Base: rec}, q}

	got := e.DispatchEnv(e)
	if v := env.Get(got, q); v != 99 {
		t.Fatalf("expected shadowed value 99, got %d", v)
	}
}
