package exec

import (
	"testing"

	"github.com/nyxforge/exec/dispatch"
	"github.com/nyxforge/exec/env"
	"github.com/nyxforge/exec/sig"
)

func TestEnvOf_DefaultsToEmptyEnv(t *testing.T) {
	got := EnvOf(struct{}{})
	if _, ok := got.(env.EmptyEnv); !ok {
		t.Fatalf("expected EmptyEnv default, got %T", got)
	}
}

func TestEnvOf_UsesEnvProvider(t *testing.T) {
	want := env.With(env.EmptyEnv{}, env.GetAllocator, defaultAllocatorStub{})
	r := &envReceiver{recordingReceiver: &recordingReceiver{}, env: want}
	if got := EnvOf(r); got != want {
		t.Fatalf("expected EnvOf to return the provider's env unchanged")
	}
}

type defaultAllocatorStub struct{}

func (defaultAllocatorStub) Allocate(size int) []byte { return make([]byte, size) }

func TestCompletionSignaturesOf_DefaultsToEmptySet(t *testing.T) {
	s := senderFunc(func(r Receiver) OperationState { return opFunc(func() {}) })
	got := CompletionSignaturesOf(s, env.EmptyEnv{})
	if len(got.Signatures()) != 0 {
		t.Fatalf("expected no signatures for an uncustomized sender, got %v", got.Signatures())
	}
}

func TestCompletionSignaturesOf_UsesDispatchOverrideFirst(t *testing.T) {
	type overriddenSender struct{ senderFunc }
	s := overriddenSender{senderFunc(func(r Receiver) OperationState { return opFunc(func() {}) })}

	want := sig.Of(sig.StoppedSig())
	dispatch.Register[getCompletionSignaturesTag, overriddenSender](
		func(overriddenSender, env.Env) sig.Set { return want },
	)

	// overriddenSender implements no CompletionSignatures method itself, so
	// only a dispatch-registered override (not the interface fallback) can
	// produce a non-empty result here.
	got := CompletionSignaturesOf(s, env.EmptyEnv{})
	if len(got.Signatures()) != 1 || !got.SendsStopped() {
		t.Fatalf("expected the dispatch-registered signature set, got %v", got.Signatures())
	}
}
