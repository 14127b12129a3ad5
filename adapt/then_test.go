package adapt

import (
	"context"
	"errors"
	"testing"

	"github.com/nyxforge/exec"
)

func TestThen_TransformsValues(t *testing.T) {
	s := exec.Pipe(exec.Just(2, 3), Then(func(a, b int) int { return a * b }))
	values, err := exec.Sync(context.Background(), s)
	if err != nil || len(values) != 1 || values[0] != 6 {
		t.Fatalf("unexpected result: values=%v err=%v", values, err)
	}
}

func TestThen_PassesThroughError(t *testing.T) {
	want := errors.New("boom")
	s := exec.Pipe(exec.JustError(want), Then(func(a int) int { return a }))
	_, err := exec.Sync(context.Background(), s)
	if err != want {
		t.Fatalf("got %v want %v", err, want)
	}
}

func TestThen_RecoversPanicAsError(t *testing.T) {
	s := exec.Pipe(exec.Just(0), Then(func(a int) int { return 1 / a }))
	_, err := exec.Sync(context.Background(), s)
	if err == nil {
		t.Fatalf("expected a panic to surface as an error completion")
	}
	var pe *exec.PanicError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *exec.PanicError, got %T (%v)", err, err)
	}
}

func TestUponError_RecoversIntoValue(t *testing.T) {
	want := errors.New("retryable")
	s := exec.Pipe(exec.JustError(want), UponError(func(err error) int { return 42 }))
	values, err := exec.Sync(context.Background(), s)
	if err != nil || len(values) != 1 || values[0] != 42 {
		t.Fatalf("unexpected result: values=%v err=%v", values, err)
	}
}

func TestUponStopped_RecoversIntoValue(t *testing.T) {
	s := exec.Pipe(exec.JustStopped(), UponStopped(func() string { return "fallback" }))
	values, err := exec.Sync(context.Background(), s)
	if err != nil || len(values) != 1 || values[0] != "fallback" {
		t.Fatalf("unexpected result: values=%v err=%v", values, err)
	}
}
