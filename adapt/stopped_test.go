package adapt

import (
	"context"
	"errors"
	"testing"

	"github.com/nyxforge/exec"
)

func TestStoppedAsOptional_OnStop(t *testing.T) {
	s := exec.Pipe(exec.JustStopped(), StoppedAsOptional())
	values, err := exec.Sync(context.Background(), s)
	if err != nil {
		t.Fatalf("expected a value completion, got err=%v", err)
	}
	opt, ok := values[0].(Optional)
	if !ok || opt.Present {
		t.Fatalf("expected Optional{Present:false}, got %v", values[0])
	}
}

func TestStoppedAsOptional_OnValue(t *testing.T) {
	s := exec.Pipe(exec.Just(7), StoppedAsOptional())
	values, err := exec.Sync(context.Background(), s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	opt, ok := values[0].(Optional)
	if !ok || !opt.Present || opt.Values[0] != 7 {
		t.Fatalf("unexpected result: %+v", values)
	}
}

func TestStoppedAsError_OnStop(t *testing.T) {
	want := errors.New("cancelled")
	s := exec.Pipe(exec.JustStopped(), StoppedAsError(want))
	_, err := exec.Sync(context.Background(), s)
	if err != want {
		t.Fatalf("got %v want %v", err, want)
	}
}
