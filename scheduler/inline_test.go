package scheduler

import "testing"

func TestInlineScheduler_RunsSynchronously(t *testing.T) {
	var ran bool
	InlineScheduler{}.Execute(func() { ran = true })
	if !ran {
		t.Fatalf("expected Execute to run fn before returning")
	}
}

func TestInlineScheduler_EqualToAnotherInstance(t *testing.T) {
	if !(InlineScheduler{}).Equal(InlineScheduler{}) {
		t.Fatalf("expected all InlineScheduler values to be Equal")
	}
}
