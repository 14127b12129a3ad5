package scheduler

import (
	"sync"
	"testing"
	"time"
)

func TestRunLoop_RunsPushedWorkInOrder(t *testing.T) {
	rl := NewRunLoop()
	var order []int
	var mu sync.Mutex

	done := make(chan struct{})
	go func() { rl.Run(); close(done) }()

	for i := 0; i < 5; i++ {
		n := i
		rl.Push(func() {
			mu.Lock()
			order = append(order, n)
			mu.Unlock()
		})
	}
	rl.Finish()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Run never returned after Finish")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(order) != 5 {
		t.Fatalf("expected 5 tasks to run, got %v", order)
	}
	for i, n := range order {
		if n != i {
			t.Fatalf("expected FIFO order, got %v", order)
		}
	}
}

func TestRunLoop_PushAfterFinishIsNoOp(t *testing.T) {
	rl := NewRunLoop()
	rl.Finish()

	ran := false
	rl.Push(func() { ran = true })
	rl.Run()

	if ran {
		t.Fatalf("expected Push after Finish to be dropped")
	}
}

func TestRunLoopScheduler_Equal(t *testing.T) {
	a := NewRunLoop().Scheduler()
	b := NewRunLoop().Scheduler()
	if a.Equal(b) {
		t.Fatalf("schedulers for distinct loops must not be Equal")
	}
	if !a.Equal(a) {
		t.Fatalf("a scheduler must be Equal to itself")
	}
}

func TestRunLoopScheduler_ExecutesThroughPush(t *testing.T) {
	rl := NewRunLoop()
	sch := rl.Scheduler()

	done := make(chan struct{})
	go func() { rl.Run(); close(done) }()

	var ran bool
	sch.Execute(func() { ran = true })
	rl.Finish()

	<-done
	if !ran {
		t.Fatalf("expected Execute to push through to Run")
	}
}
