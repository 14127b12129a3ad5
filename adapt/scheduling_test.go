package adapt

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/nyxforge/exec"
	"github.com/nyxforge/exec/env"
)

type fakeExecutor struct {
	ran int32
}

func (*fakeExecutor) Equal(sch env.Scheduler) bool { _, ok := sch.(*fakeExecutor); return ok }
func (f *fakeExecutor) Execute(fn func())          { atomic.AddInt32(&f.ran, 1); fn() }

func TestTransfer_RedirectsValueChannel(t *testing.T) {
	sch := &fakeExecutor{}
	s := exec.Pipe(exec.Just(1), Transfer(sch))
	values, err := exec.Sync(context.Background(), s)
	if err != nil || len(values) != 1 || values[0] != 1 {
		t.Fatalf("unexpected result: values=%v err=%v", values, err)
	}
	if atomic.LoadInt32(&sch.ran) != 1 {
		t.Fatalf("expected the scheduler to run the value completion")
	}
}

func TestTransfer_DoesNotRedirectError(t *testing.T) {
	sch := &fakeExecutor{}
	s := exec.Pipe(exec.JustError(errTransferTest), Transfer(sch))
	_, err := exec.Sync(context.Background(), s)
	if err != errTransferTest {
		t.Fatalf("got %v", err)
	}
	if atomic.LoadInt32(&sch.ran) != 0 {
		t.Fatalf("expected Transfer to leave the error completion alone")
	}
}

func TestScheduleFrom_RedirectsEveryChannel(t *testing.T) {
	sch := &fakeExecutor{}
	s := exec.Pipe(exec.JustError(errTransferTest), ScheduleFrom(sch))
	_, err := exec.Sync(context.Background(), s)
	if err != errTransferTest {
		t.Fatalf("got %v", err)
	}
	if atomic.LoadInt32(&sch.ran) != 1 {
		t.Fatalf("expected ScheduleFrom to redirect the error completion too")
	}
}

func TestOn_RunsChildOnScheduler(t *testing.T) {
	sch := &fakeExecutor{}
	values, err := exec.Sync(context.Background(), On(sch, exec.Just("ran")))
	if err != nil || len(values) != 1 || values[0] != "ran" {
		t.Fatalf("unexpected result: values=%v err=%v", values, err)
	}
	if atomic.LoadInt32(&sch.ran) != 1 {
		t.Fatalf("expected On to start the child through the scheduler")
	}
}

var errTransferTest = &testSentinelError{"boom"}

type testSentinelError struct{ msg string }

func (e *testSentinelError) Error() string { return e.msg }
