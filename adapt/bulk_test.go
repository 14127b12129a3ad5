package adapt

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/nyxforge/exec"
)

func TestBulk_RunsEveryItemAndForwardsValues(t *testing.T) {
	var count int32
	s := exec.Pipe(exec.Just("payload"), Bulk(8, func(i int, payload string) {
		atomic.AddInt32(&count, 1)
	}))
	values, err := exec.Sync(context.Background(), s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 8 {
		t.Fatalf("expected 8 items to run, got %d", count)
	}
	if len(values) != 1 || values[0] != "payload" {
		t.Fatalf("expected the original value to forward, got %v", values)
	}
}

func TestBulk_TagsFirstErrorWithIndex(t *testing.T) {
	s := exec.Pipe(exec.Just("x"), Bulk(4, func(i int, _ string) error {
		if i == 2 {
			return errors.New("item failed")
		}
		return nil
	}))
	_, err := exec.Sync(context.Background(), s)
	if err == nil {
		t.Fatalf("expected an error completion")
	}
	idx, ok := exec.ExtractBulkIndex(err)
	if !ok || idx != 2 {
		t.Fatalf("expected bulk index 2, got idx=%d ok=%v (%v)", idx, ok, err)
	}
}

func TestBulk_ZeroShapePassesThrough(t *testing.T) {
	s := exec.Pipe(exec.Just(1), Bulk(0, func(i int, n int) {}))
	values, err := exec.Sync(context.Background(), s)
	if err != nil || len(values) != 1 || values[0] != 1 {
		t.Fatalf("unexpected result: values=%v err=%v", values, err)
	}
}
