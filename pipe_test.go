package exec

import "testing"

func TestPipe_AppliesAdaptorsInOrder(t *testing.T) {
	var order []int
	record := func(n int) Adaptor {
		return func(s Sender) Sender {
			order = append(order, n)
			return s
		}
	}

	got := Pipe(Just(1), record(1), record(2), record(3))
	if got == nil {
		t.Fatalf("expected Pipe to return the final sender")
	}
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Fatalf("expected adaptors applied in order, got %v", order)
	}
}

func TestPipe_NoAdaptorsReturnsSenderUnchanged(t *testing.T) {
	s := Just(1)
	if got := Pipe(s); got != s {
		t.Fatalf("expected Pipe with no adaptors to return s unchanged")
	}
}
