package stoptoken

import "testing"

func TestNeverStopToken(t *testing.T) {
	var tok Token = NeverStopToken{}
	if tok.StopRequested() {
		t.Fatalf("NeverStopToken must never report stop requested")
	}
	if tok.StopPossible() {
		t.Fatalf("NeverStopToken must report stop impossible")
	}
	called := false
	unregister := tok.Register(func() { called = true })
	unregister()
	if called {
		t.Fatalf("NeverStopToken callback must never fire")
	}
}

func TestSource_RequestStopFiresCallbacks(t *testing.T) {
	s := NewSource()
	tok := s.Token()

	fired := 0
	tok.Register(func() { fired++ })
	tok.Register(func() { fired++ })

	if tok.StopRequested() {
		t.Fatalf("token should not be requested yet")
	}

	s.RequestStop()

	if !tok.StopRequested() {
		t.Fatalf("token should be requested after RequestStop")
	}
	if fired != 2 {
		t.Fatalf("expected 2 callbacks to fire, got %d", fired)
	}

	// Idempotent.
	s.RequestStop()
	if fired != 2 {
		t.Fatalf("RequestStop must be idempotent, callbacks fired again: %d", fired)
	}
}

func TestSource_RegisterAfterStopFiresSynchronously(t *testing.T) {
	s := NewSource()
	s.RequestStop()

	fired := false
	unregister := s.Token().Register(func() { fired = true })
	if !fired {
		t.Fatalf("callback registered after stop must fire synchronously")
	}
	unregister()
}

func TestSource_Unregister(t *testing.T) {
	s := NewSource()
	tok := s.Token()

	fired := false
	unregister := tok.Register(func() { fired = true })
	unregister()

	s.RequestStop()
	if fired {
		t.Fatalf("unregistered callback must not fire")
	}
}

func TestSource_TokenEquality(t *testing.T) {
	s := NewSource()
	a := s.Token()
	b := s.Token()
	if a != b {
		t.Fatalf("tokens from the same source must compare equal")
	}

	other := NewSource().Token()
	if a == other {
		t.Fatalf("tokens from different sources must not compare equal")
	}
}
