// Package relay implements a non-blocking, best-effort handoff of a single
// value across a scheduler boundary: try a synchronous send first; if the
// receiving side isn't ready, detach a goroutine tracked by a WaitGroup;
// drop the value only once the owner signals shutdown via closeCh.
// scheduler.ThreadRunLoop's Execute uses SendBlocking to hand a task to its
// workers without blocking the producer and without leaking a goroutine past
// the pool's lifetime.
package relay

import "sync"

// SendBlocking attempts to send v on out without blocking; if out isn't
// immediately ready to receive, it detaches a goroutine (tracked by sendWG)
// that blocks on out until either the send succeeds or closeCh closes, at
// which point the value is dropped. This is the literal shape of
// error_forwarder.go's "select out<-e default: go func(){ select { out<-e
// case <-closeCh: } }()".
func SendBlocking[T any](out chan<- T, v T, closeCh <-chan struct{}, sendWG *sync.WaitGroup) {
	select {
	case out <- v:
		return
	default:
	}

	sendWG.Add(1)
	go func(val T) {
		defer sendWG.Done()
		select {
		case out <- val:
		case <-closeCh:
		}
	}(v)
}

// Call always runs fn on a new goroutine tracked by sendWG, never on the
// caller's, handing it closeCh as its done channel. fn runs to its own end;
// watching done and returning early is left to fn.
func Call(closeCh <-chan struct{}, sendWG *sync.WaitGroup, fn func(done <-chan struct{})) {
	sendWG.Add(1)
	go func() {
		defer sendWG.Done()
		fn(closeCh)
	}()
}
