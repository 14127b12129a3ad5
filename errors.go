package exec

import "errors"

// Namespace prefixes every sentinel error declared by this package.
const Namespace = "exec"

var (
	// ErrAlreadyStarted is the value an operation state returned by Connect
	// panics with on a second Start call: work begins only once.
	ErrAlreadyStarted = errors.New(Namespace + ": operation state already started")

	// ErrAlreadyCompleted indicates a second completion was attempted on an
	// operation state that already delivered set_value/set_error/set_stopped:
	// completion happens exactly once.
	ErrAlreadyCompleted = errors.New(Namespace + ": operation already completed")

	// ErrNotStarted indicates a completion was attempted before Start was
	// called on the owning operation state: no completion may precede start.
	ErrNotStarted = errors.New(Namespace + ": operation completed before it was started")

	// ErrInvalidCallback is the error completion adapt.LetValue, LetError and
	// LetStopped deliver when their callback does not return exactly one
	// Sender.
	ErrInvalidCallback = errors.New(Namespace + ": invalid callback signature")

	// ErrTaskPanicked is the sentinel every PanicError unwraps to, so callers
	// can errors.Is against "some callback panicked" without caring which one.
	ErrTaskPanicked = errors.New(Namespace + ": callback panicked")
)
