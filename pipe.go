package exec

// Adaptor transforms one sender into another; it is the curried half of a
// two-argument adaptor such as then(sender, fn) - adapt.Then(fn) returns the
// Adaptor and Pipe supplies the sender - used so a chain of adaptors can be
// written top-to-bottom instead of nested inside-out calls.
// Go has no operator-overloading facility, so Pipe stands in for a
// pipe-operator chain.
type Adaptor func(Sender) Sender

// Pipe applies each adaptor to s in order, returning the final sender:
//
//	Pipe(Just(1), adapt.Then(double), adapt.UponError(recover))
func Pipe(s Sender, adaptors ...Adaptor) Sender {
	for _, a := range adaptors {
		s = a(s)
	}
	return s
}
