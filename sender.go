package exec

import (
	"github.com/nyxforge/exec/env"
	"github.com/nyxforge/exec/sig"
)

// Sender describes future work: a move-constructible value whose Connect,
// given a Receiver, produces an OperationState that runs the work to
// completion exactly once when started. Values move through a pipeline as
// []any tuples rather than a fixed, typed argument list, the pragmatic Go
// stand-in for a variadic-template completion signature.
type Sender interface {
	// Connect produces an OperationState that will deliver exactly one
	// completion to r once started. Connect itself must not start any work.
	Connect(r Receiver) OperationState
}

// EnvOf returns a sender or receiver's associated environment, falling back
// to env.EmptyEnv{} if it doesn't customize one. This is the get_env CPO
// applied uniformly to both roles.
func EnvOf(x any) env.Env {
	if out, ok := callCPO[getEnvTag](x); ok {
		if e, ok2 := out[0].(env.Env); ok2 {
			return e
		}
	}
	if p, ok := x.(envProvider); ok {
		return p.Env()
	}
	return env.EmptyEnv{}
}

type envProvider interface{ Env() env.Env }

type getEnvTag struct{}

// CompletionSignaturesOf computes completion_signatures_of(S, E): every
// value/error/stopped shape s may produce when connected to a receiver
// whose environment is e. Senders that don't customize it report an empty
// set. The leaf factories in this package (Just, JustError, JustStopped,
// Schedule, Read, TransferJust) implement it; the composing senders in
// package adapt do not, so for a pipeline ending in an adapt adaptor this
// returns the empty set, not a shape set derived from the child sender's.
func CompletionSignaturesOf(s Sender, e env.Env) sig.Set {
	if out, ok := callCPO[getCompletionSignaturesTag](s, e); ok {
		if set, ok2 := out[0].(sig.Set); ok2 {
			return set
		}
	}
	if p, ok := s.(sigProvider); ok {
		return p.CompletionSignatures(e)
	}
	return sig.Of()
}

type sigProvider interface {
	CompletionSignatures(e env.Env) sig.Set
}

type getCompletionSignaturesTag struct{}
