package exec

import "github.com/nyxforge/exec/dispatch"

// callCPO is the thin, shared front door onto the dispatch registry used by
// every customization point in this package: try a registered override for
// Tag keyed on target's type first, and report ok=false so the caller falls
// back to target's own interface method. This lets a scheduler or adaptor
// install a fused override for (Tag, ConcreteSenderType) without that
// type's own Connect/Start/SetValue method ever running - e.g. a worker
// pool that wants its own fused Bulk path can bypass the generic adaptor
// entirely for senders it recognizes.
func callCPO[Tag any](target any, args ...any) ([]any, bool) {
	return dispatch.Invoke[Tag](target, args...)
}
