package env

import "github.com/nyxforge/exec/stoptoken"

// ForwardProgressGuarantee is the answer to GetForwardProgressGuarantee.
type ForwardProgressGuarantee int

const (
	// Concurrent: forward progress of each agent is guaranteed regardless of
	// what other agents do (e.g. independent OS threads).
	Concurrent ForwardProgressGuarantee = iota
	// Parallel: forward progress is guaranteed only while all agents that
	// could block each other are executing.
	Parallel
	// WeaklyParallel: no forward-progress guarantee at all (e.g. a single
	// inline/caller-driven context).
	WeaklyParallel
)

// Allocator is a minimal allocation hook a sender's environment may expose.
// Most sender/receiver pairs in this core never customize it; the default
// is a no-op allocator backed by Go's own runtime allocator.
type Allocator interface {
	Allocate(size int) []byte
}

type defaultAllocator struct{}

func (defaultAllocator) Allocate(size int) []byte { return make([]byte, size) }

// GetAllocator is the env's allocator query.
var GetAllocator = NewQuery[Allocator]("get_allocator", func() Allocator { return defaultAllocator{} })

// GetStopToken is the env's stop-token query; its default is NeverStopToken,
// returned when no receiver customization is present.
var GetStopToken = NewQuery[stoptoken.Token](
	"get_stop_token",
	func() stoptoken.Token { return stoptoken.NeverStopToken{} },
)

// Scheduler is the copyable, equality-comparable handle exposed by
// get_scheduler / get_completion_scheduler<CPO>. It is declared here (rather
// than in a scheduler package) to avoid an import cycle: env is a leaf
// package that schedulers and the exec core both depend on.
type Scheduler interface {
	// Equal reports whether sch names the same execution context as this
	// scheduler. Implementations should compare by identity/address.
	Equal(sch Scheduler) bool
}

// GetScheduler is the env's preferred-scheduler query.
var GetScheduler = NewQuery[Scheduler]("get_scheduler", func() Scheduler { return nil })

// GetDelegateeScheduler is the scheduler an environment may delegate work to.
var GetDelegateeScheduler = NewQuery[Scheduler]("get_delegatee_scheduler", func() Scheduler { return nil })

// GetForwardProgressGuarantee is queried on a scheduler, not an environment;
// it is modeled the same way as the other queries for uniformity.
var GetForwardProgressGuarantee = NewQuery[ForwardProgressGuarantee](
	"get_forward_progress_guarantee",
	func() ForwardProgressGuarantee { return WeaklyParallel },
)

// completionSchedulerQueries is the underlying storage for every
// GetCompletionScheduler(cpoTag) query: one Query[Scheduler] per CPO tag
// string, created lazily and cached so repeated calls for the same CPO return
// the same *queryIdentity (required for the map-key lookup in Get to work).
var completionSchedulerQueries = struct {
	byTag map[string]Query[Scheduler]
}{byTag: make(map[string]Query[Scheduler])}

// GetCompletionScheduler returns the get_completion_scheduler<CPO> query for
// the given CPO tag (e.g. "set_value", "set_error", "set_stopped"). Callers
// always pass the same tag string for the same CPO so the same underlying
// query identity is reused.
func GetCompletionScheduler(cpoTag string) Query[Scheduler] {
	queryRegistryMu.Lock()
	defer queryRegistryMu.Unlock()

	if q, ok := completionSchedulerQueries.byTag[cpoTag]; ok {
		return q
	}
	q := Query[Scheduler]{
		id:  &queryIdentity{name: "get_completion_scheduler<" + cpoTag + ">", forwarding: true},
		def: func() Scheduler { return nil },
	}
	completionSchedulerQueries.byTag[cpoTag] = q
	return q
}

// CPO tag name constants used with GetCompletionScheduler.
const (
	SetValueCPO   = "set_value"
	SetErrorCPO   = "set_error"
	SetStoppedCPO = "set_stopped"
)
