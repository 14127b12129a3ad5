package adapt

import (
	"github.com/nyxforge/exec"
	"github.com/nyxforge/exec/dispatch"
	"github.com/nyxforge/exec/env"
)

// Tag marker types for the customization registry: one per adaptor
// extension point, mirroring a distinct tag_invocable overload set in the
// C++ original. dispatch.Register keys a fused implementation on (tag,
// concrete type of the scheduler or sender the search discovers).
type (
	ThenTag         struct{}
	UponErrorTag    struct{}
	UponStoppedTag  struct{}
	LetValueTag     struct{}
	LetErrorTag     struct{}
	LetStoppedTag   struct{}
	BulkTag         struct{}
	TransferTag     struct{}
	ScheduleFromTag struct{}
	OnTag           struct{}
)

// searchByCompletionScheduler implements the two-step search Then, Let and
// Bulk/Transfer share: first try a customization keyed on the scheduler
// that inner's environment reports as completing cpo (get_completion_scheduler),
// then one keyed on inner's own concrete type. ok is false if neither step
// found a registration, meaning the caller must fall back to its generic
// default lowering.
func searchByCompletionScheduler[Tag any](cpo string, inner exec.Sender, r exec.Receiver, extra ...any) (exec.OperationState, bool) {
	if sch := env.Get(exec.EnvOf(inner), env.GetCompletionScheduler(cpo)); sch != nil {
		args := append([]any{inner, r}, extra...)
		if out, ok := dispatch.Invoke[Tag](sch, args...); ok {
			return out[0].(exec.OperationState), true
		}
	}
	if out, ok := dispatch.Invoke[Tag](inner, append([]any{r}, extra...)...); ok {
		return out[0].(exec.OperationState), true
	}
	return nil, false
}

// searchByScheduler implements the single-step search On and ScheduleFrom
// share: a customization keyed directly on the explicit scheduler argument
// the caller passed in, with no sender-late fallback step (their defaults
// are composed from other primitives instead).
func searchByScheduler[Tag any](sch any, inner exec.Sender, r exec.Receiver, extra ...any) (exec.OperationState, bool) {
	args := append([]any{inner, r}, extra...)
	if out, ok := dispatch.Invoke[Tag](sch, args...); ok {
		return out[0].(exec.OperationState), true
	}
	return nil, false
}
