package adapt

import "github.com/nyxforge/exec"

// Variant is the value a pipeline sees after IntoVariant: the source
// value-completion arguments collapsed into one slot, so a downstream stage
// that cares only about "did it produce values at all" can take a single
// typed parameter instead of a variable-arity one. An actual sum type isn't
// needed here because []any already carries heterogeneous, variable-length
// payloads.
type Variant struct {
	Values []any
}

// IntoVariant wraps the child sender's value completion into a single
// Variant value.
func IntoVariant() exec.Adaptor {
	return func(s exec.Sender) exec.Sender {
		return &intoVariantSender{inner: s}
	}
}

type intoVariantSender struct{ inner exec.Sender }

func (s *intoVariantSender) Connect(r exec.Receiver) exec.OperationState {
	return exec.Connect(s.inner, &intoVariantReceiver{base: r})
}

type intoVariantReceiver struct{ base exec.Receiver }

func (r *intoVariantReceiver) SetValue(values ...any) {
	exec.SetValueOn(r.base, Variant{Values: values})
}
func (r *intoVariantReceiver) SetError(err error) { exec.SetErrorOn(r.base, err) }
func (r *intoVariantReceiver) SetStopped()        { exec.SetStoppedOn(r.base) }
