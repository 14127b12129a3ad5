package adapt

import "github.com/nyxforge/exec"

// Optional is the value StoppedAsOptional produces: Present is false when
// the child sender stopped rather than producing values.
type Optional struct {
	Values  []any
	Present bool
}

// StoppedAsOptional turns a stopped completion into a value completion
// carrying Optional{Present: false}, and a value completion into
// Optional{Values: values, Present: true}. Error completions pass through
// unchanged. Use this when a stop is an expected, recoverable outcome rather
// than something the rest of the pipeline should treat as failure.
func StoppedAsOptional() exec.Adaptor {
	return func(s exec.Sender) exec.Sender {
		return &stoppedAsOptionalSender{inner: s}
	}
}

type stoppedAsOptionalSender struct{ inner exec.Sender }

func (s *stoppedAsOptionalSender) Connect(r exec.Receiver) exec.OperationState {
	return exec.Connect(s.inner, &stoppedAsOptionalReceiver{base: r})
}

type stoppedAsOptionalReceiver struct{ base exec.Receiver }

func (r *stoppedAsOptionalReceiver) SetValue(values ...any) {
	exec.SetValueOn(r.base, Optional{Values: values, Present: true})
}
func (r *stoppedAsOptionalReceiver) SetError(err error) { exec.SetErrorOn(r.base, err) }
func (r *stoppedAsOptionalReceiver) SetStopped() {
	exec.SetValueOn(r.base, Optional{Present: false})
}

// StoppedAsError turns a stopped completion into an error completion
// carrying err, the opposite trade-off from StoppedAsOptional: use it when a
// stop should propagate as a pipeline failure, e.g. a cancelled request.
func StoppedAsError(err error) exec.Adaptor {
	return func(s exec.Sender) exec.Sender {
		return &stoppedAsErrorSender{inner: s, err: err}
	}
}

type stoppedAsErrorSender struct {
	inner exec.Sender
	err   error
}

func (s *stoppedAsErrorSender) Connect(r exec.Receiver) exec.OperationState {
	return exec.Connect(s.inner, &stoppedAsErrorReceiver{base: r, err: s.err})
}

type stoppedAsErrorReceiver struct {
	base exec.Receiver
	err  error
}

func (r *stoppedAsErrorReceiver) SetValue(values ...any) { exec.SetValueOn(r.base, values...) }
func (r *stoppedAsErrorReceiver) SetError(err error)     { exec.SetErrorOn(r.base, err) }
func (r *stoppedAsErrorReceiver) SetStopped()            { exec.SetErrorOn(r.base, r.err) }
