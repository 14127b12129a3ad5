// Package invoke provides a reflection-backed call helper for the
// heterogeneous, variable-arity user callbacks the exec adaptors accept
// (then/let_value/bulk all take an arbitrary func(Args...) R). Go generics
// cannot express "a function of any arity," so calls are made through
// reflect.Value.Call, unifying every accepted callback shape behind one
// internal interface.
package invoke

import (
	"fmt"
	"reflect"
)

// Func wraps a user callback value for repeated, panic-safe invocation.
type Func struct {
	v reflect.Value
	t reflect.Type
}

// Wrap validates that fn is a function value and returns a Func. It panics
// if fn is not a func: a malformed customization is a configuration error,
// caught at setup time rather than surfacing as a runtime completion.
func Wrap(fn any) Func {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		panic(fmt.Sprintf("invoke: expected a function, got %T", fn))
	}
	return Func{v: v, t: v.Type()}
}

// NumIn reports how many parameters the wrapped function accepts.
func (f Func) NumIn() int { return f.t.NumIn() }

// NumOut reports how many values the wrapped function returns.
func (f Func) NumOut() int { return f.t.NumOut() }

// IsVoid reports whether the wrapped function returns nothing, the signal
// adaptors use to decide between forwarding SetValue() and SetValue(result).
func (f Func) IsVoid() bool { return f.t.NumOut() == 0 }

// Call invokes the wrapped function with args, recovering any panic into a
// PanicError rather than letting it cross into the caller's goroutine
// unannounced - the same recovery worker.go/task.go perform around every
// task execution.
func (f Func) Call(args ...any) (results []any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Recovered: r}
		}
	}()

	in := make([]reflect.Value, len(args))
	for i, a := range args {
		in[i] = valueFor(a, f.t.In(i))
	}

	out := f.v.Call(in)
	results = make([]any, len(out))
	for i, v := range out {
		results[i] = v.Interface()
	}
	return results, nil
}

// valueFor builds a reflect.Value for a that is assignable to want, coping
// with the common case of a being untyped nil destined for an interface or
// pointer parameter.
func valueFor(a any, want reflect.Type) reflect.Value {
	if a == nil {
		return reflect.Zero(want)
	}
	v := reflect.ValueOf(a)
	if v.Type().AssignableTo(want) {
		return v
	}
	if v.Type().ConvertibleTo(want) {
		return v.Convert(want)
	}
	return v
}

// PanicError is the error a recovered callback panic is converted into -
// the exec-core analog of exception_ptr captured by a noexcept boundary.
type PanicError struct {
	Recovered any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("invoke: callback panicked: %v", e.Recovered)
}

func (e *PanicError) Unwrap() error {
	if err, ok := e.Recovered.(error); ok {
		return err
	}
	return nil
}
