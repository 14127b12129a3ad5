// Package dispatch implements the core's single extension-point primitive:
// a name-independent dispatcher that resolves an overload from a tag type
// and a target's concrete dynamic type, the same role argument-dependent
// lookup of an unqualified "dispatch" call plays in the C++ original.
//
// Every customization point in the exec core (connect, start, set_value,
// schedule, ...) is layered on top of Invoke: look up a registration for
// (Tag, concrete type of target); if none exists, the caller falls back to
// its own default.
package dispatch

import (
	"reflect"
	"sync"
)

// registry maps a tag type to a map of target type -> customization function.
var registry = struct {
	mu sync.RWMutex
	m  map[reflect.Type]map[reflect.Type]reflect.Value
}{m: make(map[reflect.Type]map[reflect.Type]reflect.Value)}

// Register installs fn as the customization for (Tag, Target). fn must be a
// function value; its first parameter type must be Target (or an interface
// Target implements). Register is meant to be called from an adaptor or
// scheduler's init() or constructor, mirroring a customization found by ADL
// at the point the overload is declared.
func Register[Tag, Target any](fn any) {
	fv := reflect.ValueOf(fn)
	if fv.Kind() != reflect.Func {
		panic("dispatch.Register: fn must be a function")
	}

	var tagZero Tag
	var targetZero Target
	tagType := reflect.TypeOf(&tagZero).Elem()
	targetType := reflect.TypeOf(&targetZero).Elem()

	registry.mu.Lock()
	defer registry.mu.Unlock()

	byTarget, ok := registry.m[tagType]
	if !ok {
		byTarget = make(map[reflect.Type]reflect.Value)
		registry.m[tagType] = byTarget
	}
	byTarget[targetType] = fv
}

// Invoke looks up a registration for (Tag, concrete dynamic type of target)
// and, if found, calls it with target followed by args. ok is false if no
// customization is registered, in which case the caller must apply its own
// default lowering.
func Invoke[Tag any](target any, args ...any) (result []any, ok bool) {
	var tagZero Tag
	tagType := reflect.TypeOf(&tagZero).Elem()

	registry.mu.RLock()
	byTarget, present := registry.m[tagType]
	if !present {
		registry.mu.RUnlock()
		return nil, false
	}
	fv, present := byTarget[reflect.TypeOf(target)]
	registry.mu.RUnlock()
	if !present {
		return nil, false
	}

	in := make([]reflect.Value, 0, len(args)+1)
	in = append(in, reflect.ValueOf(target))
	for _, a := range args {
		in = append(in, reflect.ValueOf(a))
	}

	out := fv.Call(in)
	result = make([]any, len(out))
	for i, v := range out {
		result[i] = v.Interface()
	}
	return result, true
}

// Registered reports whether any customization is registered for Tag at all,
// regardless of target type. Useful for diagnostics and tests.
func Registered[Tag any]() bool {
	var tagZero Tag
	tagType := reflect.TypeOf(&tagZero).Elem()

	registry.mu.RLock()
	defer registry.mu.RUnlock()
	byTarget, ok := registry.m[tagType]
	return ok && len(byTarget) > 0
}
