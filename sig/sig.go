// Package sig implements a completion-signature calculus: a purely
// syntactic description of the value/error/stopped shapes a sender may
// complete with, computed at pipeline-build time from typelist operations.
// It never evaluates bodies; it only propagates shapes so a composed
// pipeline carries a statically known completion-shape set.
package sig

import (
	"reflect"

	"github.com/nyxforge/exec/typelist"
)

// Kind distinguishes the three completion tags.
type Kind int

const (
	// Value marks a set_value_t(Args...) signature.
	Value Kind = iota
	// Error marks a set_error_t(E) signature.
	Error
	// Stopped marks a set_stopped_t() signature.
	Stopped
)

func (k Kind) String() string {
	switch k {
	case Value:
		return "set_value_t"
	case Error:
		return "set_error_t"
	case Stopped:
		return "set_stopped_t"
	default:
		return "unknown"
	}
}

// Signature is one completion shape: Tag(Args...). For Value, Types holds
// every value's decayed type in order. For Error, Types holds exactly the
// one error type. For Stopped, Types is empty.
type Signature struct {
	Kind  Kind
	Types typelist.List
}

// Equal reports whether two signatures describe the same shape.
func (s Signature) Equal(o Signature) bool {
	if s.Kind != o.Kind || len(s.Types) != len(o.Types) {
		return false
	}
	for i := range s.Types {
		if s.Types[i] != o.Types[i] {
			return false
		}
	}
	return true
}

// ValueSig builds a set_value_t(Args...) signature from example values
// (only their decayed types are kept).
func ValueSig(values ...any) Signature {
	types := make(typelist.List, len(values))
	for i, v := range values {
		types[i] = decay(v)
	}
	return Signature{Kind: Value, Types: types}
}

// ValueSigTypes builds a set_value_t(Args...) signature directly from types,
// for use when no example value is at hand (e.g. composing signatures for a
// sender that hasn't run yet).
func ValueSigTypes(types ...reflect.Type) Signature {
	return Signature{Kind: Value, Types: append(typelist.List{}, types...)}
}

// ErrorSig builds a set_error_t(E) signature from an example error value.
func ErrorSig(err any) Signature {
	return Signature{Kind: Error, Types: typelist.List{decay(err)}}
}

// ErrorSigType builds a set_error_t(E) signature directly from a type.
func ErrorSigType(t reflect.Type) Signature {
	return Signature{Kind: Error, Types: typelist.List{t}}
}

// StoppedSig builds the set_stopped_t() signature.
func StoppedSig() Signature {
	return Signature{Kind: Stopped}
}

func decay(v any) reflect.Type {
	if v == nil {
		return nil
	}
	return reflect.TypeOf(v)
}

// Set is the compile-time set of signatures a sender may produce in a given
// environment: completion_signatures<Sig...>.
type Set struct {
	sigs []Signature
}

// Of constructs a Set from the given signatures, deduplicating shapes the
// way concat_sets does.
func Of(sigs ...Signature) Set {
	var out []Signature
	for _, s := range sigs {
		dup := false
		for _, e := range out {
			if e.Equal(s) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, s)
		}
	}
	return Set{sigs: out}
}

// Signatures returns the set's signatures in insertion order.
func (s Set) Signatures() []Signature { return append([]Signature{}, s.sigs...) }

// Merge concatenates sets as a set: duplicate shapes across inputs are
// collapsed.
func Merge(sets ...Set) Set {
	var all []Signature
	for _, s := range sets {
		all = append(all, s.sigs...)
	}
	return Of(all...)
}

// ValueShapes returns every set_value_t(Args...) shape's argument type list.
func (s Set) ValueShapes() []typelist.List {
	var out []typelist.List
	for _, sg := range s.sigs {
		if sg.Kind == Value {
			out = append(out, sg.Types)
		}
	}
	return out
}

// ErrorTypes returns every set_error_t(E) shape's E.
func (s Set) ErrorTypes() typelist.List {
	var out typelist.List
	for _, sg := range s.sigs {
		if sg.Kind == Error {
			out = append(out, sg.Types...)
		}
	}
	return out
}

// SendsStopped reports whether a set_stopped_t() shape is present.
func (s Set) SendsStopped() bool {
	for _, sg := range s.sigs {
		if sg.Kind == Stopped {
			return true
		}
	}
	return false
}

// Make builds a derived signature set the way a transforming adaptor would:
// concatenate-as-set add, setV applied to each value shape, setE applied to
// each error type, and setStopped (included iff true).
func Make(add Set, valueShapes []typelist.List, setV func(typelist.List) Signature,
	errorTypes typelist.List, setE func(reflect.Type) Signature, setStopped bool,
) Set {
	sigs := append([]Signature{}, add.sigs...)
	for _, vs := range valueShapes {
		sigs = append(sigs, setV(vs))
	}
	for _, et := range errorTypes {
		sigs = append(sigs, setE(et))
	}
	if setStopped {
		sigs = append(sigs, StoppedSig())
	}
	return Of(sigs...)
}
