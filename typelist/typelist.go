// Package typelist implements a type-list algebra over reflect.Type, since
// Go has no type-level programming. The sig package is the sole consumer:
// it uses these operations to gather, filter, and merge the value/error/
// stopped shapes a composed sender may produce.
package typelist

import "reflect"

// List is an ordered sequence of types. Equality between lists compares
// elements positionally; ConcatSets collapses duplicates using
// reflect.Type's own identity as the equality test.
type List []reflect.Type

// Apply instantiates f with the list's elements, in order.
func Apply[T any](l List, f func(List) T) T {
	return f(l)
}

// ConcatLists is multiset concatenation: every element from every list is
// kept, duplicates included, source order preserved.
func ConcatLists(lists ...List) List {
	var out List
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// ConcatSets concatenates lists, collapsing elements that are the same
// type, keeping the first occurrence's position.
func ConcatSets(lists ...List) List {
	var out List
	seen := make(map[reflect.Type]struct{})
	for _, l := range lists {
		for _, t := range l {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	return out
}

// Filter keeps only the elements for which pred returns true.
func Filter(l List, pred func(reflect.Type) bool) List {
	var out List
	for _, t := range l {
		if pred(t) {
			out = append(out, t)
		}
	}
	return out
}

// Transform maps every element of l through f.
func Transform(l List, f func(reflect.Type) reflect.Type) List {
	out := make(List, len(l))
	for i, t := range l {
		out[i] = f(t)
	}
	return out
}

// ZipApply treats outer as a list of lists: it applies inner to each
// sub-list, then applies outer to the resulting list of values.
func ZipApply[Inner, Outer any](lists []List, inner func(List) Inner, outer func([]Inner) Outer) Outer {
	results := make([]Inner, len(lists))
	for i, l := range lists {
		results[i] = inner(l)
	}
	return outer(results)
}

// Includes reports whether t is present in l.
func Includes(t reflect.Type, l List) bool {
	for _, e := range l {
		if e == t {
			return true
		}
	}
	return false
}
