// SPDX-License-Identifier: MIT

// Package utility holds small helpers shared by the containers: a two-field
// Pair and nil checks that see through typed interfaces.
package utility

import (
	"cmp"
	"reflect"
)

// Pair groups two values of possibly different types.
type Pair[A, B any] struct {
	First  A
	Second B
}

func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// Swap exchanges the contents of p and other.
func (p *Pair[A, B]) Swap(other *Pair[A, B]) {
	*p, *other = *other, *p
}

// Unpack returns both fields, for multi-value assignment.
func (p Pair[A, B]) Unpack() (A, B) {
	return p.First, p.Second
}

func PairEqual[A, B comparable](x, y Pair[A, B]) bool {
	return x.First == y.First && x.Second == y.Second
}

// PairLess orders pairs by First, then by Second.
func PairLess[A, B cmp.Ordered](x, y Pair[A, B]) bool {
	if c := cmp.Compare(x.First, y.First); c != 0 {
		return c < 0
	}
	return cmp.Less(x.Second, y.Second)
}

// IsNil reports whether the pointer p is nil.
func IsNil[P ~*E, E any](p P) bool {
	return p == nil
}

// IsNilAny reports whether v is nil or an interface holding a nil pointer,
// map, slice, channel or func.
func IsNilAny(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
