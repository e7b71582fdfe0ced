// SPDX-License-Identifier: MIT

package alloc

import "reflect"

// Allocator hands out and takes back element buffers.
//
// Contract:
//   - Allocate(n) returns a buffer with len == cap == n whose slots hold the
//     zero value and are considered unconstructed.
//   - Construct writes a live element into slot i.
//   - Destroy retires the live element in slot i (see DestroyValue).
//   - Deallocate is called exactly once per buffer, with the slice returned
//     by Allocate; slots must be destroyed first.
type Allocator[T any] interface {
	Allocate(n int) ([]T, error)
	Deallocate(buf []T)
	Construct(buf []T, i int, v T)
	Destroy(buf []T, i int)
}

// Destroyer is implemented by element types that own a resource which must
// be released when the element leaves a container.
type Destroyer interface {
	Destroy()
}

// DestroyValue runs the element's Destroy hook, if any, and zeroes *p so the
// slot no longer keeps anything reachable.
func DestroyValue[T any](p *T) {
	switch d := any(p).(type) {
	case Destroyer:
		d.Destroy()
	default:
		if v, ok := any(*p).(Destroyer); ok && !isNilValue(v) {
			v.Destroy()
		}
	}
	var zero T
	*p = zero
}

func isNilValue(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
