// SPDX-License-Identifier: MIT

package alloc

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/edsrzf/mmap-go"
	"go.uber.org/zap"

	"github.com/katalvlaran/fdt/internal/logutil"
)

// Mmap backs every buffer with its own anonymous memory mapping.
//
// The garbage collector does not scan mapped memory, so T must not contain
// Go pointers (no strings, slices, maps, interfaces, pointers). NewMmap
// rejects such types with ErrPointerType.
type Mmap[T any] struct {
	itemSize int
	regions  map[uintptr]mmap.MMap // keyed by the first slot address
}

var _ Allocator[int64] = (*Mmap[int64])(nil)

// NewMmap validates T and returns an empty mapping allocator.
func NewMmap[T any]() (*Mmap[T], error) {
	var item T
	typ := reflect.TypeOf(&item).Elem()

	if hasPointers(typ) {
		return nil, fmt.Errorf("NewMmap[%s]: %w", typ, ErrPointerType)
	}
	size := int(unsafe.Sizeof(item))
	if size <= 0 {
		return nil, fmt.Errorf("NewMmap[%s]: %w", typ, ErrZeroSize)
	}

	return &Mmap[T]{
		itemSize: size,
		regions:  make(map[uintptr]mmap.MMap),
	}, nil
}

// Allocate maps n*sizeof(T) zeroed bytes. A mapping failure is reported as
// ErrOutOfMemory with the system error attached.
func (m *Mmap[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	if n == 0 {
		return []T{}, nil
	}

	region, err := mmap.MapRegion(nil, n*m.itemSize, mmap.RDWR, mmap.ANON, 0)
	if err != nil {
		return nil, fmt.Errorf("Mmap.Allocate(%d): %w: %v", n, ErrOutOfMemory, err)
	}
	base := unsafe.Pointer(&region[0])
	m.regions[uintptr(base)] = region

	return unsafe.Slice((*T)(base), n), nil
}

// Deallocate unmaps the region behind buf. Buffers this allocator did not
// hand out are ignored.
func (m *Mmap[T]) Deallocate(buf []T) {
	if cap(buf) == 0 {
		return
	}
	key := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	region, ok := m.regions[key]
	if !ok {
		logutil.Warn("alloc: mmap deallocate of foreign buffer", zap.Uintptr("addr", key))
		return
	}
	delete(m.regions, key)

	if err := region.Unmap(); err != nil {
		logutil.Error("alloc: munmap failed", zap.Uintptr("addr", key), zap.Error(err))
	}
}

func (m *Mmap[T]) Construct(buf []T, i int, v T) { buf[i] = v }

func (m *Mmap[T]) Destroy(buf []T, i int) { DestroyValue(&buf[i]) }

// Live reports how many mappings are currently held.
func (m *Mmap[T]) Live() int { return len(m.regions) }

// hasPointers reports whether values of t may hold Go pointers.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return true
	}
}
