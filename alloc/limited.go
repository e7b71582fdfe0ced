// SPDX-License-Identifier: MIT

package alloc

import "fmt"

// Limited caps the number of slots outstanding at any time.
type Limited[T any] struct {
	upstream Allocator[T]
	max      int
	inuse    int
	peak     int
}

var _ Allocator[int] = (*Limited[int])(nil)

// NewLimited wraps upstream with a budget of maxSlots live slots.
// A non-positive budget panics: it is a programmer error.
func NewLimited[T any](upstream Allocator[T], maxSlots int) *Limited[T] {
	if maxSlots <= 0 {
		panic("alloc: NewLimited: maxSlots must be > 0")
	}
	return &Limited[T]{upstream: upstream, max: maxSlots}
}

func (l *Limited[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	if n > l.max-l.inuse {
		return nil, fmt.Errorf("Limited.Allocate(%d): %d/%d slots in use: %w", n, l.inuse, l.max, ErrOutOfMemory)
	}
	buf, err := l.upstream.Allocate(n)
	if err != nil {
		return nil, err
	}
	l.inuse += n
	l.peak = max(l.peak, l.inuse)

	return buf, nil
}

func (l *Limited[T]) Deallocate(buf []T) {
	l.inuse -= cap(buf)
	l.upstream.Deallocate(buf)
}

func (l *Limited[T]) Construct(buf []T, i int, v T) { l.upstream.Construct(buf, i, v) }

func (l *Limited[T]) Destroy(buf []T, i int) { l.upstream.Destroy(buf, i) }

// InUse returns the slots currently held by callers.
func (l *Limited[T]) InUse() int { return l.inuse }

// Peak returns the high-water mark of InUse.
func (l *Limited[T]) Peak() int { return l.peak }

// Max returns the configured budget.
func (l *Limited[T]) Max() int { return l.max }
