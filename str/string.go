// SPDX-License-Identifier: MIT

// Package str provides String, a mutable byte string stored in an
// allocator-aware vector.Vector[byte].
package str

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/katalvlaran/fdt/vector"
)

const (
	// NPos is returned by Find when nothing matches, and means "to the end"
	// when passed as a count.
	NPos = -1

	// MaxSize bounds Reserve.
	MaxSize = 1 << 30
)

var (
	ErrOutOfRange = errors.New("str: position out of range")
	ErrLength     = errors.New("str: length exceeds MaxSize")
)

// Option configures the backing vector.
type Option = vector.Option[byte]

// String is a growable byte string. The zero value is not usable; build one
// with New, FromString or Repeat.
type String struct {
	buf *vector.Vector[byte]
}

var _ fmt.Stringer = (*String)(nil)

func New(opts ...Option) (*String, error) {
	v, err := vector.New[byte](opts...)
	if err != nil {
		return nil, err
	}
	return &String{buf: v}, nil
}

func FromString(s string, opts ...Option) (*String, error) {
	v, err := vector.NewFrom([]byte(s), opts...)
	if err != nil {
		return nil, err
	}
	return &String{buf: v}, nil
}

// Repeat returns count copies of ch.
func Repeat(count int, ch byte, opts ...Option) (*String, error) {
	if count < 0 || count > MaxSize {
		return nil, fmt.Errorf("str.Repeat(%d): %w", count, ErrLength)
	}
	v, err := vector.NewSized[byte](count, opts...)
	if err != nil {
		return nil, err
	}
	for i := range count {
		*v.Ref(i) = ch
	}
	return &String{buf: v}, nil
}

// Substr copies count bytes starting at pos. The count is clamped to the
// end of s; NPos takes everything from pos on. pos == Size yields an empty
// string.
func (s *String) Substr(pos, count int, opts ...Option) (*String, error) {
	if pos < 0 || pos > s.Size() {
		return nil, fmt.Errorf("String.Substr(%d): %w", pos, ErrOutOfRange)
	}
	end := s.Size()
	if count != NPos && count >= 0 && count < end-pos {
		end = pos + count
	}
	v, err := vector.NewFrom(s.buf.Data()[pos:end], opts...)
	if err != nil {
		return nil, err
	}
	return &String{buf: v}, nil
}

func (s *String) Size() int { return s.buf.Size() }

// Length is Size.
func (s *String) Length() int { return s.buf.Size() }

func (s *String) Capacity() int { return s.buf.Capacity() }

func (s *String) Empty() bool { return s.buf.Empty() }

// Reserve ensures room for n bytes.
func (s *String) Reserve(n int) error {
	if n < 0 || n > MaxSize {
		return fmt.Errorf("String.Reserve(%d): %w", n, ErrLength)
	}
	return s.buf.Reserve(n)
}

func (s *String) At(i int) (byte, error) {
	if i < 0 || i >= s.Size() {
		return 0, fmt.Errorf("String.At(%d): %w", i, ErrOutOfRange)
	}
	return s.buf.Get(i), nil
}

func (s *String) Set(i int, b byte) error {
	if i < 0 || i >= s.Size() {
		return fmt.Errorf("String.Set(%d): %w", i, ErrOutOfRange)
	}
	*s.buf.Ref(i) = b
	return nil
}

// Bytes returns the content. The slice aliases the buffer.
func (s *String) Bytes() []byte { return s.buf.Data() }

func (s *String) PushBack(b byte) error { return s.buf.PushBack(b) }

func (s *String) PopBack() error {
	if s.Empty() {
		return fmt.Errorf("String.PopBack: %w", ErrOutOfRange)
	}
	return s.buf.PopBack()
}

// Append adds the content of other. Appending s to itself is allowed.
func (s *String) Append(other *String) error {
	return s.appendBytes(bytes.Clone(other.Bytes()))
}

func (s *String) AppendString(t string) error {
	return s.appendBytes([]byte(t))
}

func (s *String) appendBytes(p []byte) error {
	if s.Size()+len(p) > MaxSize {
		return fmt.Errorf("String.Append(%d): %w", len(p), ErrLength)
	}
	if need := s.Size() + len(p) + 1; need > s.Capacity() {
		if err := s.buf.Reserve(max(need, 2*s.Capacity())); err != nil {
			return err
		}
	}
	for _, b := range p {
		if err := s.buf.PushBack(b); err != nil {
			return err
		}
	}
	return nil
}

// Find returns the index of the first occurrence of sub, or NPos.
func (s *String) Find(sub string) int {
	return bytes.Index(s.Bytes(), []byte(sub))
}

// Compare orders s and other bytewise.
func (s *String) Compare(other *String) int {
	return bytes.Compare(s.Bytes(), other.Bytes())
}

func (s *String) Equal(other *String) bool {
	return bytes.Equal(s.Bytes(), other.Bytes())
}

func (s *String) String() string { return string(s.Bytes()) }

// Release returns the buffer to the allocator.
func (s *String) Release() { s.buf.Release() }
