// SPDX-License-Identifier: MIT

package alloc

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/fdt/internal/logutil"
)

// Logged records every allocation and release through zap.
// A nil logger means the process-wide logger from internal/logutil,
// resolved on each call so later SetGlobalLogger calls take effect.
type Logged[T any] struct {
	upstream Allocator[T]
	logger   *zap.Logger
	name     string
}

var _ Allocator[int] = (*Logged[int])(nil)

func NewLogged[T any](upstream Allocator[T], logger *zap.Logger, name string) *Logged[T] {
	return &Logged[T]{upstream: upstream, logger: logger, name: name}
}

func (l *Logged[T]) log() *zap.Logger {
	if l.logger != nil {
		return l.logger
	}
	return logutil.GetGlobalLogger()
}

func (l *Logged[T]) Allocate(n int) ([]T, error) {
	buf, err := l.upstream.Allocate(n)
	if err != nil {
		l.log().Warn("allocate failed",
			zap.String("allocator", l.name),
			zap.Int("slots", n),
			zap.Error(err),
		)
		return nil, err
	}
	l.log().Debug("allocate",
		zap.String("allocator", l.name),
		zap.Int("slots", n),
	)
	return buf, nil
}

func (l *Logged[T]) Deallocate(buf []T) {
	l.log().Debug("deallocate",
		zap.String("allocator", l.name),
		zap.Int("slots", cap(buf)),
	)
	l.upstream.Deallocate(buf)
}

func (l *Logged[T]) Construct(buf []T, i int, v T) { l.upstream.Construct(buf, i, v) }

func (l *Logged[T]) Destroy(buf []T, i int) { l.upstream.Destroy(buf, i) }
