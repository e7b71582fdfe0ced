// SPDX-License-Identifier: MIT

// Package logutil holds the process-wide zap logger used by fdt packages.
//
// The default logger is a no-op: containers are libraries and stay silent
// unless the embedding program opts in via SetupLogger or SetGlobalLogger.
package logutil

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var global atomic.Pointer[zap.Logger]

func init() {
	global.Store(zap.NewNop())
}

// GetGlobalLogger returns the current process-wide logger. Never nil.
func GetGlobalLogger() *zap.Logger {
	return global.Load()
}

// SetGlobalLogger replaces the process-wide logger and returns the previous one.
// A nil logger resets to a no-op logger.
func SetGlobalLogger(l *zap.Logger) *zap.Logger {
	if l == nil {
		l = zap.NewNop()
	}
	return global.Swap(l)
}

// SetupLogger builds a console logger at the given level ("debug", "info",
// "warn", "error") writing to stderr and installs it globally.
func SetupLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("logutil: bad level %q: %w", level, err)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logutil: build logger: %w", err)
	}
	SetGlobalLogger(l)

	return l, nil
}

func Debug(msg string, fields ...zap.Field) {
	GetGlobalLogger().WithOptions(zap.AddCallerSkip(1)).Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	GetGlobalLogger().WithOptions(zap.AddCallerSkip(1)).Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	GetGlobalLogger().WithOptions(zap.AddCallerSkip(1)).Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	GetGlobalLogger().WithOptions(zap.AddCallerSkip(1)).Error(msg, fields...)
}
