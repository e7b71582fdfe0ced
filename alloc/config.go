// SPDX-License-Identifier: MIT

package alloc

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Allocator kinds understood by Build.
const (
	KindHeap = "heap"
	KindMmap = "mmap"
)

// DefaultName labels allocators whose profile leaves Name empty.
const DefaultName = "default"

// Config describes an allocator profile. Decorators are stacked as
// base -> Limited -> Metered -> Logged, so logs also see budget failures.
type Config struct {
	Kind     string `toml:"kind"`      // heap | mmap
	MaxSlots int    `toml:"max_slots"` // 0 = unlimited
	Log      bool   `toml:"log"`
	Metrics  bool   `toml:"metrics"`
	Name     string `toml:"name"`
}

// DefaultConfig is a plain heap profile.
func DefaultConfig() Config {
	return Config{Kind: KindHeap, Name: DefaultName}
}

// Validate checks kind and budget.
func (c Config) Validate() error {
	switch c.Kind {
	case KindHeap, KindMmap:
	default:
		return fmt.Errorf("kind %q: %w", c.Kind, ErrUnknownKind)
	}
	if c.MaxSlots < 0 {
		return fmt.Errorf("max_slots %d: %w", c.MaxSlots, ErrBadConfig)
	}
	return nil
}

// ParseConfig decodes a TOML profile on top of DefaultConfig.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("alloc: parse config: %w", err)
	}
	return finishConfig(cfg, md)
}

// LoadConfig reads a TOML profile from path.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("alloc: load config %s: %w", path, err)
	}
	return finishConfig(cfg, md)
}

func finishConfig(cfg Config, md toml.MetaData) (Config, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("unknown keys %s: %w", strings.Join(keys, ","), ErrBadConfig)
	}
	if cfg.Name == "" {
		cfg.Name = DefaultName
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// BuildOption tunes Build.
type BuildOption func(*buildOptions)

type buildOptions struct {
	reg    prometheus.Registerer
	logger *zap.Logger
}

// WithRegisterer sets where Metered collectors are registered.
// Without it a metrics profile registers on a private registry.
func WithRegisterer(reg prometheus.Registerer) BuildOption {
	return func(o *buildOptions) { o.reg = reg }
}

// WithLogger pins the logger used by the Logged decorator.
func WithLogger(l *zap.Logger) BuildOption {
	return func(o *buildOptions) { o.logger = l }
}

// Build assembles the allocator described by cfg.
func Build[T any](cfg Config, opts ...BuildOption) (Allocator[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var o buildOptions
	for _, opt := range opts {
		opt(&o)
	}
	name := cfg.Name
	if name == "" {
		name = DefaultName
	}

	var a Allocator[T]
	switch cfg.Kind {
	case KindHeap:
		a = NewHeap[T]()
	case KindMmap:
		m, err := NewMmap[T]()
		if err != nil {
			return nil, err
		}
		a = m
	}

	if cfg.MaxSlots > 0 {
		a = NewLimited(a, cfg.MaxSlots)
	}
	if cfg.Metrics {
		reg := o.reg
		if reg == nil {
			reg = prometheus.NewRegistry()
		}
		m, err := NewMetered(a, reg, name)
		if err != nil {
			return nil, fmt.Errorf("alloc: register metrics for %q: %w", name, err)
		}
		a = m
	}
	if cfg.Log {
		a = NewLogged(a, o.logger, name)
	}

	return a, nil
}
