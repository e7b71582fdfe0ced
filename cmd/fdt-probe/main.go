// SPDX-License-Identifier: MIT

// Command fdt-probe exercises an allocator profile end to end: it fills a
// vector, reports how often the buffer moved, computes the determinant of a
// matrix built on the same allocator and dumps the collected metrics.
//
// Usage:
//
//	fdt-probe -config profile.toml -n 100000 -dim 6 -log info
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"go.uber.org/zap"

	"github.com/katalvlaran/fdt/alloc"
	"github.com/katalvlaran/fdt/internal/logutil"
	"github.com/katalvlaran/fdt/matrix"
	"github.com/katalvlaran/fdt/vector"
)

type probeFlags struct {
	config string
	n      int
	dim    int
	level  string
}

func main() {
	var f probeFlags
	flag.StringVar(&f.config, "config", "", "allocator profile (TOML); empty means plain heap")
	flag.IntVar(&f.n, "n", 100000, "number of vector appends")
	flag.IntVar(&f.dim, "dim", 5, "matrix dimension")
	flag.StringVar(&f.level, "log", "warn", "log level: debug, info, warn, error")
	flag.Parse()

	if err := run(f, os.Stdout); err != nil {
		logutil.Error("probe failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, "fdt-probe:", err)
		os.Exit(1)
	}
}

func run(f probeFlags, out io.Writer) error {
	logger, err := logutil.SetupLogger(f.level)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	cfg := alloc.DefaultConfig()
	if f.config != "" {
		if cfg, err = alloc.LoadConfig(f.config); err != nil {
			return err
		}
	}
	logutil.Info("profile loaded",
		zap.String("kind", cfg.Kind),
		zap.Int("max_slots", cfg.MaxSlots),
		zap.Bool("metrics", cfg.Metrics))

	reg := prometheus.NewRegistry()
	a, err := alloc.Build[int64](cfg, alloc.WithRegisterer(reg), alloc.WithLogger(logger))
	if err != nil {
		return err
	}

	if err = probeVector(a, f.n, out); err != nil {
		return err
	}
	if err = probeMatrix(a, f.dim, out); err != nil {
		return err
	}
	if cfg.Metrics {
		return dumpMetrics(reg, out)
	}

	return nil
}

// probeVector appends n values and counts capacity changes.
func probeVector(a alloc.Allocator[int64], n int, out io.Writer) error {
	v, err := vector.New[int64](vector.WithAllocator(a))
	if err != nil {
		return err
	}
	defer v.Release()

	reallocs, last := 0, v.Capacity()
	for i := range n {
		if err = v.PushBack(int64(i)); err != nil {
			return fmt.Errorf("append %d: %w", i, err)
		}
		if c := v.Capacity(); c != last {
			reallocs++
			last = c
		}
	}
	fmt.Fprintf(out, "vector: size=%d capacity=%d reallocations=%d\n", v.Size(), v.Capacity(), reallocs)

	return nil
}

// probeMatrix fills a diagonally dominant dim x dim matrix, so the
// determinant is non-zero, and prints it.
func probeMatrix(a alloc.Allocator[int64], dim int, out io.Writer) error {
	m, err := matrix.New[int64](dim, dim, matrix.WithAllocator(a))
	if err != nil {
		return err
	}
	defer m.Release()

	for i := range dim {
		for j := range dim {
			v := int64((i*j + 1) % 7)
			if i == j {
				v += int64(7 * dim)
			}
			*m.Ref(i, j) = v
		}
	}
	det, err := m.Determinant()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "matrix: %dx%d determinant=%g\n", dim, dim, det)

	return nil
}

func dumpMetrics(g prometheus.Gatherer, out io.Writer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(out, mf); err != nil {
			return err
		}
	}
	return nil
}
