// SPDX-License-Identifier: MIT

package alloc

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "fdt"

// Metered exports slot traffic of the wrapped allocator as Prometheus metrics,
// labelled with a constant allocator name.
type Metered[T any] struct {
	upstream Allocator[T]

	slotsTotal    prometheus.Counter
	inuseSlots    prometheus.Gauge
	callsTotal    prometheus.Counter
	failuresTotal prometheus.Counter
}

var _ Allocator[int] = (*Metered[int])(nil)

// NewMetered builds the collectors and registers them on reg when reg is
// non-nil. Registration errors (duplicate names) are returned as is.
func NewMetered[T any](upstream Allocator[T], reg prometheus.Registerer, name string) (*Metered[T], error) {
	labels := prometheus.Labels{"allocator": name}
	m := &Metered[T]{
		upstream: upstream,
		slotsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   metricsNamespace,
			Subsystem:   "alloc",
			Name:        "slots_total",
			Help:        "Slots handed out since start.",
			ConstLabels: labels,
		}),
		inuseSlots: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   metricsNamespace,
			Subsystem:   "alloc",
			Name:        "inuse_slots",
			Help:        "Slots currently allocated and not yet returned.",
			ConstLabels: labels,
		}),
		callsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   metricsNamespace,
			Subsystem:   "alloc",
			Name:        "calls_total",
			Help:        "Successful Allocate calls.",
			ConstLabels: labels,
		}),
		failuresTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   metricsNamespace,
			Subsystem:   "alloc",
			Name:        "failures_total",
			Help:        "Failed Allocate calls.",
			ConstLabels: labels,
		}),
	}

	if reg != nil {
		for _, c := range m.Collectors() {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// Collectors returns the metrics owned by m, for custom registration.
func (m *Metered[T]) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.slotsTotal, m.inuseSlots, m.callsTotal, m.failuresTotal}
}

func (m *Metered[T]) Allocate(n int) ([]T, error) {
	buf, err := m.upstream.Allocate(n)
	if err != nil {
		m.failuresTotal.Inc()
		return nil, err
	}
	m.callsTotal.Inc()
	m.slotsTotal.Add(float64(n))
	m.inuseSlots.Add(float64(n))

	return buf, nil
}

func (m *Metered[T]) Deallocate(buf []T) {
	m.inuseSlots.Sub(float64(cap(buf)))
	m.upstream.Deallocate(buf)
}

func (m *Metered[T]) Construct(buf []T, i int, v T) { m.upstream.Construct(buf, i, v) }

func (m *Metered[T]) Destroy(buf []T, i int) { m.upstream.Destroy(buf, i) }
