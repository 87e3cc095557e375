package observability

import (
	"context"
	"fmt"

	"github.com/hadronized/hop.kak/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "hop"

// Metrics owns a private registry so that concurrent engines in one process
// (tests, embedders) never collide on the default registerer.
type Metrics struct {
	registry *prometheus.Registry

	Allocations prometheus.Counter
	Keys        *prometheus.CounterVec
	Cancels     prometheus.Counter
	LabelDepth  prometheus.Histogram
	LivePairs   prometheus.Histogram
}

// NewMetrics builds and registers the collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Allocations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "allocations_total",
			Help:      "Number of fresh label allocations.",
		}),
		Keys: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "keys_total",
			Help:      "Typed keys by outcome.",
		}, []string{"outcome"}),
		Cancels: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cancels_total",
			Help:      "Number of cancelled sessions.",
		}),
		LabelDepth: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "label_depth",
			Help:      "Length of the longest label per allocation.",
			Buckets:   []float64{1, 2, 3, 4, 6, 8, 16},
		}),
		LivePairs: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "live_pairs",
			Help:      "Selections still labelled after each key.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
	}

	m.registry.MustRegister(m.Allocations, m.Keys, m.Cancels, m.LabelDepth, m.LivePairs)
	return m
}

// Registry exposes the underlying registry, mostly for tests and embedders.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnAllocate: func(_ context.Context, e *domain.AllocateEvent) {
			m.Allocations.Inc()
			m.LabelDepth.Observe(float64(e.Depth))
			m.LivePairs.Observe(float64(e.Count))
		},
		OnReduce: func(_ context.Context, e *domain.KeyEvent) {
			m.Keys.WithLabelValues(string(domain.EventReduce)).Inc()
			m.LivePairs.Observe(float64(e.After))
		},
		OnNoMatch: func(_ context.Context, e *domain.KeyEvent) {
			m.Keys.WithLabelValues(string(domain.EventNoMatch)).Inc()
		},
		OnResolve: func(_ context.Context, e *domain.KeyEvent) {
			m.Keys.WithLabelValues(string(domain.EventResolve)).Inc()
			m.LivePairs.Observe(float64(e.After))
		},
		OnCancel: func(_ context.Context, _ *domain.EventBase) {
			m.Cancels.Inc()
		},
	}
}

// WriteTextfile atomically writes the registry in the node_exporter text format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
