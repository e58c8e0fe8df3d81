package perf

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	duration *prometheus.HistogramVec
	elements *prometheus.CounterVec
	failures *prometheus.CounterVec
}

// newMetrics registers the sampler's collectors with reg. Collectors already
// registered by an earlier Runner on the same registry are reused. A nil reg
// yields working but unregistered collectors.
func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sortbench_sort_duration_seconds",
			Help:    "Time taken to sort one sample",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 12), //nolint:mnd
		}, []string{"algorithm"}),

		elements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sortbench_sorted_elements_total",
			Help: "The total number of elements sorted",
		}, []string{"algorithm"}),

		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sortbench_sort_failures_total",
			Help: "The total number of samples whose output failed verification",
		}, []string{"algorithm"}),
	}

	if reg == nil {
		return m
	}

	m.duration = register(reg, m.duration)
	m.elements = register(reg, m.elements)
	m.failures = register(reg, m.failures)

	return m
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	err := reg.Register(c)
	if err == nil {
		return c
	}

	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		if existing, ok := already.ExistingCollector.(C); ok {
			return existing
		}
	}

	panic(err)
}
