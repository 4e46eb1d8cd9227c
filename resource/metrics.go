// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package resource

import (
	"github.com/prometheus/client_golang/prometheus"
)

// cacheMetrics holds Prometheus metrics for resource loads.
type cacheMetrics struct {
	hits   prometheus.Counter
	misses prometheus.Counter
	errors prometheus.Counter
	bytes  prometheus.Gauge
}

// newCacheMetrics creates and registers cache metrics with reg.
func newCacheMetrics(reg prometheus.Registerer) (*cacheMetrics, error) {
	m := &cacheMetrics{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "headless",
			Subsystem: "resource",
			Name:      "hits_total",
			Help:      "Total number of resource loads served from memory",
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "headless",
			Subsystem: "resource",
			Name:      "misses_total",
			Help:      "Total number of resource loads that read storage",
		}),
		errors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "headless",
			Subsystem: "resource",
			Name:      "errors_total",
			Help:      "Total number of failed resource reads",
		}),
		bytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "headless",
			Subsystem: "resource",
			Name:      "cached_bytes",
			Help:      "Total size of cached resources",
		}),
	}

	for _, c := range []prometheus.Collector{m.hits, m.misses, m.errors, m.bytes} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *cacheMetrics) recordHit() {
	if m != nil {
		m.hits.Inc()
	}
}

func (m *cacheMetrics) recordMiss(size int) {
	if m != nil {
		m.misses.Inc()
		m.bytes.Add(float64(size))
	}
}

func (m *cacheMetrics) recordError() {
	if m != nil {
		m.errors.Inc()
	}
}
