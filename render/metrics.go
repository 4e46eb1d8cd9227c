// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/prometheus/client_golang/prometheus"
)

// renderMetrics holds Prometheus metrics for render passes.
type renderMetrics struct {
	passes     *prometheus.CounterVec
	duration   prometheus.Histogram
	culled     prometheus.Counter
	primitives prometheus.Counter
}

// newRenderMetrics creates and registers render metrics with reg.
func newRenderMetrics(reg prometheus.Registerer) (*renderMetrics, error) {
	m := &renderMetrics{
		passes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "headless",
			Subsystem: "render",
			Name:      "passes_total",
			Help:      "Total number of render passes by result",
		}, []string{"result"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "headless",
			Subsystem: "render",
			Name:      "pass_duration_seconds",
			Help:      "Wall time of completed render passes",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
		}),
		culled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "headless",
			Subsystem: "render",
			Name:      "culled_strokes_total",
			Help:      "Total number of strokes removed as fully occluded",
		}),
		primitives: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "headless",
			Subsystem: "render",
			Name:      "primitives_total",
			Help:      "Total number of primitives rasterized",
		}),
	}

	for _, c := range []prometheus.Collector{m.passes, m.duration, m.culled, m.primitives} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *renderMetrics) recordPass(stats RenderStats) {
	if m == nil {
		return
	}
	m.passes.WithLabelValues("ok").Inc()
	m.duration.Observe(stats.Duration.Seconds())
	m.culled.Add(float64(stats.Culled))
	m.primitives.Add(float64(stats.Primitives))
}

func (m *renderMetrics) recordFailure() {
	if m == nil {
		return
	}
	m.passes.WithLabelValues("error").Inc()
}
