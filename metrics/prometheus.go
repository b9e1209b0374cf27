// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusSink is a Sink backed by Prometheus client_golang vectors,
// labelled by Field and, for Annotate, by the annotated string value.
//
// Duration fields are recorded as seconds in a histogram; numeric
// fields are recorded in a summary; string annotations increment a
// counter labelled by the annotated value, which is appropriate for
// low-cardinality values like error codes and status codes but not for
// high-cardinality ones like request IDs — callers recording request
// IDs should prefer a logging sink instead.
type PrometheusSink struct {
	durations *prometheus.HistogramVec
	values    *prometheus.SummaryVec
	labels    *prometheus.CounterVec
}

// NewPrometheusSink registers and returns a PrometheusSink under the
// given namespace. Registering the same namespace twice against the
// same registerer panics, per promauto's contract.
func NewPrometheusSink(namespace string) *PrometheusSink {
	return &PrometheusSink{
		durations: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "stage_duration_seconds",
				Help:      "Wall time spent in each execution stage.",
				Buckets:   prometheus.ExponentialBuckets(0.001, 2, 16),
			},
			[]string{"field"},
		),
		values: promauto.NewSummaryVec(
			prometheus.SummaryOpts{
				Namespace: namespace,
				Name:      "stage_value",
				Help:      "Numeric samples recorded by the execution loop, by field.",
			},
			[]string{"field"},
		),
		labels: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "stage_annotations_total",
				Help:      "Count of string annotations recorded by the execution loop, by field and value.",
			},
			[]string{"field", "value"},
		),
	}
}

func (s *PrometheusSink) Observe(field Field, value float64) {
	s.values.WithLabelValues(string(field)).Observe(value)
}

func (s *PrometheusSink) ObserveDuration(field Field, d time.Duration) {
	s.durations.WithLabelValues(string(field)).Observe(d.Seconds())
}

func (s *PrometheusSink) Annotate(field Field, value string) {
	s.labels.WithLabelValues(string(field), value).Inc()
}
