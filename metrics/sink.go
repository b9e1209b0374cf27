// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package metrics

import "time"

// A Sink receives the values the execution loop records at each stage
// of an attempt. Implementations must be safe for concurrent use: a
// Sink may be shared across concurrent executions of the same Client.
type Sink interface {
	// Observe records a single numeric sample for field (a duration, a
	// count, or a status code, depending on field).
	Observe(field Field, value float64)
	// ObserveDuration records a single timing sample for field.
	ObserveDuration(field Field, d time.Duration)
	// Annotate records a single string sample for field (a service
	// name, an error code, a request ID, and so on).
	Annotate(field Field, value string)
}

// Noop is a Sink that discards everything. It is the default when a
// Client is built without an explicit metrics sink.
var Noop Sink = noopSink{}

type noopSink struct{}

func (noopSink) Observe(Field, float64)            {}
func (noopSink) ObserveDuration(Field, time.Duration) {}
func (noopSink) Annotate(Field, string)            {}

// Multi fans out every call to all of sinks, in order.
func Multi(sinks ...Sink) Sink {
	return multiSink(sinks)
}

type multiSink []Sink

func (m multiSink) Observe(field Field, value float64) {
	for _, s := range m {
		s.Observe(field, value)
	}
}

func (m multiSink) ObserveDuration(field Field, d time.Duration) {
	for _, s := range m {
		s.ObserveDuration(field, d)
	}
}

func (m multiSink) Annotate(field Field, value string) {
	for _, s := range m {
		s.Annotate(field, value)
	}
}
