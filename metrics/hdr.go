// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package metrics

import (
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// HdrLatencySink is a Sink that records every duration field into its
// own HdrHistogram, in microseconds, for callers that want precise
// latency percentiles (p50/p99/p999) rather than Prometheus's
// pre-bucketed histograms. Numeric and string fields are ignored.
type HdrLatencySink struct {
	mu     sync.Mutex
	byKind map[Field]*hdrhistogram.Histogram

	lowest, highest int64
	sigFigs         int
}

// NewHdrLatencySink returns an HdrLatencySink recording durations
// between lowest and highest (both truncated to whole microseconds)
// with sigFigs significant figures of precision. A reasonable default
// for an HTTP execution loop is
// NewHdrLatencySink(time.Microsecond, time.Minute, 3).
func NewHdrLatencySink(lowest, highest time.Duration, sigFigs int) *HdrLatencySink {
	return &HdrLatencySink{
		byKind:  make(map[Field]*hdrhistogram.Histogram),
		lowest:  lowest.Microseconds(),
		highest: highest.Microseconds(),
		sigFigs: sigFigs,
	}
}

func (s *HdrLatencySink) Observe(Field, float64) {}

func (s *HdrLatencySink) ObserveDuration(field Field, d time.Duration) {
	us := d.Microseconds()
	if us < s.lowest {
		us = s.lowest
	}
	if us > s.highest {
		us = s.highest
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.byKind[field]
	if !ok {
		h = hdrhistogram.New(s.lowest, s.highest, s.sigFigs)
		s.byKind[field] = h
	}
	// RecordValue only fails when the value is out of [lowest,highest],
	// which the clamp above already prevents.
	_ = h.RecordValue(us)
}

func (s *HdrLatencySink) Annotate(Field, string) {}

// Quantile returns the given quantile (0-100) of field's recorded
// durations, or zero if no samples have been recorded for field.
func (s *HdrLatencySink) Quantile(field Field, q float64) time.Duration {
	s.mu.Lock()
	h, ok := s.byKind[field]
	s.mu.Unlock()
	if !ok {
		return 0
	}
	return time.Duration(h.ValueAtQuantile(q)) * time.Microsecond
}
