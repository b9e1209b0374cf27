// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package clockskew

import (
	"sync/atomic"
	"time"
)

// An Offset is a signed number of seconds added to the device's wall
// clock when computing "now" for signing purposes. Reads and writes
// are atomic; there is no ordering guarantee between concurrent
// writers, so the last writer wins. It is initialized to zero and is
// never reset, only ever overwritten by a fresh clock-skew
// correction.
type Offset struct {
	seconds int64
}

// Default is the process-wide clock-skew offset, analogous to the
// original source's global time offset. New callers should prefer
// constructing their own Offset and threading it through explicitly,
// but Default exists for call sites that want the original observable
// semantics of a single, ambient, shared offset.
var Default = &Offset{}

// Get returns the current offset, in seconds.
func (o *Offset) Get() int64 {
	return atomic.LoadInt64(&o.seconds)
}

// Set overwrites the current offset, in seconds.
func (o *Offset) Set(seconds int64) {
	atomic.StoreInt64(&o.seconds, seconds)
}

// A Clock produces the current time, adjusted by a clock-skew offset.
// Signers should consult a Clock rather than calling time.Now()
// directly, so that clock-skew correction is observed.
type Clock interface {
	Now() time.Time
}

// NewClock returns a Clock backed by offset. A nil offset is treated
// as an always-zero offset.
func NewClock(offset *Offset) Clock {
	return clock{offset: offset}
}

type clock struct {
	offset *Offset
}

func (c clock) Now() time.Time {
	var secs int64
	if c.offset != nil {
		secs = c.offset.Get()
	}
	return time.Now().Add(time.Duration(secs) * time.Second)
}
