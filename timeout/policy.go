// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package timeout

import (
	"time"

	"github.com/nimbussdk/httpcore/request"
	"github.com/nimbussdk/httpcore/transient"
)

// A Policy directs how to set the per-attempt timeout for the initial
// attempt of an execution, as well as for any subsequent retries.
//
// Implementations of Policy must be safe for concurrent use by
// multiple goroutines.
type Policy interface {
	// Timeout returns the timeout to set on the next attempt.
	//
	// Parameter original identifies the execution. Parameter prevErr
	// is the error from the immediately preceding attempt, or nil on
	// the first attempt. Parameter attemptTimeouts is how many
	// attempts in this execution so far have failed specifically with
	// a timeout, as opposed to some other error.
	Timeout(original *request.OriginalRequest, prevErr error, attemptTimeouts int) time.Duration
}

// DefaultPolicy sets a fixed timeout of 30 seconds on each attempt.
var DefaultPolicy Policy = Fixed(30 * time.Second)

// Infinite never times out.
var Infinite Policy = Fixed(1<<63 - 1)

// Fixed constructs a Policy that uses d as the timeout for every
// attempt, regardless of history.
func Fixed(d time.Duration) Policy {
	return policy([]time.Duration{d})
}

// Adaptive constructs a Policy that varies the next attempt's timeout
// if the previous attempt itself timed out.
//
// Parameter usual is returned for the initial attempt, and for any
// retry whose immediately preceding attempt did not time out.
//
// Parameter after contains the timeouts to use when the preceding
// attempt did time out: after[0] if it was the execution's first
// timeout, after[1] if its second, and so on, clamped to the last
// element of after once attemptTimeouts exceeds its length.
//
// This lets a caller quickly retry a single slow response with the
// usual timeout, while backing off toward a longer timeout if the
// remote service is going through a sustained burst of slowness,
// protecting both caller and service from a retry storm.
func Adaptive(usual time.Duration, after ...time.Duration) Policy {
	p := make([]time.Duration, 1, 1+len(after))
	p[0] = usual
	return policy(append(p, after...))
}

type policy []time.Duration

func (p policy) Timeout(_ *request.OriginalRequest, prevErr error, attemptTimeouts int) time.Duration {
	if !wasTimeout(prevErr) {
		return p[0]
	}

	i := attemptTimeouts
	if i > len(p)-1 {
		i = len(p) - 1
	}
	return p[i]
}

func wasTimeout(err error) bool {
	return transient.Categorize(err) == transient.Timeout
}
