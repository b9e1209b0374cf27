// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"math/rand"
	"sync"
	"time"

	"github.com/nimbussdk/httpcore/request"
)

// A Waiter specifies how long to wait before retrying a failed HTTP
// request attempt.
//
// Implementations of Waiter must be safe for concurrent use by
// multiple goroutines. The execution loop does not call Wait if the
// Decider returned false.
type Waiter interface {
	Wait(original *request.OriginalRequest, prevErr error, retries int) time.Duration
}

// DefaultWaiter is the default retry wait policy. It uses a jittered
// exponential backoff formula with a base wait of 50 milliseconds and
// a maximum wait of 1 second.
var DefaultWaiter = NewExpWaiter(50*time.Millisecond, 1*time.Second, time.Now())

// NewFixedWaiter constructs a Waiter that always returns d.
func NewFixedWaiter(d time.Duration) Waiter {
	return fixedWaiter(d)
}

type fixedWaiter time.Duration

func (w fixedWaiter) Wait(_ *request.OriginalRequest, _ error, _ int) time.Duration {
	return time.Duration(w)
}

// NewExpWaiter constructs a Waiter implementing an exponential backoff
// formula with optional jitter, using the "Full Jitter" approach
// described in:
// https://aws.amazon.com/blogs/architecture/exponential-backoff-and-jitter.
//
// Parameters base and max control the exponential calculation of the
// ceiling:
//
//	ceil := min(base * 2**retries, max)
//
// Base and max must be positive, and max must be at least base.
//
// Parameter jitter is used to generate a random number between 0 and
// ceil. Pass nil for jitter to disable jitter and simply return ceil
// on every call. Otherwise pass a seed (time.Time, int, or int64) or a
// rand.Source.
func NewExpWaiter(base, max time.Duration, jitter interface{}) Waiter {
	if base < 1 {
		panic("httpcore/retry: base must be positive")
	}
	if max < base {
		panic("httpcore/retry: max must be at least base")
	}
	return &jitterExpWaiter{
		base: base,
		max:  max,
		rand: jitterToRand(jitter),
	}
}

type jitterExpWaiter struct {
	base time.Duration
	max  time.Duration
	rand *rand.Rand
	lock sync.Mutex
}

func (w *jitterExpWaiter) Wait(_ *request.OriginalRequest, _ error, retries int) time.Duration {
	exp := int64(1) << retries
	if exp < 1 {
		exp = 1<<63 - 1
	}

	ceil := int64(w.base) * exp
	if ceil < int64(w.base) || int64(w.max) < ceil {
		ceil = int64(w.max)
	}

	duration := ceil
	if ceil > 0 && w.rand != nil {
		w.lock.Lock()
		duration = w.rand.Int63n(ceil)
		w.lock.Unlock()
	}

	return time.Duration(duration)
}

func jitterToRand(jitter interface{}) *rand.Rand {
	var s rand.Source
	switch j := jitter.(type) {
	case nil:
		return nil
	case time.Time:
		s = rand.NewSource(j.UnixNano())
	case int:
		s = rand.NewSource(int64(j))
	case int64:
		s = rand.NewSource(j)
	case *rand.Rand:
		if j == nil {
			panic("httpcore/retry: jitter may not be a typed nil")
		}
		return j
	case rand.Source:
		s = j
	default:
		panic("httpcore/retry: invalid jitter type")
	}
	return rand.New(s)
}
