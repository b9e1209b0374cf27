// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"errors"

	"github.com/nimbussdk/httpcore/request"
	"github.com/nimbussdk/httpcore/transient"
)

// A Decider decides if a retry should be done, given the error from
// the most recent failed attempt and the number of retries already
// performed (zero-based).
//
// Implementations of Decider must be safe for concurrent use by
// multiple goroutines.
type Decider interface {
	Decide(original *request.OriginalRequest, err error, retries int) bool
}

// The DeciderFunc type is an adapter to allow the use of ordinary
// functions as retry deciders. It implements the Decider interface,
// and also provides the logical composition methods And and Or.
type DeciderFunc func(original *request.OriginalRequest, err error, retries int) bool

// Decide calls f.
func (f DeciderFunc) Decide(original *request.OriginalRequest, err error, retries int) bool {
	return f(original, err, retries)
}

// And composes two deciders into a new decider which returns true only
// if both sub-deciders return true. Short-circuits: g is not evaluated
// if f returns false.
func (f DeciderFunc) And(g Decider) DeciderFunc {
	return func(original *request.OriginalRequest, err error, retries int) bool {
		return f(original, err, retries) && g.Decide(original, err, retries)
	}
}

// Or composes two deciders into a new decider which returns true if
// either sub-decider returns true. Short-circuits: g is not evaluated
// if f returns true.
func (f DeciderFunc) Or(g Decider) DeciderFunc {
	return func(original *request.OriginalRequest, err error, retries int) bool {
		return f(original, err, retries) || g.Decide(original, err, retries)
	}
}

// DefaultTimes is the number of retries DefaultDecider allows on its
// own, independent of whatever ceiling the execution loop's effective
// max retries rule imposes.
const DefaultTimes = 5

// DefaultDecider is a general-purpose retry decider. It allows up to
// DefaultTimes retries and retries if the error is transient
// (transient.Categorize), is clock-skew class, or carries one of the
// status codes 429, 502, 503, or 504.
var DefaultDecider = Times(DefaultTimes).And(
	StatusCode(429, 502, 503, 504).Or(TransientErr).Or(ClockSkewErr),
)

// TransientErr is a decider that retries if the error is transient
// according to transient.Categorize. It ignores the original request
// and retries parameters.
var TransientErr DeciderFunc = func(_ *request.OriginalRequest, err error, _ int) bool {
	return transient.Categorize(err) != transient.Not
}

// ClockSkewErr is a decider that retries if the error is flagged as a
// clock-skew class error (see the hasClockSkew capability interface).
// A clock-skew error is usually worth retrying once the offset has
// been recomputed and applied to the next attempt's signature.
var ClockSkewErr DeciderFunc = func(_ *request.OriginalRequest, err error, _ int) bool {
	var cs hasClockSkew
	return errors.As(err, &cs) && cs.ClockSkew()
}

// Times constructs a decider which allows up to n retries, i.e. it
// returns true while retries < n.
func Times(n int) DeciderFunc {
	return func(_ *request.OriginalRequest, _ error, retries int) bool {
		return retries < n
	}
}

// StatusCode constructs a decider which retries if the error carries
// one of the given HTTP status codes, via the hasStatusCode capability
// interface. Errors which do not expose a status code (for example a
// local I/O failure) never match.
func StatusCode(codes ...int) DeciderFunc {
	cs := make([]int, len(codes))
	copy(cs, codes)
	return func(_ *request.OriginalRequest, err error, _ int) bool {
		var sc hasStatusCode
		if !errors.As(err, &sc) {
			return false
		}
		status := sc.HTTPStatusCode()
		for _, c := range cs {
			if status == c {
				return true
			}
		}
		return false
	}
}

type hasStatusCode interface {
	HTTPStatusCode() int
}

type hasClockSkew interface {
	ClockSkew() bool
}
