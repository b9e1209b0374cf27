// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"time"

	"github.com/nimbussdk/httpcore/request"
)

// A Policy controls if and how retries are done during an execution.
// After every failed attempt, the execution loop asks the Policy
// whether a retry should be done (ShouldRetry) and, if so, how long to
// wait before retrying (Delay).
//
// Implementations of Policy must be safe for concurrent use by
// multiple goroutines.
type Policy interface {
	// MaxRetries is the policy's own retry ceiling.
	MaxRetries() int
	// HonorsClientConfigMaxRetries reports whether a client's
	// non-negative configured max-error-retry override takes
	// precedence over MaxRetries. See EffectiveMaxRetries.
	HonorsClientConfigMaxRetries() bool
	// ShouldRetry decides whether a retry should be attempted, given
	// the error from the most recent failed attempt and the number of
	// retries already performed.
	ShouldRetry(original *request.OriginalRequest, err error, retries int) bool
	// Delay returns how long to wait before the next retry attempt.
	Delay(original *request.OriginalRequest, prevErr error, retries int) time.Duration
}

// DefaultPolicy is a general-purpose retry policy. It composes
// DefaultDecider and DefaultWaiter, uses DefaultTimes as its own
// ceiling, and honors a client's configured max-error-retry override.
var DefaultPolicy Policy = policy{
	decider:      DefaultDecider,
	waiter:       DefaultWaiter,
	maxRetries:   DefaultTimes,
	honorsConfig: true,
}

// Never is a policy that never retries.
var Never Policy = policy{
	decider:      Times(0),
	waiter:       DefaultWaiter,
	maxRetries:   0,
	honorsConfig: true,
}

type policy struct {
	decider      Decider
	waiter       Waiter
	maxRetries   int
	honorsConfig bool
}

// NewPolicy composes a Decider and a Waiter, plus the policy's own
// retry ceiling and its config-honoring flag, into a retry Policy.
func NewPolicy(d Decider, w Waiter, maxRetries int, honorsClientConfigMaxRetries bool) Policy {
	return policy{decider: d, waiter: w, maxRetries: maxRetries, honorsConfig: honorsClientConfigMaxRetries}
}

func (p policy) MaxRetries() int                     { return p.maxRetries }
func (p policy) HonorsClientConfigMaxRetries() bool  { return p.honorsConfig }

func (p policy) ShouldRetry(original *request.OriginalRequest, err error, retries int) bool {
	return p.decider.Decide(original, err, retries)
}

func (p policy) Delay(original *request.OriginalRequest, prevErr error, retries int) time.Duration {
	return p.waiter.Wait(original, prevErr, retries)
}

// EffectiveMaxRetries reconciles a client's configured max-error-retry
// override (cfgMax; negative means unset) against a policy's own
// ceiling, per the precedence rule: if cfgMax is negative, or the
// policy does not honor the client config override, the policy's own
// MaxRetries is used; otherwise cfgMax is used.
func EffectiveMaxRetries(p Policy, cfgMax int) int {
	if cfgMax < 0 || !p.HonorsClientConfigMaxRetries() {
		return p.MaxRetries()
	}
	return cfgMax
}
