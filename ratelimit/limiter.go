// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package ratelimit

import (
	"context"

	"golang.org/x/time/rate"
)

// A Limiter paces attempts made by the execution loop. Wait blocks
// until an attempt may proceed, or returns ctx.Err() if ctx is
// cancelled first.
type Limiter interface {
	Wait(ctx context.Context) error
}

// Unlimited never blocks.
var Unlimited Limiter = unlimited{}

type unlimited struct{}

func (unlimited) Wait(ctx context.Context) error { return ctx.Err() }

// TokenBucket is a Limiter backed by golang.org/x/time/rate: it allows
// a steady rate of attempts per second, with a burst allowance.
type TokenBucket struct {
	limiter *rate.Limiter
}

// NewTokenBucket returns a TokenBucket allowing attemptsPerSecond
// attempts per second on average, with up to burst attempts admitted
// immediately.
func NewTokenBucket(attemptsPerSecond float64, burst int) *TokenBucket {
	return &TokenBucket{limiter: rate.NewLimiter(rate.Limit(attemptsPerSecond), burst)}
}

// Wait implements Limiter.
func (t *TokenBucket) Wait(ctx context.Context) error {
	return t.limiter.Wait(ctx)
}

// SetRate adjusts the steady-state rate, for callers that want to react
// to observed throttling by slowing down.
func (t *TokenBucket) SetRate(attemptsPerSecond float64) {
	t.limiter.SetLimit(rate.Limit(attemptsPerSecond))
}
