// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpcore

import (
	"fmt"

	"github.com/nimbussdk/httpcore/clockskew"
	"github.com/nimbussdk/httpcore/config"
	"github.com/nimbussdk/httpcore/internal/obslog"
	"github.com/nimbussdk/httpcore/metrics"
	"github.com/nimbussdk/httpcore/ratelimit"
	"github.com/nimbussdk/httpcore/retry"
	"github.com/nimbussdk/httpcore/timeout"
	"github.com/nimbussdk/httpcore/transport"
)

// DefaultUserAgent is the User-Agent token appended by the execution
// loop when a Client's configured UserAgent differs from it.
const DefaultUserAgent = "httpcore/1.0"

// A Client holds the policies shared across many calls to Execute: the
// transport, retry and timeout policies, rate limiter, metrics sink,
// logger, and static configuration. A Client holds no per-call mutable
// state and is safe for concurrent use by multiple goroutines, provided
// its Transport is.
//
// The zero value is not ready to use; construct a Client with New.
// Per the scoped-ownership design this core carries instead of a
// finalizer-driven shutdown, a Client acquired from New should be
// released with Close once it is no longer needed.
type Client struct {
	Transport     transport.Transport
	RetryPolicy   retry.Policy
	TimeoutPolicy timeout.Policy
	Limiter       ratelimit.Limiter
	Metrics       metrics.Sink
	Logger        obslog.Logger
	Config        config.ClientConfig
	ClockOffset   *clockskew.Offset

	closed bool
}

// New constructs a ready-to-use Client from cfg: the transport is
// built by transport.NewStdFromConfig, honoring cfg's ProxyURL and
// ConnectTimeout; TimeoutPolicy is timeout.Fixed(cfg.RequestTimeout)
// when RequestTimeout is set, else timeout.DefaultPolicy; Limiter is
// a ratelimit.TokenBucket sized from cfg.RateLimit when enabled, else
// ratelimit.Unlimited. RetryPolicy, Metrics, and Logger use their
// package defaults (retry.DefaultPolicy, metrics.Noop, obslog.Noop),
// and ClockOffset defaults to clockskew.Default. New only fails if
// cfg.ProxyURL cannot be parsed as a URL.
func New(cfg config.ClientConfig) (*Client, error) {
	std, err := transport.NewStdFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("httpcore: build transport from config: %w", err)
	}

	timeoutPolicy := timeout.DefaultPolicy
	if cfg.RequestTimeout > 0 {
		timeoutPolicy = timeout.Fixed(cfg.RequestTimeout)
	}

	limiter := ratelimit.Unlimited
	if cfg.RateLimit.Enabled {
		limiter = ratelimit.NewTokenBucket(cfg.RateLimit.AttemptsPerSecond, cfg.RateLimit.Burst)
	}

	return &Client{
		Transport:     std,
		RetryPolicy:   retry.DefaultPolicy,
		TimeoutPolicy: timeoutPolicy,
		Limiter:       limiter,
		Metrics:       metrics.Noop,
		Logger:        obslog.Noop,
		Config:        cfg,
		ClockOffset:   clockskew.Default,
	}, nil
}

// Close releases the Client's transport, if it supports closing idle
// connections, and marks the Client as no longer usable. Calling
// Execute on a closed Client returns a ClientError.
//
// Close is idempotent; closing an already-closed Client is a no-op.
func (c *Client) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	if ic, ok := c.Transport.(transport.IdleCloser); ok {
		ic.CloseIdleConnections()
	}
	return nil
}

func (c *Client) clockOffset() *clockskew.Offset {
	if c.ClockOffset != nil {
		return c.ClockOffset
	}
	return clockskew.Default
}

func (c *Client) metricsSink() metrics.Sink {
	if c.Metrics != nil {
		return c.Metrics
	}
	return metrics.Noop
}

func (c *Client) logger() obslog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return obslog.Noop
}

func (c *Client) limiter() ratelimit.Limiter {
	if c.Limiter != nil {
		return c.Limiter
	}
	return ratelimit.Unlimited
}

func (c *Client) retryPolicy() retry.Policy {
	if c.RetryPolicy != nil {
		return c.RetryPolicy
	}
	return retry.DefaultPolicy
}

func (c *Client) timeoutPolicy() timeout.Policy {
	if c.TimeoutPolicy != nil {
		return c.TimeoutPolicy
	}
	return timeout.DefaultPolicy
}
