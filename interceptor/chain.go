// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package interceptor

import (
	"github.com/nimbussdk/httpcore/request"
	"github.com/nimbussdk/httpcore/transport"
)

// A Chain is an ordered list of Interceptors, run in list order.
//
// A Chain is not safe for concurrent mutation while an execution is in
// flight, but the same Chain may be shared read-only across concurrent
// executions once built.
type Chain struct {
	interceptors []Interceptor
}

// NewChain builds a Chain running interceptors in the given order.
func NewChain(interceptors ...Interceptor) *Chain {
	return &Chain{interceptors: interceptors}
}

// InjectCredentials calls SetCredentials on every Interceptor in the
// chain that implements CredentialAware and wants credentials. It must
// be called before BeforeRequest, per the execution loop's contract.
func (c *Chain) InjectCredentials(credentials interface{}) {
	for _, i := range c.interceptors {
		if ca, ok := i.(CredentialAware); ok && ca.WantsCredentials() {
			ca.SetCredentials(credentials)
		}
	}
}

// BeforeRequest invokes BeforeRequest on every Interceptor in order,
// stopping and returning the first error encountered.
func (c *Chain) BeforeRequest(r *request.Request) error {
	for _, i := range c.interceptors {
		if err := i.BeforeRequest(r); err != nil {
			return err
		}
	}
	return nil
}

// AfterResponse invokes AfterResponse on every Interceptor in order,
// stopping and returning the first error encountered.
func (c *Chain) AfterResponse(r *request.Request, resp *transport.HTTPResponse) error {
	for _, i := range c.interceptors {
		if err := i.AfterResponse(r, resp); err != nil {
			return err
		}
	}
	return nil
}

// AfterError invokes AfterError on every Interceptor in order, stopping
// and returning the first error encountered.
func (c *Chain) AfterError(r *request.Request, resp *transport.HTTPResponse, execErr error) error {
	for _, i := range c.interceptors {
		if err := i.AfterError(r, resp, execErr); err != nil {
			return err
		}
	}
	return nil
}
