// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package interceptor

import (
	"github.com/nimbussdk/httpcore/request"
	"github.com/nimbussdk/httpcore/transport"
)

// An Interceptor observes an execution's lifecycle. Hooks run in the
// order the Interceptors were added to a Chain. A hook that returns an
// error aborts the execution: the error propagates out of Execute as
// an unexpected failure, recorded in metrics.
type Interceptor interface {
	// BeforeRequest is called once, before the first attempt's signer
	// runs.
	BeforeRequest(r *request.Request) error
	// AfterResponse is called at most once, after a successful
	// execution, with the final HTTP response.
	AfterResponse(r *request.Request, resp *transport.HTTPResponse) error
	// AfterError is called at most once, after a failed execution,
	// with the terminal error and, if one was received, the response
	// that produced it.
	AfterError(r *request.Request, resp *transport.HTTPResponse, err error) error
}

// CredentialAware is a capability an Interceptor may additionally
// implement to receive the execution's credentials before
// BeforeRequest runs. Per the redesign notes this is expressed as a
// capability question, not a runtime type switch on interceptor kinds.
type CredentialAware interface {
	// WantsCredentials reports whether SetCredentials should be called.
	WantsCredentials() bool
	// SetCredentials is called once per execution, before BeforeRequest,
	// only if WantsCredentials returns true.
	SetCredentials(credentials interface{})
}
