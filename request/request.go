// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"net/http"
	"net/url"
)

// An OriginalRequest is the immutable, user-level request a Request was
// built from. It is opaque to the execution core except for the
// client-option markers it carries, such as a caller-supplied
// user-agent addition.
//
// OriginalRequest is caller-owned and lives at least until execution
// returns.
type OriginalRequest struct {
	// UserAgentMarker, if non-empty, is appended to the outgoing
	// User-Agent header by the execution loop's user-agent policy.
	UserAgentMarker string
	// Data is arbitrary caller data. The execution core never
	// inspects it.
	Data interface{}
}

// A Request is a mutable outgoing call under construction. It is
// created by the caller, mutated by the signer, by interceptors, and
// by the retry-reset step, and discarded once execution returns.
type Request struct {
	// Endpoint is the service endpoint used to resolve a Signer. It
	// does not change across retries of the same call, even if a 307
	// redirect changes the URI actually used by the transport.
	Endpoint *url.URL
	// ServiceName identifies the service being called, for use in
	// synthesized ServiceErrors and metrics.
	ServiceName string
	// Method is the HTTP method.
	Method string
	// Parameters is the ordered set of request parameters.
	Parameters *Params
	// Headers are the request header fields.
	Headers http.Header
	// Body is the optional request payload. A nil Body means no
	// request body is sent.
	Body Body
	// Original references the immutable user-level request this
	// Request was built from.
	Original *OriginalRequest
}

// New constructs a Request with empty Parameters and Headers.
func New(method string, endpoint *url.URL, serviceName string, original *OriginalRequest) *Request {
	if original == nil {
		original = &OriginalRequest{}
	}
	return &Request{
		Endpoint:    endpoint,
		ServiceName: serviceName,
		Method:      method,
		Parameters:  NewParams(),
		Headers:     make(http.Header),
		Original:    original,
	}
}

// Snapshot is an immutable copy of a Request's parameters and headers,
// taken once at the start of an execution and used to restore the
// Request before every retry attempt, per the never-mutate-the-original
// invariant.
type Snapshot struct {
	Parameters *Params
	Headers    http.Header
}

// TakeSnapshot captures r's current parameters and headers.
func (r *Request) TakeSnapshot() Snapshot {
	h := make(http.Header, len(r.Headers))
	for k, vs := range r.Headers {
		cp := make([]string, len(vs))
		copy(cp, vs)
		h[k] = cp
	}
	return Snapshot{
		Parameters: r.Parameters.Clone(),
		Headers:    h,
	}
}

// Restore replaces r's parameters and headers with fresh copies of the
// ones captured in s. It is called before every retry attempt so that
// no mutation performed by a signer or interceptor on a prior attempt
// leaks into the next one.
func (r *Request) Restore(s Snapshot) {
	r.Parameters = s.Parameters.Clone()
	h := make(http.Header, len(s.Headers))
	for k, vs := range s.Headers {
		cp := make([]string, len(vs))
		copy(cp, vs)
		h[k] = cp
	}
	r.Headers = h
}

// An HTTPRequest is a transport-ready snapshot of a Request, built
// fresh for each attempt. Its URL may be overridden after a temporary
// redirect without affecting Request.Endpoint, which remains the
// signing endpoint.
type HTTPRequest struct {
	Method string
	URL    *url.URL
	Header http.Header
	Body   Body
}

// ToHTTPRequest builds the transport-ready HTTPRequest for the current
// attempt. If redirectURL is non-nil, it overrides the URI used for
// transport (the endpoint used for signing is unaffected).
func (r *Request) ToHTTPRequest(redirectURL *url.URL) *HTTPRequest {
	u := r.Endpoint
	if redirectURL != nil {
		u = redirectURL
	} else if r.Parameters.Len() > 0 {
		u2 := *r.Endpoint
		q := u2.Query()
		for _, k := range r.Parameters.Keys() {
			v, _ := r.Parameters.Get(k)
			q.Set(k, v)
		}
		u2.RawQuery = q.Encode()
		u = &u2
	}
	h := make(http.Header, len(r.Headers))
	for k, vs := range r.Headers {
		cp := make([]string, len(vs))
		copy(cp, vs)
		h[k] = cp
	}
	return &HTTPRequest{
		Method: r.Method,
		URL:    u,
		Header: h,
		Body:   r.Body,
	}
}
