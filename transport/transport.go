// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"context"
	"io"
	"net"
	"net/http"

	"github.com/nimbussdk/httpcore/config"
	"github.com/nimbussdk/httpcore/request"
)

// An HTTPResponse is the transport result for a single attempt: a
// status code and text, response headers, and the response content
// stream. The core owns the content stream until it is handed off to
// a response/error handler or closed.
type HTTPResponse struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       io.ReadCloser
}

// A Transport sends a single prepared HTTP request and returns the
// response, or an I/O error. A Transport must not retry internally;
// retry policy is entirely the execution loop's responsibility.
//
// Implementations must be safe for concurrent use by multiple
// goroutines if the Client that owns them is used concurrently.
type Transport interface {
	Execute(ctx context.Context, r *request.HTTPRequest) (*HTTPResponse, error)
}

// IdleCloser is the interface that wraps the basic CloseIdleConnections
// method. A Transport whose underlying implementation supports it can
// release pooled connections without waiting for them to expire.
type IdleCloser interface {
	CloseIdleConnections()
}

// Std adapts the standard library's http.Client to the Transport
// interface. Its zero value uses http.DefaultClient.
type Std struct {
	// Client is the underlying HTTP client. If nil, http.DefaultClient
	// is used.
	Client *http.Client
}

// NewStd constructs a Std transport around client. If client is nil,
// http.DefaultClient is used.
func NewStd(client *http.Client) *Std {
	return &Std{Client: client}
}

// NewStdFromConfig builds a Std transport whose underlying http.Client
// honors cfg's ProxyURL and ConnectTimeout: the returned
// *http.Transport dials through cfg.Proxy() (falling back to
// http.ProxyFromEnvironment when ProxyURL is unset, matching the
// stock http.Transport default) and bounds the dial itself by
// cfg.ConnectTimeout. RequestTimeout is not applied here: the
// execution loop bounds each attempt's context per its configured
// timeout.Policy instead, so the transport is not the place to also
// enforce a client-wide http.Client.Timeout.
func NewStdFromConfig(cfg config.ClientConfig) (*Std, error) {
	proxyURL, err := cfg.Proxy()
	if err != nil {
		return nil, err
	}
	proxyFunc := http.ProxyFromEnvironment
	if proxyURL != nil {
		proxyFunc = http.ProxyURL(proxyURL)
	}
	dialer := &net.Dialer{Timeout: cfg.ConnectTimeout}
	t := &http.Transport{
		Proxy:       proxyFunc,
		DialContext: dialer.DialContext,
	}
	return &Std{Client: &http.Client{Transport: t}}, nil
}

func (s *Std) client() *http.Client {
	if s.Client == nil {
		return http.DefaultClient
	}
	return s.Client
}

// Execute implements Transport by converting r into a standard library
// *http.Request and delegating to the underlying http.Client.
func (s *Std) Execute(ctx context.Context, r *request.HTTPRequest) (*HTTPResponse, error) {
	var body io.Reader
	var bodyCloser io.ReadCloser
	if r.Body != nil {
		body = r.Body
		if rc, ok := r.Body.(io.ReadCloser); ok {
			bodyCloser = rc
		}
	}
	req, err := http.NewRequestWithContext(ctx, r.Method, r.URL.String(), body)
	if err != nil {
		return nil, err
	}
	req.Header = r.Header
	if bodyCloser != nil {
		req.Body = bodyCloser
	}
	resp, err := s.client().Do(req)
	if err != nil {
		return nil, err
	}
	return &HTTPResponse{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Header:     resp.Header,
		Body:       resp.Body,
	}, nil
}

// CloseIdleConnections forwards to the underlying client's Transport,
// if it supports it.
func (s *Std) CloseIdleConnections() {
	s.client().CloseIdleConnections()
}
