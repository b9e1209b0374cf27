// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package interceptor

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nimbussdk/httpcore/request"
	"github.com/nimbussdk/httpcore/transport"
)

type recordingInterceptor struct {
	name    string
	trace   *[]string
	wants   bool
	creds   interface{}
	failOn  string
}

func (r *recordingInterceptor) WantsCredentials() bool { return r.wants }
func (r *recordingInterceptor) SetCredentials(c interface{}) {
	r.creds = c
	*r.trace = append(*r.trace, r.name+":creds")
}

func (r *recordingInterceptor) BeforeRequest(_ *request.Request) error {
	*r.trace = append(*r.trace, r.name+":before")
	if r.failOn == "before" {
		return errors.New("boom")
	}
	return nil
}

func (r *recordingInterceptor) AfterResponse(_ *request.Request, _ *transport.HTTPResponse) error {
	*r.trace = append(*r.trace, r.name+":after")
	return nil
}

func (r *recordingInterceptor) AfterError(_ *request.Request, _ *transport.HTTPResponse, _ error) error {
	*r.trace = append(*r.trace, r.name+":err")
	return nil
}

func TestChain_RunsInOrder(t *testing.T) {
	var trace []string
	a := &recordingInterceptor{name: "a", trace: &trace}
	b := &recordingInterceptor{name: "b", trace: &trace, wants: true}

	c := NewChain(a, b)
	c.InjectCredentials("secret")

	u, _ := url.Parse("https://example.com")
	r := request.New(http.MethodGet, u, "svc", nil)
	require.NoError(t, c.BeforeRequest(r))
	require.NoError(t, c.AfterResponse(r, &transport.HTTPResponse{StatusCode: 200}))

	assert.Equal(t, []string{"b:creds", "a:before", "b:before", "a:after", "b:after"}, trace)
	assert.Equal(t, "secret", b.creds)
	assert.Nil(t, a.creds)
}

func TestChain_BeforeRequestStopsOnError(t *testing.T) {
	var trace []string
	a := &recordingInterceptor{name: "a", trace: &trace, failOn: "before"}
	b := &recordingInterceptor{name: "b", trace: &trace}

	c := NewChain(a, b)
	u, _ := url.Parse("https://example.com")
	r := request.New(http.MethodGet, u, "svc", nil)

	err := c.BeforeRequest(r)
	assert.Error(t, err)
	assert.Equal(t, []string{"a:before"}, trace)
}

func TestChain_AfterError(t *testing.T) {
	var trace []string
	a := &recordingInterceptor{name: "a", trace: &trace}
	c := NewChain(a)

	u, _ := url.Parse("https://example.com")
	r := request.New(http.MethodGet, u, "svc", nil)
	require.NoError(t, c.AfterError(r, nil, errors.New("fail")))
	assert.Equal(t, []string{"a:err"}, trace)
}
