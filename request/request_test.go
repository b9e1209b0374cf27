// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultsOriginal(t *testing.T) {
	u, _ := url.Parse("https://example.com/api")
	r := New("GET", u, "widgets", nil)

	assert.NotNil(t, r.Original)
	assert.Equal(t, "widgets", r.ServiceName)
	assert.Equal(t, 0, r.Parameters.Len())
	assert.Empty(t, r.Headers)
}

func TestSnapshotAndRestore_IsolatesMutation(t *testing.T) {
	u, _ := url.Parse("https://example.com/api")
	r := New("GET", u, "widgets", nil)
	r.Headers.Set("X-Original", "v1")
	r.Parameters.Set("page", "1")

	snap := r.TakeSnapshot()

	r.Headers.Set("X-Signer-Added", "yes")
	r.Parameters.Set("page", "2")
	r.Parameters.Set("extra", "added-by-signer")

	r.Restore(snap)

	assert.Equal(t, "v1", r.Headers.Get("X-Original"))
	assert.Empty(t, r.Headers.Get("X-Signer-Added"))
	v, _ := r.Parameters.Get("page")
	assert.Equal(t, "1", v)
	_, ok := r.Parameters.Get("extra")
	assert.False(t, ok)
}

func TestSnapshot_SharesNoMutableStateWithSource(t *testing.T) {
	u, _ := url.Parse("https://example.com/api")
	r := New("GET", u, "widgets", nil)
	r.Headers.Set("X", "orig")

	snap := r.TakeSnapshot()
	r.Headers.Set("X", "mutated")

	assert.Equal(t, "orig", snap.Headers.Get("X"))
}

func TestToHTTPRequest_AppliesParametersAsQuery(t *testing.T) {
	u, _ := url.Parse("https://example.com/api")
	r := New("GET", u, "widgets", nil)
	r.Parameters.Set("q", "go")

	hr := r.ToHTTPRequest(nil)
	require.NotNil(t, hr)
	assert.Equal(t, "q=go", hr.URL.RawQuery)
	assert.Equal(t, "/api", hr.URL.Path)
}

func TestToHTTPRequest_RedirectOverridesURIButNotEndpoint(t *testing.T) {
	u, _ := url.Parse("https://example.com/a")
	r := New("GET", u, "widgets", nil)

	redirect, _ := url.Parse("https://example.com/b")
	hr := r.ToHTTPRequest(redirect)

	assert.Equal(t, "/b", hr.URL.Path)
	assert.Equal(t, "/a", r.Endpoint.Path)
}
