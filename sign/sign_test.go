// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package sign

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nimbussdk/httpcore/clockskew"
	"github.com/nimbussdk/httpcore/request"
)

type fakeSigner struct{}

func (*fakeSigner) Sign(_ *request.Request, _ interface{}, _ clockskew.Clock) error { return nil }

func newFakeSigner() Signer {
	return new(fakeSigner)
}

func TestStatic(t *testing.T) {
	s := newFakeSigner()
	r := Static(s)
	got, ok := r.SignerFor(nil)
	assert.True(t, ok)
	assert.Same(t, s, got)
}

func TestStatic_NilSigner(t *testing.T) {
	r := Static(nil)
	_, ok := r.SignerFor(nil)
	assert.False(t, ok)
}

func TestByHost(t *testing.T) {
	a := newFakeSigner()
	b := newFakeSigner()
	r := ByHost(map[string]Signer{
		"a.example.com": a,
		"b.example.com": b,
	})

	u, _ := url.Parse("https://a.example.com/path")
	got, ok := r.SignerFor(u)
	assert.True(t, ok)
	assert.Same(t, a, got)

	u2, _ := url.Parse("https://c.example.com/path")
	_, ok = r.SignerFor(u2)
	assert.False(t, ok)
}

func TestByHost_NilEndpoint(t *testing.T) {
	r := ByHost(map[string]Signer{})
	_, ok := r.SignerFor(nil)
	assert.False(t, ok)
}
