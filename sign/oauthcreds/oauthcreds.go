// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package oauthcreds adapts an oauth2.TokenSource into the credentials
// slot the execution loop threads through to sign.Signer.Sign, and
// provides a Signer that attaches the resulting access token as a
// bearer credential.
//
// This is the usual alternative to jwtsigner for services fronted by
// an OAuth2 authorization server: the TokenSource (typically built
// with golang.org/x/oauth2/clientcredentials) handles acquisition and
// caching of the access token, and the Signer here only has to read
// whatever token is current.
package oauthcreds

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"

	"github.com/nimbussdk/httpcore/clockskew"
	"github.com/nimbussdk/httpcore/request"
)

// Provider wraps an oauth2.TokenSource so it can be handed to the
// execution context as the call's credentials.
//
// The value returned by Provider.Credentials is what a caller places in
// the execution context's Credentials slot; the execution loop itself
// never calls Provider. oauth2.TokenSource already caches and refreshes
// per its own token's expiry, independent of the execution's retry
// loop.
type Provider struct {
	Source oauth2.TokenSource
}

// NewProvider wraps source.
func NewProvider(source oauth2.TokenSource) *Provider {
	return &Provider{Source: source}
}

// Credentials resolves the current access token from the wrapped
// TokenSource, refreshing it if necessary.
func (p *Provider) Credentials(_ context.Context) (interface{}, error) {
	tok, err := p.Source.Token()
	if err != nil {
		return nil, fmt.Errorf("oauthcreds: acquire token: %w", err)
	}
	return tok, nil
}

// Signer attaches an *oauth2.Token's access token to the request's
// Authorization header. It ignores the clockskew.Clock: token
// lifetime is managed by the oauth2.TokenSource, not by the
// execution's signer.
type Signer struct{}

// New returns a Signer.
func New() *Signer {
	return &Signer{}
}

// Sign implements sign.Signer.
func (s *Signer) Sign(r *request.Request, credentials interface{}, _ clockskew.Clock) error {
	tok, ok := credentials.(*oauth2.Token)
	if !ok {
		return fmt.Errorf("oauthcreds: credentials must be *oauth2.Token, got %T", credentials)
	}
	if !tok.Valid() {
		return fmt.Errorf("oauthcreds: token is expired or empty")
	}
	typ := tok.Type()
	if typ == "" {
		typ = "Bearer"
	}
	r.Headers.Set("Authorization", typ+" "+tok.AccessToken)
	return nil
}
