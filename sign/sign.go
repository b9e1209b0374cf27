// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package sign

import (
	"net/url"

	"github.com/nimbussdk/httpcore/clockskew"
	"github.com/nimbussdk/httpcore/request"
)

// A Signer attaches authentication material to a request, mutating its
// headers and/or parameters in place. It is resolved once per
// execution and reused across retries, so Sign may be called more than
// once with the same Request (on a fresh snapshot each time) and must
// produce an equally valid signature every time.
//
// Sign should consult clock for any time-bound field it computes, so
// that clock-skew correction applied between attempts is observed.
type Signer interface {
	Sign(r *request.Request, credentials interface{}, clock clockskew.Clock) error
}

// A SignerResolver resolves the Signer, if any, responsible for a given
// endpoint. Returning ok == false means the endpoint is unsigned; the
// execution loop proceeds without signing.
type SignerResolver interface {
	SignerFor(endpoint *url.URL) (Signer, bool)
}

// Static returns a SignerResolver that always resolves to s, regardless
// of endpoint. This is the common case for a client dedicated to a
// single service.
func Static(s Signer) SignerResolver {
	return staticResolver{s}
}

type staticResolver struct {
	s Signer
}

func (r staticResolver) SignerFor(_ *url.URL) (Signer, bool) {
	if r.s == nil {
		return nil, false
	}
	return r.s, true
}

// ByHost returns a SignerResolver that dispatches on the endpoint's
// host, for clients that talk to more than one service and need a
// different Signer per host. Hosts not present in byHost are unsigned.
func ByHost(byHost map[string]Signer) SignerResolver {
	return hostResolver(byHost)
}

type hostResolver map[string]Signer

func (r hostResolver) SignerFor(endpoint *url.URL) (Signer, bool) {
	if endpoint == nil {
		return nil, false
	}
	s, ok := r[endpoint.Host]
	return s, ok
}
