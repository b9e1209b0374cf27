// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpcore

import (
	"context"

	"github.com/nimbussdk/httpcore/interceptor"
	"github.com/nimbussdk/httpcore/sign"
)

// ExecutionContext is the per-call scratch space Execute threads
// through a single request's attempts: credentials, the interceptor
// chain, the signer resolver, and the ambient cancellation context.
// It is created fresh for each call to Execute and discarded once
// Execute returns.
type ExecutionContext struct {
	// Context carries cancellation for the whole execution, including
	// the inter-retry backoff sleep. If nil, context.Background() is
	// used.
	Context context.Context

	// Credentials is opaque authentication material handed to the
	// resolved Signer on every attempt. May be nil for anonymous
	// calls.
	Credentials interface{}

	// Interceptors runs around the execution's lifecycle. May be nil.
	Interceptors *interceptor.Chain

	// SignerResolver resolves the Signer, if any, for the request's
	// endpoint. May be nil, in which case the call is unsigned.
	SignerResolver sign.SignerResolver

	// ExecutionID is an opaque, caller-visible correlation identifier
	// for this execution; it is attached to the execution's log events
	// (not to metrics) but otherwise unused by the execution loop. If
	// empty, one is generated.
	ExecutionID string
}

func (ec *ExecutionContext) context() context.Context {
	if ec.Context != nil {
		return ec.Context
	}
	return context.Background()
}
