// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package respond

import (
	"github.com/nimbussdk/httpcore/svcerr"
	"github.com/nimbussdk/httpcore/transport"
)

// A ResponseHandler unmarshals a successful (2xx) HTTP response into a
// caller-defined result type T.
//
// Go methods cannot carry their own type parameters, so ResponseHandler
// is generic at the interface level: callers implement it once per
// result type they need.
type ResponseHandler[T any] interface {
	// Handle unmarshals resp into a T. Any returned error that is not
	// itself an I/O error is wrapped by the execution loop as a
	// ClientError.
	Handle(resp *transport.HTTPResponse) (T, error)

	// NeedsConnectionLeftOpen reports whether Handle streams directly
	// from resp.Body rather than fully consuming it before returning.
	// If true, the execution loop does not close the response body
	// after Handle returns.
	NeedsConnectionLeftOpen() bool
}

// An ErrorResponseHandler unmarshals a non-2xx, non-redirect HTTP
// response into a *svcerr.ServiceError.
type ErrorResponseHandler interface {
	// Handle unmarshals resp into a ServiceError. If it cannot, it
	// should return an error describing why; Dispatch supplies the
	// synthetic fallbacks and ClientError wrapping described in its
	// own doc comment.
	Handle(resp *transport.HTTPResponse) (*svcerr.ServiceError, error)

	// NeedsConnectionLeftOpen has the same contract as
	// ResponseHandler.NeedsConnectionLeftOpen.
	NeedsConnectionLeftOpen() bool
}
