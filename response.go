// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpcore

import "github.com/nimbussdk/httpcore/transport"

// Response is the successful result of Execute: the caller's
// unmarshalled result plus the raw HTTP response that produced it.
//
// HTTP.Body is closed by Execute before returning unless the
// ResponseHandler that produced Result declared
// NeedsConnectionLeftOpen; in that case the caller owns closing it.
type Response[T any] struct {
	Result T
	HTTP   *transport.HTTPResponse
}
