// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package respond

import (
	"github.com/nimbussdk/httpcore/transport"
)

// Outcome is the result of classifying an HTTP response.
type Outcome int

const (
	// Success means the response status is in [200, 300).
	Success Outcome = iota
	// Redirect means the response status is 307 and carries a
	// non-empty Location header.
	Redirect
	// Error means neither of the above: the response describes a
	// service error.
	Error
)

// Classify implements the response classifier: 2xx is success, a 307
// with a non-empty Location header is a temporary redirect, and
// everything else is an error.
func Classify(resp *transport.HTTPResponse) Outcome {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return Success
	case resp.StatusCode == 307 && resp.Header.Get("Location") != "":
		return Redirect
	default:
		return Error
	}
}

// RedirectLocation returns the raw Location header value of a response
// classified as Redirect. It is the caller's responsibility to only
// call this when Classify(resp) == Redirect.
func RedirectLocation(resp *transport.HTTPResponse) string {
	return resp.Header.Get("Location")
}
