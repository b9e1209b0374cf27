// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package httpcore implements the request execution core shared by a
// family of remote HTTP-based service clients: it signs a prepared
// request, sends it, classifies the response, retries on transient
// failure with backoff and body rewinding, follows temporary
// redirects, corrects for clock skew against the server, and runs
// caller-supplied interceptors around all of that.
//
// The package does not itself speak HTTP, manage TCP connections,
// cache responses, or acquire credentials; those are the
// responsibility of the transport, sign, and credential-provider
// collaborators a Client is configured with. See package transport for
// the HTTP boundary, package sign for authentication, and package
// respond for response unmarshalling.
package httpcore
