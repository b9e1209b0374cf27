// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package transport defines the boundary between the request
// execution core and the mechanics of actually moving bytes over the
// wire. The core never manages TCP connections or TLS itself; it only
// consumes the Transport interface.
package transport
