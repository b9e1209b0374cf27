// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package respond classifies a transport response as success,
// temporary redirect, or error, and dispatches error bodies to a
// caller-provided unmarshaller with synthetic fallbacks for the
// bodiless 413 and 503 cases a caller's unmarshaller typically cannot
// handle.
package respond
