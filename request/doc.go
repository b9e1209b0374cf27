// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package request holds the mutable Request under construction during
// an execution, the immutable OriginalRequest identity it is built
// from, and the optional rewindable Body stream attached to it.
//
// The field structure of Request mirrors a subset of the lower-level
// http.Request, but keeps parameters and headers as separate,
// independently snapshottable collections, since the execution loop
// must be able to restore both to their pre-attempt state before every
// retry (see Request.TakeSnapshot and Request.Restore).
package request
