// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package obslog defines the structured logging contract used
// throughout the execution core, backed by rs/zerolog. The execution
// loop logs at Debug level only (failed attempts it is about to retry,
// and swallowed body-close and clock-skew parse failures); it does not
// log request or response bodies or header values. Debug logging costs
// nothing when the level is above debug: zerolog's Debug() returns a
// disabled event whose field-builder calls are no-ops.
package obslog
