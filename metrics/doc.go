// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package metrics records per-execution timing and outcome data at the
// fine granularity the execution loop observes: signing time, transport
// round-trip time, retry-pause time, response-processing time, and the
// outcome fields (status code, redirect location, request ID, error
// code). Field names mirror the original source's metrics enumeration,
// reproduced as named constants so callers get compile-time checked
// field identifiers instead of ad hoc strings.
package metrics
