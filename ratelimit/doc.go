// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package ratelimit provides a client-side attempt limiter the
// execution loop can consult before each attempt, independent of the
// server-side throttling the retry policy already reacts to.
package ratelimit
