// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package retry provides the retry Policy consulted by the execution
// loop after every failed attempt: whether to retry at all, and how
// long to wait before doing so.
//
// A Policy is a pure decision object, composed from a Decider (should
// we retry?) and a Waiter (how long should we wait?), plus its own
// retry ceiling and a flag saying whether a client's configured
// max-retries override takes precedence over that ceiling:
//
//	decider := retry.Times(3).
//	               And(retry.StatusCode(500).Or(retry.TransientErr))
//	waiter := retry.NewExpWaiter(100*time.Millisecond, 2*time.Second, time.Now())
//	policy := retry.NewPolicy(decider, waiter, 3, true)
//
// If the built-in functionality is insufficient, implement Policy (or
// just Decider and Waiter) directly.
package retry
