// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package interceptor defines the before-request / after-response /
// after-error hooks the execution loop invokes once per execution,
// and an ordered Chain that runs a list of Interceptors and injects
// credentials into any that ask for them.
package interceptor
