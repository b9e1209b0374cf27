// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package svcerr defines the two error kinds produced by the request
// execution core: ClientError for local or transport failures, and
// ServiceError for remote failures that were successfully unmarshalled
// from a non-2xx response.
package svcerr
