// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package sign defines the interfaces the execution loop uses to attach
// authentication material to a request, and a small registry for
// resolving a Signer by endpoint.
//
// A Signer mutates a request's headers and/or parameters in place; it
// is expected to consult a clockskew.Clock when computing time-bound
// fields such as a signature timestamp or expiry. Concrete signers
// live in subpackages (jwtsigner, oauthcreds) so that this package
// stays free of any particular authentication scheme's dependencies.
package sign
