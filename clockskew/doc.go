// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package clockskew tracks the signed offset added to "now" when
// signing a request, and knows how to recompute that offset from a
// service's clock-skew error response.
//
// The offset is modelled two ways, per the redesign notes carried
// forward from the original source: an atomic, process-wide Offset
// for call sites that want the original global-variable semantics
// (Default), and a Clock capability threaded explicitly through the
// signer for call sites that want a testable, non-global dependency.
// Clock built from an Offset satisfies both needs at once.
package clockskew
