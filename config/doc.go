// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package config loads a Client's tunables from layered sources —
// built-in defaults, an optional YAML file, then environment variables
// (highest priority) — and validates the result with
// go-playground/validator before handing it to httpcore.New.
package config
