// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpcore

import (
	"strings"

	"github.com/nimbussdk/httpcore/request"
)

// applyUserAgentPolicy idempotently composes the outgoing User-Agent
// header from, in order: whatever the request already carries, the
// Client's configured UserAgent (if different from DefaultUserAgent),
// DefaultUserAgent itself, and the OriginalRequest's UserAgentMarker,
// if any. Each token is appended only if not already present, so
// calling this more than once on the same Request (as happens across
// retries once the snapshot is restored) never duplicates a token.
func applyUserAgentPolicy(r *request.Request, configuredUserAgent string) {
	existing := r.Headers.Get("User-Agent")
	tokens := make([]string, 0, 3)

	cfg := strings.TrimSpace(configuredUserAgent)
	if cfg != "" {
		tokens = append(tokens, cfg)
	}
	if cfg != DefaultUserAgent {
		tokens = append(tokens, DefaultUserAgent)
	}
	if marker := strings.TrimSpace(r.Original.UserAgentMarker); marker != "" {
		tokens = append(tokens, marker)
	}

	ua := existing
	for _, tok := range tokens {
		if tok == "" || containsToken(ua, tok) {
			continue
		}
		if ua == "" {
			ua = tok
		} else {
			ua = ua + " " + tok
		}
	}

	if ua != "" {
		r.Headers.Set("User-Agent", ua)
	}
}

func containsToken(ua, tok string) bool {
	if ua == "" {
		return false
	}
	for _, field := range strings.Fields(ua) {
		if field == tok {
			return true
		}
	}
	return strings.Contains(ua, tok)
}
