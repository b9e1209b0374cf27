// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpcore

import (
	"fmt"

	"golang.org/x/net/http/httpguts"
)

// validMethod reports whether method is a syntactically valid HTTP
// method token, i.e. every rune in it is a valid token rune per
// RFC 7230 §3.2.6. An empty method is invalid.
func validMethod(method string) bool {
	if method == "" {
		return false
	}
	for _, r := range method {
		if !httpguts.IsTokenRune(r) {
			return false
		}
	}
	return true
}

func invalidMethodError(method string) error {
	return fmt.Errorf("httpcore: invalid HTTP method %q", method)
}
