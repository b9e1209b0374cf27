// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"errors"
	"io"
	"io/ioutil"
)

const badBodyTypeMsg = "httpcore/request: invalid type (for body use nil, " +
	"string, []byte, io.Reader, io.ReadCloser, or request.Body)"

// NewBody converts a generic body parameter into a Body for use on a
// Request.
//
// The body parameter may be nil (no body is returned); a Body (used
// as-is, preserving whatever rewindability it already has); a string
// or []byte (wrapped with NewBytesBody, always rewindable); or an
// io.Reader or io.ReadCloser (wrapped with NewStreamBody, rewindable
// only if it also implements io.Seeker).
func NewBody(body interface{}) (Body, error) {
	switch x := body.(type) {
	case nil:
		return nil, nil
	case Body:
		return x, nil
	case string:
		return NewBytesBody([]byte(x)), nil
	case []byte:
		return NewBytesBody(x), nil
	case io.ReadCloser:
		return NewStreamBody(x), nil
	case io.Reader:
		return NewStreamBody(x), nil
	default:
		return nil, errors.New(badBodyTypeMsg)
	}
}

// ReadAllAndClose fully reads r, closing it afterward if it implements
// io.Closer. It is a convenience for building a NewBytesBody from an
// arbitrary reader when rewindability from io.Seeker is not required.
func ReadAllAndClose(r io.Reader) ([]byte, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if c, ok := r.(io.Closer); ok {
		if cerr := c.Close(); cerr != nil {
			return nil, cerr
		}
	}
	return b, nil
}
