// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/nimbussdk/httpcore/svcerr"
	"github.com/nimbussdk/httpcore/transport"
)

// rawBodyHandler is a respond.ResponseHandler[[]byte] that fully
// buffers a successful response body, for a CLI that has no typed
// result to unmarshal into.
type rawBodyHandler struct{}

func (rawBodyHandler) Handle(resp *transport.HTTPResponse) ([]byte, error) {
	return io.ReadAll(resp.Body)
}

func (rawBodyHandler) NeedsConnectionLeftOpen() bool { return false }

// rawErrorHandler is a respond.ErrorResponseHandler that synthesizes a
// ServiceError from the raw error response body, for services which
// have no structured error payload worth unmarshalling.
type rawErrorHandler struct{}

func (rawErrorHandler) Handle(resp *transport.HTTPResponse) (*svcerr.ServiceError, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return svcerr.NewServiceError(string(body), resp.StatusCode, "", svcerr.Unknown, ""), nil
}

func (rawErrorHandler) NeedsConnectionLeftOpen() bool { return false }
