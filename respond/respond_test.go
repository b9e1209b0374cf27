// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package respond

import (
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nimbussdk/httpcore/svcerr"
	"github.com/nimbussdk/httpcore/transport"
)

func TestClassify(t *testing.T) {
	assert.Equal(t, Success, Classify(&transport.HTTPResponse{StatusCode: 200}))
	assert.Equal(t, Success, Classify(&transport.HTTPResponse{StatusCode: 299}))

	redirectHeader := http.Header{"Location": []string{"https://example.com/next"}}
	assert.Equal(t, Redirect, Classify(&transport.HTTPResponse{StatusCode: 307, Header: redirectHeader}))

	assert.Equal(t, Error, Classify(&transport.HTTPResponse{StatusCode: 307, Header: http.Header{}}))
	assert.Equal(t, Error, Classify(&transport.HTTPResponse{StatusCode: 500}))
	assert.Equal(t, Error, Classify(&transport.HTTPResponse{StatusCode: 404}))
}

type fakeErrorHandler struct {
	result *svcerr.ServiceError
	err    error
}

func (h fakeErrorHandler) Handle(_ *transport.HTTPResponse) (*svcerr.ServiceError, error) {
	return h.result, h.err
}

func (fakeErrorHandler) NeedsConnectionLeftOpen() bool { return false }

func TestDispatch_HandlerSucceeds(t *testing.T) {
	h := fakeErrorHandler{result: svcerr.NewServiceError("boom", 0, "Boom", svcerr.Service, "")}
	resp := &transport.HTTPResponse{StatusCode: 400}

	got, err := Dispatch(h, resp, "widgets")
	require.NoError(t, err)
	assert.Equal(t, 400, got.StatusCode)
	assert.Equal(t, "widgets", got.ServiceName)
	assert.Equal(t, "Boom", got.ErrorCode)
}

func TestDispatch_413Fallback(t *testing.T) {
	h := fakeErrorHandler{err: errors.New("body is empty")}
	resp := &transport.HTTPResponse{StatusCode: 413}

	got, err := Dispatch(h, resp, "widgets")
	require.NoError(t, err)
	assert.Equal(t, 413, got.StatusCode)
	assert.Equal(t, svcerr.Client, got.ErrorType)
	assert.Equal(t, "widgets", got.ServiceName)
}

func TestDispatch_503Fallback(t *testing.T) {
	h := fakeErrorHandler{err: errors.New("body is empty")}
	resp := &transport.HTTPResponse{StatusCode: 503, Status: "503 Service Unavailable"}

	got, err := Dispatch(h, resp, "widgets")
	require.NoError(t, err)
	assert.Equal(t, 503, got.StatusCode)
	assert.Equal(t, svcerr.Service, got.ErrorType)
}

func TestDispatch_503WithoutMatchingStatusText(t *testing.T) {
	h := fakeErrorHandler{err: errors.New("body is empty")}
	resp := &transport.HTTPResponse{StatusCode: 503, Status: "503 Throttled"}

	_, err := Dispatch(h, resp, "widgets")
	assert.Error(t, err)
	var clientErr *svcerr.ClientError
	assert.ErrorAs(t, err, &clientErr)
}

func TestDispatch_OtherFailureWrapsAsClientError(t *testing.T) {
	h := fakeErrorHandler{err: errors.New("malformed xml")}
	resp := &transport.HTTPResponse{StatusCode: 500}

	_, err := Dispatch(h, resp, "widgets")
	var clientErr *svcerr.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.ErrorContains(t, clientErr, "malformed xml")
}

func TestDispatch_IOErrorPropagatesAsIs(t *testing.T) {
	h := fakeErrorHandler{err: io.ErrUnexpectedEOF}
	resp := &transport.HTTPResponse{StatusCode: 500}

	_, err := Dispatch(h, resp, "widgets")
	assert.Same(t, io.ErrUnexpectedEOF, err)
}
