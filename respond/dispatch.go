// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package respond

import (
	"fmt"
	"io"
	"strings"

	"github.com/nimbussdk/httpcore/svcerr"
	"github.com/nimbussdk/httpcore/transport"
)

// Dispatch unmarshals a non-2xx, non-redirect response into a
// *svcerr.ServiceError.
//
// It tries handler first. If handler fails, Dispatch applies the two
// bodiless-error fallbacks a caller's unmarshaller typically cannot
// handle because the service returns no parseable body: a 413 becomes
// a synthetic client-fault "Request entity too large", and a 503 whose
// status text is "Service Unavailable" (case-insensitive) becomes a
// synthetic service-fault "Service unavailable". An I/O error from
// handler is returned as-is, so the execution loop can treat it like
// any other transport failure. Anything else handler returns is
// wrapped as a *svcerr.ClientError.
//
// In every case the resulting ServiceError's StatusCode and
// ServiceName are filled in from resp and serviceName respectively,
// even when handler already set them, so a caller's unmarshaller need
// not bother.
func Dispatch(handler ErrorResponseHandler, resp *transport.HTTPResponse, serviceName string) (*svcerr.ServiceError, error) {
	svcErr, err := handler.Handle(resp)
	if err == nil {
		svcErr.StatusCode = resp.StatusCode
		svcErr.ServiceName = serviceName
		return svcErr, nil
	}

	if err == io.ErrUnexpectedEOF || err == io.EOF {
		return nil, err
	}
	if _, ok := err.(interface{ Timeout() bool }); ok {
		return nil, err
	}

	switch {
	case resp.StatusCode == 413:
		return svcerr.NewServiceError(
			"Request entity too large", 413, "Request entity too large", svcerr.Client, serviceName,
		), nil
	case resp.StatusCode == 503 && strings.EqualFold(statusText(resp.Status), "Service Unavailable"):
		return svcerr.NewServiceError(
			"Service unavailable", 503, "Service unavailable", svcerr.Service, serviceName,
		), nil
	default:
		return nil, svcerr.NewClientError(
			fmt.Sprintf("Unable to unmarshall error response (status=%d)", resp.StatusCode), err,
		)
	}
}

// statusText strips the leading numeric status code some transports
// include in an HTTP status line (e.g. "503 Service Unavailable"),
// leaving just the reason phrase.
func statusText(status string) string {
	s := strings.TrimSpace(status)
	code, text, found := strings.Cut(s, " ")
	if !found || strings.Trim(code, "0123456789") != "" {
		return s
	}
	return text
}
