// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package svcerr

import "fmt"

// An ErrorType classifies who is at fault for a ServiceError.
type ErrorType int

const (
	// Unknown indicates the fault could not be determined from the
	// response.
	Unknown ErrorType = iota
	// Client indicates the caller sent a bad request.
	Client
	// Service indicates the remote service itself failed.
	Service
)

func (t ErrorType) String() string {
	switch t {
	case Client:
		return "Client"
	case Service:
		return "Service"
	default:
		return "Unknown"
	}
}

// A ClientError indicates a local or transport-level failure: the
// execution never got, or could not make sense of, a well-formed
// response from the remote service. This covers a missing execution
// context, an I/O failure that survived all retries, a response body
// that could not be unmarshalled, a request body that could not be
// rewound for a retry, and cancellation during the inter-retry backoff
// sleep.
type ClientError struct {
	Message string
	Cause   error
}

// NewClientError constructs a ClientError wrapping an optional cause.
func NewClientError(message string, cause error) *ClientError {
	return &ClientError{Message: message, Cause: cause}
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// A ServiceError indicates a remote failure: a non-2xx response that
// was successfully unmarshalled (or synthesized via the bodiless 413
// and 503 fallbacks) into a typed exception.
type ServiceError struct {
	StatusCode  int
	ServiceName string
	ErrorCode   string
	ErrorType   ErrorType
	RequestID   string
	Message     string
	clockSkew   bool
	cause       error
}

// NewServiceError constructs a ServiceError.
func NewServiceError(message string, statusCode int, errorCode string, errorType ErrorType, serviceName string) *ServiceError {
	return &ServiceError{
		Message:     message,
		StatusCode:  statusCode,
		ErrorCode:   errorCode,
		ErrorType:   errorType,
		ServiceName: serviceName,
	}
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s (status=%d, code=%s, service=%s)", e.Message, e.StatusCode, e.ErrorCode, e.ServiceName)
}

func (e *ServiceError) Unwrap() error {
	return e.cause
}

// WithCause attaches an underlying cause and returns the receiver, for
// fluent construction.
func (e *ServiceError) WithCause(cause error) *ServiceError {
	e.cause = cause
	return e
}

// WithRequestID attaches the remote request ID and returns the
// receiver, for fluent construction.
func (e *ServiceError) WithRequestID(id string) *ServiceError {
	e.RequestID = id
	return e
}

// MarkClockSkew flags this error as a clock-skew class error, as
// recognized by the retry utility rather than by status code alone.
// It returns the receiver, for fluent construction.
func (e *ServiceError) MarkClockSkew() *ServiceError {
	e.clockSkew = true
	return e
}

// HTTPStatusCode implements the capability interface consulted by
// package retry's built-in status-code deciders, without retry having
// to import this package's concrete type.
func (e *ServiceError) HTTPStatusCode() int {
	return e.StatusCode
}

// ClockSkew implements the capability interface consulted by the
// execution loop to decide whether to recompute the clock-skew offset
// after this error.
func (e *ServiceError) ClockSkew() bool {
	return e.clockSkew
}

// clockSkewCodes are the known error codes which indicate the caller's
// clock disagrees with the server's, per the retry utility's
// classification. Recognized by code, not status code alone, since
// several of these codes can also accompany a 403.
var clockSkewCodes = map[string]bool{
	"RequestExpired":        true,
	"RequestTimeTooSkewed":  true,
	"SignatureDoesNotMatch": true,
	"AuthFailure":           true,
}

// IsClockSkewCode reports whether errorCode is one of the known
// clock-skew error codes.
func IsClockSkewCode(errorCode string) bool {
	return clockSkewCodes[errorCode]
}
