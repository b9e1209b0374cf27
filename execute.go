// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpcore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/nimbussdk/httpcore/clockskew"
	"github.com/nimbussdk/httpcore/internal/obslog"
	"github.com/nimbussdk/httpcore/metrics"
	"github.com/nimbussdk/httpcore/request"
	"github.com/nimbussdk/httpcore/respond"
	"github.com/nimbussdk/httpcore/retry"
	"github.com/nimbussdk/httpcore/sign"
	"github.com/nimbussdk/httpcore/svcerr"
	"github.com/nimbussdk/httpcore/transient"
	"github.com/nimbussdk/httpcore/transport"
)

// Execute runs a single logical call to completion: it signs, sends,
// classifies, and (as policy dictates) retries and follows temporary
// redirects for req, unmarshalling the eventual terminal response with
// onSuccess or onError.
//
// Execute never mutates req.Original, and restores req's parameters
// and headers to their pre-call state before every attempt after the
// first, so that a signer or interceptor's mutation on a failed
// attempt never leaks into the next one.
//
// On any terminal failure Execute returns a nil *Response[T] and a
// non-nil error, which is either a *svcerr.ClientError (no usable
// response was ever obtained, or the response could not be made sense
// of) or a *svcerr.ServiceError (a well-formed non-2xx response was
// obtained and unmarshalled). Once the checks that precede the
// interceptor chain pass, exactly one of the ExecutionContext's
// interceptor chain's AfterResponse or AfterError hooks fires, exactly
// once, before Execute returns. A nil or closed Client, a nil
// ExecutionContext, or an invalid method is rejected with a
// *svcerr.ClientError before any hook runs.
func Execute[T any](c *Client, req *request.Request, onSuccess respond.ResponseHandler[T], onError respond.ErrorResponseHandler, ec *ExecutionContext) (*Response[T], error) {
	if c == nil || c.closed {
		return nil, svcerr.NewClientError("httpcore: client is closed or nil", nil)
	}
	if ec == nil {
		return nil, svcerr.NewClientError("httpcore: nil execution context", nil)
	}
	if !validMethod(req.Method) {
		return nil, svcerr.NewClientError(invalidMethodError(req.Method).Error(), nil)
	}

	ctx := ec.context()
	executionID := ec.ExecutionID
	if executionID == "" {
		executionID = uuid.NewString()
	}
	log := c.logger().WithFields(map[string]any{
		"execution_id": executionID,
		"service":      req.ServiceName,
	})

	sink := c.metricsSink()
	sink.Annotate(metrics.ServiceName, req.ServiceName)
	if req.Endpoint != nil {
		sink.Annotate(metrics.ServiceEndpoint, req.Endpoint.String())
	}

	if ec.Interceptors != nil {
		ec.Interceptors.InjectCredentials(ec.Credentials)
		if err := ec.Interceptors.BeforeRequest(req); err != nil {
			return finishError[T](sink, ec, req, nil, err)
		}
	}

	applyUserAgentPolicy(req, c.Config.UserAgent)
	snapshot := req.TakeSnapshot()

	var (
		attempt        int
		timeoutCount   int
		redirectURL    *url.URL
		prevErr        error
		lastResp       *transport.HTTPResponse
		signer         sign.Signer
		signerResolved bool
	)

	effectiveMax := retry.EffectiveMaxRetries(c.retryPolicy(), c.Config.MaxErrorRetry)

	for {
		attempt++
		if attempt > 1 {
			req.Restore(snapshot)
		}
		sink.Observe(metrics.RequestCount, float64(attempt))

		if !signerResolved {
			if ec.SignerResolver != nil {
				signer, _ = ec.SignerResolver.SignerFor(req.Endpoint)
			}
			signerResolved = true
		}
		if signer != nil && ec.Credentials != nil {
			signStart := time.Now()
			err := signer.Sign(req, ec.Credentials, clockskew.NewClock(c.clockOffset()))
			sink.ObserveDuration(metrics.RequestSigningTime, time.Since(signStart))
			if err != nil {
				return finishError[T](sink, ec, req, lastResp,
					svcerr.NewClientError("httpcore: signer failed", err))
			}
		}

		if attempt > 1 {
			if req.Body != nil {
				if !req.Body.Rewindable() {
					return finishError[T](sink, ec, req, lastResp,
						svcerr.NewClientError("stream is not resettable", prevErr))
				}
				if err := req.Body.Reset(); err != nil {
					return finishError[T](sink, ec, req, lastResp,
						svcerr.NewClientError("couldn't reset the stream to retry", err))
				}
			}

			delay := c.retryPolicy().Delay(req.Original, prevErr, attempt-2)
			waitStart := time.Now()
			timer := time.NewTimer(delay)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				return finishError[T](sink, ec, req, lastResp,
					svcerr.NewClientError("execution cancelled during retry backoff", ctx.Err()))
			}
			sink.ObserveDuration(metrics.RetryPauseTime, time.Since(waitStart))
		} else if req.Body != nil {
			if err := req.Body.Mark(); err != nil {
				return finishError[T](sink, ec, req, lastResp,
					svcerr.NewClientError("couldn't mark the stream for retry", err))
			}
		}

		if err := c.limiter().Wait(ctx); err != nil {
			return finishError[T](sink, ec, req, lastResp,
				svcerr.NewClientError("rate limiter wait cancelled", err))
		}

		attemptCtx, cancel := withAttemptTimeout(ctx, c.timeoutPolicy().Timeout(req.Original, prevErr, timeoutCount))
		httpReq := req.ToHTTPRequest(redirectURL)

		sendStart := time.Now()
		resp, sendErr := c.Transport.Execute(attemptCtx, httpReq)
		cancel()
		sink.ObserveDuration(metrics.HTTPRequestTime, time.Since(sendStart))

		if sendErr != nil {
			if transient.Categorize(sendErr) == transient.Timeout || attemptCtx.Err() == context.DeadlineExceeded {
				timeoutCount++
			}
			clientErr := svcerr.NewClientError(fmt.Sprintf("httpcore: unable to execute HTTP request: %v", sendErr), sendErr)
			retries := attempt - 1
			if !c.retryPolicy().ShouldRetry(req.Original, clientErr, retries) || retries >= effectiveMax {
				return finishError[T](sink, ec, req, lastResp, clientErr)
			}
			prevErr = clientErr
			log.Debug().Str("phase", "send").Err(clientErr).Msg("attempt failed, retrying")
			continue
		}

		lastResp = resp
		sink.Observe(metrics.StatusCode, float64(resp.StatusCode))

		switch respond.Classify(resp) {
		case respond.Success:
			return finishSuccess[T](sink, ec, req, resp, onSuccess, log)

		case respond.Redirect:
			loc := respond.RedirectLocation(resp)
			sink.Annotate(metrics.RedirectLocation, loc)
			if u, perr := url.Parse(loc); perr == nil && req.Endpoint != nil {
				redirectURL = req.Endpoint.ResolveReference(u)
			}
			closeBody(resp, log)
			continue

		default:
			procStart := time.Now()
			svcErr, derr := respond.Dispatch(onError, resp, req.ServiceName)
			sink.ObserveDuration(metrics.ResponseProcessingTime, time.Since(procStart))
			if !onError.NeedsConnectionLeftOpen() {
				closeBody(resp, log)
			}

			if derr != nil {
				return finishError[T](sink, ec, req, resp, derr)
			}

			if svcErr.ErrorCode != "" {
				sink.Annotate(metrics.ErrorCode, svcErr.ErrorCode)
			}
			if svcErr.RequestID != "" {
				sink.Annotate(metrics.RequestID, svcErr.RequestID)
			}
			if svcerr.IsClockSkewCode(svcErr.ErrorCode) {
				svcErr.MarkClockSkew()
			}

			retries := attempt - 1
			if !c.retryPolicy().ShouldRetry(req.Original, svcErr, retries) || retries >= effectiveMax {
				return finishError[T](sink, ec, req, resp, svcErr)
			}

			if svcErr.ClockSkew() {
				recomputeClockSkew(c, resp, svcErr, log)
			}
			prevErr = svcErr
			log.Debug().Str("phase", "dispatch").Err(svcErr).Msg("attempt failed, retrying")
		}
	}
}

// withAttemptTimeout bounds ctx by d, unless d is the sentinel
// "effectively infinite" duration timeout.Infinite returns, in which
// case ctx is returned unbounded to avoid overflowing time.Time
// arithmetic inside context.WithTimeout.
func withAttemptTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d >= time.Duration(math.MaxInt64)/2 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}

func finishSuccess[T any](sink metrics.Sink, ec *ExecutionContext, req *request.Request, resp *transport.HTTPResponse, onSuccess respond.ResponseHandler[T], log obslog.Logger) (*Response[T], error) {
	leaveOpen := onSuccess.NeedsConnectionLeftOpen()

	procStart := time.Now()
	result, err := onSuccess.Handle(resp)
	sink.ObserveDuration(metrics.ResponseProcessingTime, time.Since(procStart))

	if err != nil {
		if !leaveOpen {
			closeBody(resp, log)
		}
		if isIOError(err) {
			return finishError[T](sink, ec, req, resp, err)
		}
		wrapped := svcerr.NewClientError(fmt.Sprintf("httpcore: unable to unmarshal response (status=%d)", resp.StatusCode), err)
		return finishError[T](sink, ec, req, resp, wrapped)
	}

	if !leaveOpen {
		closeBody(resp, log)
	}

	if ec.Interceptors != nil {
		if aerr := ec.Interceptors.AfterResponse(req, resp); aerr != nil {
			sink.Annotate(metrics.Exception, fmt.Sprintf("%T", aerr))
			return nil, aerr
		}
	}
	return &Response[T]{Result: result, HTTP: resp}, nil
}

func finishError[T any](sink metrics.Sink, ec *ExecutionContext, req *request.Request, resp *transport.HTTPResponse, err error) (*Response[T], error) {
	sink.Annotate(metrics.Exception, fmt.Sprintf("%T", err))
	if ec.Interceptors != nil {
		if aerr := ec.Interceptors.AfterError(req, resp, err); aerr != nil {
			sink.Annotate(metrics.Exception, fmt.Sprintf("%T", aerr))
			return nil, aerr
		}
	}
	return nil, err
}

func closeBody(resp *transport.HTTPResponse, log obslog.Logger) {
	if resp != nil && resp.Body != nil {
		if err := resp.Body.Close(); err != nil {
			log.Debug().Err(err).Msg("closing response body")
		}
	}
}

func isIOError(err error) bool {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}
	var t interface{ Timeout() bool }
	return errors.As(err, &t)
}

func recomputeClockSkew(c *Client, resp *transport.HTTPResponse, svcErr *svcerr.ServiceError, log obslog.Logger) {
	dateHeader := ""
	if resp != nil {
		dateHeader = resp.Header.Get("Date")
	}
	serverTime, ok := clockskew.ParseServerTime(dateHeader, svcErr.Message)
	if !ok {
		log.Debug().Str("date", dateHeader).Msg("could not parse server time for clock-skew recompute")
		return
	}
	offset := clockskew.OffsetSeconds(time.Now(), serverTime)
	c.clockOffset().Set(offset)
}
