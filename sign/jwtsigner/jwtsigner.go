// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package jwtsigner implements a sign.Signer that authenticates a
// request with a short-lived, HMAC-signed JSON Web Token carried in the
// Authorization header as a bearer token.
//
// It is a demonstration of wiring a concrete authentication scheme
// into the execution core's sign.Signer interface; services that
// authenticate with a signed JWT assertion (rather than a static API
// key) can follow the same shape with a different claims set or
// signing method.
package jwtsigner

import (
	"fmt"

	"github.com/golang-jwt/jwt/v4"

	"github.com/nimbussdk/httpcore/clockskew"
	"github.com/nimbussdk/httpcore/request"
)

// Credentials is the credentials type this Signer expects to receive
// from the execution context. Sign returns a plain fmt.Errorf error
// (which Execute wraps in a *svcerr.ClientError) if the credentials it
// is handed are not of this type.
type Credentials struct {
	Issuer   string
	Subject  string
	Audience string
	Secret   []byte
}

// TTL is how long an issued token remains valid. The Signer is resolved
// once per execution and reused across retries, but Sign issues a new
// token on every call with iat taken from the clock at that moment, so
// each attempt, including a retry, carries a token valid for TTL from
// when that attempt was signed.
const TTL = 5 * 60 // seconds

// Signer issues a fresh HS256 JWT on every call to Sign and attaches it
// as a bearer token in the Authorization header.
type Signer struct{}

// New returns a Signer.
func New() *Signer {
	return &Signer{}
}

// Sign implements sign.Signer.
func (s *Signer) Sign(r *request.Request, credentials interface{}, clock clockskew.Clock) error {
	creds, ok := credentials.(Credentials)
	if !ok {
		return fmt.Errorf("jwtsigner: credentials must be jwtsigner.Credentials, got %T", credentials)
	}

	now := clock.Now()
	claims := jwt.MapClaims{
		"iss": creds.Issuer,
		"sub": creds.Subject,
		"aud": creds.Audience,
		"iat": now.Unix(),
		"exp": now.Unix() + TTL,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(creds.Secret)
	if err != nil {
		return fmt.Errorf("jwtsigner: sign token: %w", err)
	}

	r.Headers.Set("Authorization", "Bearer "+signed)
	return nil
}
