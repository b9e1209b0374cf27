// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package jwtsigner

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nimbussdk/httpcore/clockskew"
	"github.com/nimbussdk/httpcore/request"
)

func TestSign_SetsBearerToken(t *testing.T) {
	u, _ := url.Parse("https://example.com/foo")
	r := request.New(http.MethodGet, u, "example", nil)

	creds := Credentials{Issuer: "issuer", Subject: "sub", Audience: "aud", Secret: []byte("secret")}
	clock := clockskew.NewClock(nil)

	s := New()
	err := s.Sign(r, creds, clock)
	require.NoError(t, err)

	auth := r.Headers.Get("Authorization")
	require.True(t, len(auth) > len("Bearer "))
	assert.Equal(t, "Bearer ", auth[:len("Bearer ")])

	tokStr := auth[len("Bearer "):]
	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(tokStr, &claims, func(token *jwt.Token) (interface{}, error) {
		return creds.Secret, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "issuer", claims["iss"])
	assert.Equal(t, "sub", claims["sub"])
}

func TestSign_WrongCredentialsType(t *testing.T) {
	u, _ := url.Parse("https://example.com/foo")
	r := request.New(http.MethodGet, u, "example", nil)

	s := New()
	err := s.Sign(r, "not-credentials", clockskew.NewClock(nil))
	assert.Error(t, err)
}
