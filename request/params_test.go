// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParams_SetGetOrder(t *testing.T) {
	p := NewParams()
	p.Set("b", "2")
	p.Set("a", "1")
	p.Set("b", "20")

	v, ok := p.Get("b")
	assert.True(t, ok)
	assert.Equal(t, "20", v)
	assert.Equal(t, []string{"b", "a"}, p.Keys())
	assert.Equal(t, 2, p.Len())

	_, ok = p.Get("missing")
	assert.False(t, ok)
}

func TestParams_Del(t *testing.T) {
	p := NewParams()
	p.Set("a", "1")
	p.Set("b", "2")
	p.Del("a")

	assert.Equal(t, []string{"b"}, p.Keys())
	assert.Equal(t, 1, p.Len())

	p.Del("not-there")
	assert.Equal(t, 1, p.Len())
}

func TestParams_CloneIsIndependent(t *testing.T) {
	p := NewParams()
	p.Set("a", "1")
	c := p.Clone()
	c.Set("b", "2")

	assert.Equal(t, 1, p.Len())
	assert.Equal(t, 2, c.Len())
}

func TestParams_NilReceiverIsSafe(t *testing.T) {
	var p *Params
	assert.Equal(t, 0, p.Len())
	assert.Nil(t, p.Keys())
	_, ok := p.Get("x")
	assert.False(t, ok)
	assert.NotPanics(t, func() { p.Del("x") })
	assert.Equal(t, 0, p.Clone().Len())
}
