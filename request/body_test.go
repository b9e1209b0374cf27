// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBody_Nil(t *testing.T) {
	b, err := NewBody(nil)
	require.NoError(t, err)
	assert.Nil(t, b)
}

func TestNewBody_StringAndBytesAreRewindable(t *testing.T) {
	b, err := NewBody("hello")
	require.NoError(t, err)
	assert.True(t, b.Rewindable())

	got, _ := io.ReadAll(b)
	assert.Equal(t, "hello", string(got))
	require.NoError(t, b.Reset())
	got, _ = io.ReadAll(b)
	assert.Equal(t, "hello", string(got))

	b2, err := NewBody([]byte("world"))
	require.NoError(t, err)
	assert.True(t, b2.Rewindable())
}

func TestNewBody_SeekableReaderIsRewindable(t *testing.T) {
	r := bytes.NewReader([]byte("seekable"))
	b, err := NewBody(r)
	require.NoError(t, err)
	assert.True(t, b.Rewindable())

	buf := make([]byte, 4)
	_, _ = b.Read(buf)
	require.NoError(t, b.Mark())
	_, _ = b.Read(buf)
	require.NoError(t, b.Reset())
	rest, _ := io.ReadAll(b)
	assert.Equal(t, "able", string(rest))
}

func TestNewBody_PlainReaderIsNotRewindable(t *testing.T) {
	r := strings.NewReader("not seekable but io.Reader is fine here")
	b, err := NewBody(io.Reader(onlyReader{r}))
	require.NoError(t, err)
	assert.False(t, b.Rewindable())
	assert.NoError(t, b.Mark())
	assert.Error(t, b.Reset())
}

func TestNewBody_InvalidType(t *testing.T) {
	_, err := NewBody(42)
	assert.Error(t, err)
}

func TestReadAllAndClose(t *testing.T) {
	rc := &closingReader{Reader: strings.NewReader("payload")}
	b, err := ReadAllAndClose(rc)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(b))
	assert.True(t, rc.closed)
}

type onlyReader struct {
	io.Reader
}

type closingReader struct {
	io.Reader
	closed bool
}

func (c *closingReader) Close() error {
	c.closed = true
	return nil
}
