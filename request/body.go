// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"bytes"
	"io"
)

// A Body is an optional request payload stream. A Body may or may not
// be rewindable, i.e. support the mark-current-position/reset-to-mark
// protocol the execution loop needs to retry a request after the body
// has been partially or fully consumed by a failed attempt.
//
// Rewindable() must return a constant answer for the lifetime of the
// Body; the execution loop consults it once per failed attempt, not
// just once at the start of the call.
type Body interface {
	io.Reader
	// Rewindable reports whether Mark and Reset are meaningful.
	Rewindable() bool
	// Mark records the current read position as the position Reset
	// will return to. It is called once, before the first attempt.
	Mark() error
	// Reset returns the stream to the position last recorded by Mark.
	// It is only called on a rewindable Body.
	Reset() error
}

// NewBytesBody wraps an in-memory byte slice as a Body. The returned
// Body is always rewindable, since resetting a byte slice reader is
// always possible.
func NewBytesBody(b []byte) Body {
	return &bytesBody{b: b, r: bytes.NewReader(b)}
}

type bytesBody struct {
	b []byte
	r *bytes.Reader
}

func (body *bytesBody) Read(p []byte) (int, error) { return body.r.Read(p) }
func (body *bytesBody) Rewindable() bool            { return true }
func (body *bytesBody) Mark() error                 { return nil }
func (body *bytesBody) Reset() error {
	body.r = bytes.NewReader(body.b)
	return nil
}

// A Seeker is the subset of io.Seeker a streamed body may implement to
// become rewindable. Readers which do not implement Seeker produce a
// Body which is not rewindable, and any retry attempted against such a
// body fails per the request rewinder's contract.
type Seeker interface {
	io.Reader
	io.Seeker
}

// NewStreamBody wraps an arbitrary reader as a Body. If r also
// implements io.Seeker, the returned Body is rewindable by seeking
// back to the offset recorded by Mark; otherwise it is not rewindable
// at all.
func NewStreamBody(r io.Reader) Body {
	if s, ok := r.(Seeker); ok {
		return &streamBody{s: s}
	}
	return &nonRewindableBody{r: r}
}

type streamBody struct {
	s     Seeker
	marks int64
}

func (body *streamBody) Read(p []byte) (int, error) { return body.s.Read(p) }
func (body *streamBody) Rewindable() bool            { return true }

func (body *streamBody) Mark() error {
	off, err := body.s.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}
	body.marks = off
	return nil
}

func (body *streamBody) Reset() error {
	_, err := body.s.Seek(body.marks, io.SeekStart)
	return err
}

type nonRewindableBody struct {
	r io.Reader
}

func (body *nonRewindableBody) Read(p []byte) (int, error) { return body.r.Read(p) }
func (body *nonRewindableBody) Rewindable() bool            { return false }
func (body *nonRewindableBody) Mark() error                 { return nil }
func (body *nonRewindableBody) Reset() error {
	return io.ErrClosedPipe // never called: Rewindable() is false
}
