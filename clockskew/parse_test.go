// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package clockskew

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseServerTime_DateHeader(t *testing.T) {
	got, ok := ParseServerTime("Tue, 29 Apr 2014 22:25:33 GMT", "")
	assert.True(t, ok)
	assert.Equal(t, 2014, got.Year())
	assert.Equal(t, time.April, got.Month())
	assert.Equal(t, 29, got.Day())
}

func TestParseServerTime_DateHeader_Invalid(t *testing.T) {
	_, ok := ParseServerTime("not a date", "")
	assert.False(t, ok)
}

func TestParseServerTime_MessageBody_PlusDelimiter(t *testing.T) {
	body := "Signature expired: 20140429T222533Z is now earlier than 20140429T222033Z (20140429T222533Z + 15 min.)"
	got, ok := ParseServerTime("", body)
	assert.True(t, ok)
	assert.Equal(t, 2014, got.Year())
	assert.Equal(t, 29, got.Day())
	assert.Equal(t, 22, got.Hour())
}

func TestParseServerTime_MessageBody_MinusDelimiter(t *testing.T) {
	body := "Signature not yet current: 20140429T222533Z is later than 20140429T222033Z (20140429T222533Z - 15 min.)"
	got, ok := ParseServerTime("", body)
	assert.True(t, ok)
	assert.Equal(t, 2014, got.Year())
}

func TestParseServerTime_MessageBody_NoDelimiter(t *testing.T) {
	_, ok := ParseServerTime("", "this message has a ( paren but no delimiter at all")
	assert.False(t, ok)
}

func TestParseServerTime_MessageBody_NoParen(t *testing.T) {
	_, ok := ParseServerTime("", "no parenthesis here + 15 min.")
	assert.False(t, ok)
}

func TestParseServerTime_MessageBody_ParenAfterDelimiter(t *testing.T) {
	// The opening paren occurs after the delimiter, so there is no
	// parenthesized group "before" the delimiter: must not panic on
	// an inverted slice range, must report failure.
	_, ok := ParseServerTime("", "prefix + 15 min. (20140429T222533Z)")
	assert.False(t, ok)
}

func TestParseServerTime_MessageBody_Empty(t *testing.T) {
	_, ok := ParseServerTime("", "")
	assert.False(t, ok)
}

func TestOffsetSeconds(t *testing.T) {
	device := time.Date(2014, 4, 29, 22, 25, 40, 0, time.UTC)
	server := time.Date(2014, 4, 29, 22, 25, 33, 0, time.UTC)
	assert.Equal(t, int64(7), OffsetSeconds(device, server))

	device2 := time.Date(2014, 4, 29, 22, 25, 20, 0, time.UTC)
	assert.Equal(t, int64(-13), OffsetSeconds(device2, server))
}
