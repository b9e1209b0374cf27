// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package obslog

import "time"

// Logger is the structured logging contract the execution core depends
// on. It is satisfied by *ZeroLogger; callers that already have their
// own zerolog-backed logger can wrap it the same way.
type Logger interface {
	Info() LogEvent
	Error() LogEvent
	Debug() LogEvent
	Warn() LogEvent
	WithFields(fields map[string]any) Logger
}

// LogEvent is a single structured log entry under construction.
type LogEvent interface {
	Msg(msg string)
	Msgf(format string, args ...any)
	Err(err error) LogEvent
	Str(key, value string) LogEvent
	Int(key string, value int) LogEvent
	Dur(key string, d time.Duration) LogEvent
	Interface(key string, i any) LogEvent
}

// Noop discards everything. It is the default Logger when a Client is
// built without one.
var Noop Logger = noopLogger{}

type noopLogger struct{}

func (noopLogger) Info() LogEvent                        { return noopEvent{} }
func (noopLogger) Error() LogEvent                       { return noopEvent{} }
func (noopLogger) Debug() LogEvent                        { return noopEvent{} }
func (noopLogger) Warn() LogEvent                         { return noopEvent{} }
func (n noopLogger) WithFields(map[string]any) Logger     { return n }

type noopEvent struct{}

func (noopEvent) Msg(string)                        {}
func (noopEvent) Msgf(string, ...any)                {}
func (e noopEvent) Err(error) LogEvent                { return e }
func (e noopEvent) Str(string, string) LogEvent       { return e }
func (e noopEvent) Int(string, int) LogEvent          { return e }
func (e noopEvent) Dur(string, time.Duration) LogEvent { return e }
func (e noopEvent) Interface(string, any) LogEvent    { return e }
