// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package obslog

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// ZeroLogger implements Logger on top of rs/zerolog.
type ZeroLogger struct {
	zlog *zerolog.Logger
}

var _ Logger = (*ZeroLogger)(nil)

// New returns a ZeroLogger writing JSON lines to os.Stdout at the given
// level ("debug", "info", "warn", "error", ...). An unrecognized level
// falls back to info.
func New(level string) *ZeroLogger {
	l := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		zLevel = zerolog.InfoLevel
	}
	l = l.Level(zLevel)
	return &ZeroLogger{zlog: &l}
}

func (l *ZeroLogger) Info() LogEvent  { return zeroEvent{l.zlog.Info()} }
func (l *ZeroLogger) Error() LogEvent { return zeroEvent{l.zlog.Error()} }
func (l *ZeroLogger) Debug() LogEvent { return zeroEvent{l.zlog.Debug()} }
func (l *ZeroLogger) Warn() LogEvent  { return zeroEvent{l.zlog.Warn()} }

func (l *ZeroLogger) WithFields(fields map[string]any) Logger {
	log := l.zlog.With().Fields(fields).Logger()
	return &ZeroLogger{zlog: &log}
}

type zeroEvent struct {
	e *zerolog.Event
}

func (z zeroEvent) Msg(msg string)                { z.e.Msg(msg) }
func (z zeroEvent) Msgf(format string, args ...any) { z.e.Msgf(format, args...) }
func (z zeroEvent) Err(err error) LogEvent          { return zeroEvent{z.e.Err(err)} }
func (z zeroEvent) Str(key, value string) LogEvent  { return zeroEvent{z.e.Str(key, value)} }
func (z zeroEvent) Int(key string, value int) LogEvent {
	return zeroEvent{z.e.Int(key, value)}
}
func (z zeroEvent) Dur(key string, d time.Duration) LogEvent {
	return zeroEvent{z.e.Dur(key, d)}
}
func (z zeroEvent) Interface(key string, i any) LogEvent {
	return zeroEvent{z.e.Interface(key, i)}
}
