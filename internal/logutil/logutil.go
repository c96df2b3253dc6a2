// Copyright 2025 Ekjot Singh
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logutil provides the structured logging sink used across belt.
// It mirrors the teacher's util/logutil package: a package-level zap
// logger reachable through github.com/pingcap/log, with a logrus hook so
// any caller instrumentation still emitting logrus records lands in the
// same sink.
package logutil

import (
	"sync"

	zaplog "github.com/pingcap/log"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	once   sync.Once
	global *zap.Logger
	props  *zaplog.ZapProperties
)

// L returns the package-level logger, initialising it on first use with a
// sensible production config (info level, console encoding).
func L() *zap.Logger {
	once.Do(func() {
		logger, p, err := zaplog.InitLogger(&zaplog.Config{Level: "info"})
		props = p
		if err != nil {
			// InitLogger only fails on a malformed config; ours is a
			// literal, so this is unreachable in practice. Fall back to
			// a no-op logger rather than panicking in a library.
			logger = zap.NewNop()
		}
		global = logger
	})
	return global
}

// SetLevel adjusts the global logger's level. "debug", "info", "warn", and
// "error" are accepted; anything else is treated as "info".
func SetLevel(level string) {
	L() // ensure initialised
	var zl zapcore.Level
	if err := zl.UnmarshalText([]byte(level)); err != nil {
		zl = zapcore.InfoLevel
	}
	if props != nil {
		props.Level.SetLevel(zl)
	}
}

// logrusZapHook bridges logrus.Entry records into the zap sink, so code
// that still logs through logrus (as legacy callers sometimes do) ends up
// in the same place as belt's own structured logs.
type logrusZapHook struct{}

// Levels implements logrus.Hook.
func (logrusZapHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire implements logrus.Hook.
func (logrusZapHook) Fire(entry *logrus.Entry) error {
	fields := make([]zap.Field, 0, len(entry.Data))
	for k, v := range entry.Data {
		fields = append(fields, zap.Any(k, v))
	}
	logger := L()
	switch entry.Level {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		logger.Error(entry.Message, fields...)
	case logrus.WarnLevel:
		logger.Warn(entry.Message, fields...)
	case logrus.DebugLevel, logrus.TraceLevel:
		logger.Debug(entry.Message, fields...)
	default:
		logger.Info(entry.Message, fields...)
	}
	return nil
}

// BridgeLogrus installs the logrus->zap hook on the standard logrus
// logger, discarding logrus's own output so records are not duplicated.
func BridgeLogrus() {
	logrus.SetOutput(noopWriter{})
	logrus.AddHook(logrusZapHook{})
}

type noopWriter struct{}

func (noopWriter) Write(p []byte) (int, error) { return len(p), nil }
