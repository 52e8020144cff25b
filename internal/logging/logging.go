// Copyright (c) 2025 LegalHub Argentina
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging configures the application-wide structured logger.
//
// The TUI owns stdout, so log output goes to a rotated file under the
// config directory. Everything funnels through a single zap logger
// reachable via L().
package logging

import (
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/LegalHubArg/bot-analitica/internal/config"
)

// =============================================================================
// GLOBAL LOGGER
// =============================================================================

var (
	globalLogger = zap.NewNop()
	loggerMu     sync.RWMutex
)

// L returns the global logger. Before Init it is a no-op logger, so
// packages can log unconditionally.
func L() *zap.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return globalLogger
}

// Init builds the file logger from config and installs it globally.
// Returns a flush function to defer in main.
func Init(cfg config.LoggingConfig) (func(), error) {
	path := cfg.File
	if path == "" {
		dir, err := config.ConfigDir()
		if err != nil {
			return nil, err
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "vinoteca.log")
	}

	rotator := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     30,
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.MessageKey = "message"
	encoderConfig.LevelKey = "level"
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(rotator),
		parseLevel(cfg.Level),
	)

	logger := zap.New(core)

	loggerMu.Lock()
	globalLogger = logger
	loggerMu.Unlock()

	return func() { logger.Sync() }, nil
}

// SetForTesting swaps in a logger for tests and returns a restore
// function.
func SetForTesting(l *zap.Logger) func() {
	loggerMu.Lock()
	prev := globalLogger
	globalLogger = l
	loggerMu.Unlock()

	return func() {
		loggerMu.Lock()
		globalLogger = prev
		loggerMu.Unlock()
	}
}

// parseLevel maps a config level string onto a zap level. Unknown
// strings fall back to info.
func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zap.DebugLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}
