package io

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log file rotation settings, in megabytes and days.
const (
	logMaxSize    = 10
	logMaxBackups = 3
	logMaxAge     = 28
)

// NewLogger returns a logger writing human-readable messages to stderr and,
// if file is non-empty, JSON messages to a rotated log file.
func NewLogger(level, file string) (*zap.Logger, error) {
	return NewLoggerTo(level, file, zapcore.Lock(os.Stderr))
}

// NewLoggerTo is NewLogger with console output going to console.
func NewLoggerTo(
	level, file string, console zapcore.WriteSyncer,
) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%w: log level '%s'", ErrConfig, level)
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), console, lvl),
	}

	if file != "" {
		fileWriter := zapcore.AddSync(&lumberjack.Logger{
			Filename:   file,
			MaxSize:    logMaxSize,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAge,
		})
		fileEncoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		cores = append(cores, zapcore.NewCore(fileEncoder, fileWriter, lvl))
	}

	return zap.New(zapcore.NewTee(cores...)), nil
}
