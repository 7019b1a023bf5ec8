// Package logger provides structured logging for the Tenure Registry intake
// service.
//
// Uses zap with AtomicLevel for hot-reload support. JSON format for
// production, console for development. An optional rotating file sink
// (lumberjack) tees with stdout for on-prem deployments that collect logs
// from disk.
package logger

import (
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// global is the package-level logger instance.
	global      *zap.Logger
	atomicLevel zap.AtomicLevel
	once        sync.Once
)

// FileSink configures the optional rotating log file.
type FileSink struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// Init initializes the global logger writing to stdout only.
// level: debug, info, warn, error
// format: json or console
func Init(level, format string) error {
	return InitWithSink(level, format, nil)
}

// InitWithSink initializes the global logger, teeing stdout with a rotating
// file sink when one is provided.
func InitWithSink(level, format string, sink *FileSink) error {
	var initErr error
	once.Do(func() {
		atomicLevel = zap.NewAtomicLevel()
		if err := atomicLevel.UnmarshalText([]byte(level)); err != nil {
			initErr = fmt.Errorf("parse log level %q: %w", level, err)
			return
		}

		var encCfg zapcore.EncoderConfig
		var enc zapcore.Encoder
		switch format {
		case "console":
			encCfg = zap.NewDevelopmentEncoderConfig()
			encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
			enc = zapcore.NewConsoleEncoder(encCfg)
		default:
			encCfg = zap.NewProductionEncoderConfig()
			encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
			enc = zapcore.NewJSONEncoder(encCfg)
		}

		cores := []zapcore.Core{
			zapcore.NewCore(enc, zapcore.Lock(os.Stdout), atomicLevel),
		}
		if sink != nil && sink.Path != "" {
			fileEncCfg := zap.NewProductionEncoderConfig()
			fileEncCfg.EncodeTime = zapcore.ISO8601TimeEncoder
			w := zapcore.AddSync(&lumberjack.Logger{
				Filename:   sink.Path,
				MaxSize:    sink.MaxSizeMB,
				MaxBackups: sink.MaxBackups,
				MaxAge:     sink.MaxAgeDays,
				Compress:   sink.Compress,
			})
			cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(fileEncCfg), w, atomicLevel))
		}

		global = zap.New(
			zapcore.NewTee(cores...),
			zap.AddCaller(),
			zap.AddCallerSkip(1),
			zap.ErrorOutput(zapcore.Lock(os.Stderr)),
		)
	})
	return initErr
}

// SetLevel dynamically changes the log level (hot-reload support).
func SetLevel(level string) error {
	return atomicLevel.UnmarshalText([]byte(level))
}

// GetLevel returns the current log level.
func GetLevel() zapcore.Level {
	return atomicLevel.Level()
}

// L returns the global logger. Panics if Init has not been called.
func L() *zap.Logger {
	if global == nil {
		panic("logger.Init() must be called before logger.L()")
	}
	return global
}

// S returns the global sugared logger.
func S() *zap.SugaredLogger {
	return L().Sugar()
}

// Debug logs a message at DebugLevel.
func Debug(msg string, fields ...zap.Field) {
	L().Debug(msg, fields...)
}

// Info logs a message at InfoLevel.
func Info(msg string, fields ...zap.Field) {
	L().Info(msg, fields...)
}

// Warn logs a message at WarnLevel.
func Warn(msg string, fields ...zap.Field) {
	L().Warn(msg, fields...)
}

// Error logs a message at ErrorLevel.
func Error(msg string, fields ...zap.Field) {
	L().Error(msg, fields...)
}

// Fatal logs a message at FatalLevel then calls os.Exit(1).
func Fatal(msg string, fields ...zap.Field) {
	L().Fatal(msg, fields...)
}

// With creates a child logger with additional fields.
func With(fields ...zap.Field) *zap.Logger {
	return L().With(fields...)
}

// HTTPHandler returns an http.Handler that allows dynamic log level changes.
// Mount at /log/level for runtime hot-reload.
//
// Usage:
//
//	GET  /log/level          → returns current level
//	PUT  /log/level -d '{"level":"debug"}' → changes level
func HTTPHandler() *zap.AtomicLevel {
	return &atomicLevel
}

// Sync flushes any buffered log entries.
func Sync() error {
	if global == nil {
		return nil
	}
	return global.Sync()
}
