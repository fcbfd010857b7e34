package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"site-announcements/internal/core/config"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	globalLogger *zap.Logger
	fileSink     *lumberjack.Logger
)

// Init initializes the global logger writing to stdout only.
func Init(environment string, level string) error {
	return InitWithFile(environment, level, config.LogFileConfig{})
}

// InitWithFile initializes the global logger.
// For "development" env, it produces pretty console logs.
// For "production" env, it produces JSON logs.
// When file.Enabled is set, entries are also written as JSON to a lumberjack rotated file.
func InitWithFile(environment string, level string, file config.LogFileConfig) error {
	var cfg zap.Config

	if environment == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if l, err := zapcore.ParseLevel(level); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(l)
	}

	var opts []zap.Option
	var sink *lumberjack.Logger

	if file.Enabled && file.Path != "" {
		if err := os.MkdirAll(filepath.Dir(file.Path), 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}

		sink = &lumberjack.Logger{
			Filename:   file.Path,
			MaxSize:    file.MaxSize,
			MaxBackups: file.MaxBackups,
			MaxAge:     file.MaxAge,
			Compress:   file.Compress,
			LocalTime:  true,
		}

		fileEncoderCfg := zap.NewProductionEncoderConfig()
		fileEncoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		fileCore := zapcore.NewCore(zapcore.NewJSONEncoder(fileEncoderCfg), zapcore.AddSync(sink), cfg.Level)

		opts = append(opts, zap.WrapCore(func(c zapcore.Core) zapcore.Core {
			return zapcore.NewTee(c, fileCore)
		}))
	}

	logger, err := cfg.Build(opts...)
	if err != nil {
		return err
	}

	closeFileSink()
	globalLogger = logger
	fileSink = sink
	return nil
}

// Get returns the global logger instance.
// If not initialized, it returns a no-op logger to prevent panics.
func Get() *zap.Logger {
	if globalLogger == nil {
		return zap.NewNop()
	}
	return globalLogger
}

// Sync flushes any buffered log entries and closes the log file, if any.
func Sync() {
	if globalLogger != nil {
		_ = globalLogger.Sync()
	}
	closeFileSink()
}

func closeFileSink() {
	if fileSink != nil {
		_ = fileSink.Close()
		fileSink = nil
	}
}
