package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/voxel51/fiftyone-links/internal/links"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "FIFTYONE_LINKS_LOG_LEVEL"

// Initialize creates a new logger with the specified level.
// If level is empty, it checks FIFTYONE_LINKS_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
func Initialize(level string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(ParseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// ParseLevel maps a level name to a zap level.
// Unknown names map to info, since the caller explicitly asked for output.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// InitializeFromEnv initializes the logger from the FIFTYONE_LINKS_LOG_LEVEL
// environment variable.
func InitializeFromEnv() error {
	return Initialize("")
}

// SetLogger replaces the global logger. Intended for tests.
func SetLogger(l *zap.Logger) {
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Fallback to silent logger if not initialized
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogCommand logs a CLI command invocation
func LogCommand(name string, args []string) {
	Debug("Command invoked",
		zap.String("command", name),
		zap.Strings("args", args),
	)
}

// LogConfigLoaded logs where configuration came from
func LogConfigLoaded(path string, fromDisk bool) {
	Info("Config loaded",
		zap.String("path", path),
		zap.Bool("from_disk", fromDisk),
	)
}

// LogCheckResult logs the outcome of a link check, one warning per problem
func LogCheckResult(report *links.Report) {
	for _, ce := range report.Errors {
		Warn("Link check problem",
			zap.String("key", ce.Key),
			zap.String("url", ce.URL),
			zap.String("type", ce.Type.String()),
			zap.String("detail", ce.Message),
		)
	}
	Info("Link check complete",
		zap.Int("checked", report.Checked),
		zap.Int("problems", len(report.Errors)),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
