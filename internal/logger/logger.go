// Package logger builds the zap loggers used by the CLI and attaches analysis fields.
package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Structured log field keys
const (
	FieldAnalysisID = "analysis_id"
	FieldSource     = "source"
	FieldJob        = "job_title"
)

// New builds a console or JSON logger writing to stderr, so stdout stays free for results.
func New(json bool, debug bool) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	encoding := "console"

	if json {
		encoding = "json"
	}

	if debug {
		level = zapcore.DebugLevel
	}

	cfg := zap.Config{
		Encoding:         encoding,
		Level:            zap.NewAtomicLevelAt(level),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey: "msg",

			LevelKey:    "level",
			EncodeLevel: zapcore.LowercaseLevelEncoder,

			TimeKey:    "time",
			EncodeTime: zapcore.RFC3339TimeEncoder,

			CallerKey:    "caller",
			EncodeCaller: zapcore.ShortCallerEncoder,
		},
	}
	return cfg.Build()
}

// AnalysisFields returns the fields that identify one analysis. Empty values are omitted.
func AnalysisFields(analysisID, source string) []zap.Field {
	fields := make([]zap.Field, 0, 2)
	if id := strings.TrimSpace(analysisID); id != "" {
		fields = append(fields, zap.String(FieldAnalysisID, id))
	}
	if src := strings.TrimSpace(source); src != "" {
		fields = append(fields, zap.String(FieldSource, src))
	}
	return fields
}

// WithFields attaches fields to logger, defaulting to a no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(fields) == 0 {
		return logger
	}
	return logger.With(fields...)
}

// TruncateForLog shortens s to limit runes, appending an ellipsis when truncated.
func TruncateForLog(s string, limit int) string {
	s = strings.TrimSpace(s)
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
