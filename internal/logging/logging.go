package logging

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/eugenenazirov/agency-title/internal/action"
)

// Option configures New.
type Option func(*options)

type options struct {
	level       string
	annotations io.Writer
}

// WithLevel sets the minimum level ("debug", "info", "warn", "error").
func WithLevel(level string) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithAnnotations mirrors log entries to w as workflow commands.
func WithAnnotations(w io.Writer) Option {
	return func(o *options) {
		o.annotations = w
	}
}

// New creates a production-ready structured logger configured for JSON output
// on stderr, optionally tee'd into runner annotations.
func New(opts ...Option) (*zap.Logger, error) {
	o := options{level: "info"}
	for _, opt := range opts {
		opt(&o)
	}

	level, err := zapcore.ParseLevel(o.level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Encoding = "json"
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.StacktraceKey = "stacktrace"
	cfg.DisableStacktrace = false

	var zapOpts []zap.Option
	if o.annotations != nil {
		annotations := NewAnnotationCore(action.NewCommands(o.annotations), level)
		zapOpts = append(zapOpts, zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return zapcore.NewTee(core, annotations)
		}))
	}

	logger, err := cfg.Build(zapOpts...)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
