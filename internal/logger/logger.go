package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects the encoder and verbosity.
type Options struct {
	// Format is "json" for production-style output; anything else gives
	// human readable console lines.
	Format string
	Level  string
	// Color enables colored level names in console output.
	Color bool
}

// New builds a logger writing to stderr. An unparsable level falls back to warn.
func New(opts Options) (*zap.Logger, error) {
	var config zap.Config

	if opts.Format == "json" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.TimeKey = ""
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		if opts.Color {
			config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
		config.DisableStacktrace = true
	}

	level := zapcore.WarnLevel
	if l, err := zapcore.ParseLevel(opts.Level); err == nil {
		level = l
	}
	config.Level = zap.NewAtomicLevelAt(level)

	return config.Build()
}

// Sync flushes buffered entries, ignoring the errors stderr reports on some
// platforms.
func Sync(l *zap.Logger) {
	if l != nil {
		_ = l.Sync()
	}
}
