// Package logger builds the diagnostic logger. Story text owns stdout, so
// diagnostics go to stderr unless CLANK_LOG_OUTPUT names a file.
package logger

import (
	"fmt"
	"os"
	"strings"

	"clank/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger for cfg.LogLevel, cfg.LogEncoding and cfg.LogOutput.
// An unknown level falls back to info and an unknown encoding to console.
func New(cfg config.Config) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if cfg.LogLevel != "" {
		parsed, err := zapcore.ParseLevel(strings.ToLower(cfg.LogLevel))
		if err != nil {
			fmt.Fprintf(os.Stderr, "clank: unknown log level %q, logging at info\n", cfg.LogLevel)
		} else {
			level = parsed
		}
	}

	output := cfg.LogOutput
	if output == "" {
		output = "stderr"
	}
	sink, _, err := zap.Open(output)
	if err != nil {
		return nil, fmt.Errorf("open log output %s: %w", output, err)
	}

	core := zapcore.NewCore(encoder(cfg.LogEncoding), sink, level)
	return zap.New(core), nil
}

func encoder(name string) zapcore.Encoder {
	ec := zap.NewProductionEncoderConfig()
	ec.TimeKey = "timestamp"
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	if strings.EqualFold(name, "json") {
		return zapcore.NewJSONEncoder(ec)
	}
	return zapcore.NewConsoleEncoder(ec)
}
