package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/stcorp/muninn-geoms/pkg/geoms"
)

// ServiceName is attached to every structured log line.
const ServiceName = "muninn-geoms"

// StructuredConfig holds StructuredLogger configuration.
type StructuredConfig struct {
	Verbose    bool
	Pretty     bool // zerolog console writer instead of JSON
	Output     io.Writer
	WithCaller bool
}

// StructuredLogger adapts zerolog to geoms.Logger.
// Verbose maps to debug level, Info to info and Error to error.
type StructuredLogger struct {
	zlog zerolog.Logger
}

// NewStructuredLogger creates a StructuredLogger. Output defaults to stderr.
func NewStructuredLogger(cfg StructuredConfig) *StructuredLogger {
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339}
	}

	level := zerolog.InfoLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}

	zctx := zerolog.New(output).Level(level).With().
		Timestamp().
		Str("service", ServiceName)
	if cfg.WithCaller {
		zctx = zctx.Caller()
	}
	return &StructuredLogger{zlog: zctx.Logger()}
}

// With returns a logger that adds key=value to every line.
func (l *StructuredLogger) With(key string, value interface{}) *StructuredLogger {
	return &StructuredLogger{zlog: l.zlog.With().Interface(key, value).Logger()}
}

// Zerolog returns the underlying zerolog logger.
func (l *StructuredLogger) Zerolog() *zerolog.Logger {
	return &l.zlog
}

func (l *StructuredLogger) Verbose(format string, args ...interface{}) {
	l.zlog.Debug().Msg(sprintf(format, args))
}

func (l *StructuredLogger) Info(format string, args ...interface{}) {
	l.zlog.Info().Msg(sprintf(format, args))
}

func (l *StructuredLogger) Error(format string, args ...interface{}) {
	l.zlog.Error().Msg(sprintf(format, args))
}

func sprintf(format string, args []interface{}) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

// New returns the logger selected by format: "json" for StructuredLogger,
// anything else for ConsoleLogger.
func New(format string, verbose bool, out io.Writer) geoms.Logger {
	if out == nil {
		out = os.Stderr
	}
	if format == "json" {
		return NewStructuredLogger(StructuredConfig{Verbose: verbose, Output: out})
	}
	return NewConsoleLoggerTo(out, verbose)
}

var (
	_ geoms.Logger = (*ConsoleLogger)(nil)
	_ geoms.Logger = (*StructuredLogger)(nil)
	_ geoms.Logger = (*NullLogger)(nil)
)
