// Package logger builds the zap loggers used by the conjen command.
package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configures New.
type Options struct {
	// Verbose lowers the level to debug, which logs every written file.
	Verbose bool
	// JSON selects structured JSON output instead of the console encoder.
	JSON bool
	// Output receives the log lines. Defaults to os.Stderr.
	Output io.Writer
}

// New returns a logger for opts.
func New(opts Options) *zap.Logger {
	level := zap.InfoLevel
	if opts.Verbose {
		level = zap.DebugLevel
	}
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	return zap.New(zapcore.NewCore(encoder(opts.JSON), zapcore.AddSync(out), level))
}

// encoder returns the production JSON encoder or a terse console encoder
// without timestamps or caller.
func encoder(json bool) zapcore.Encoder {
	if json {
		return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	cfg.CallerKey = ""
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewConsoleEncoder(cfg)
}
