// Package logging builds the zap loggers used by lintgate and adapts them to
// the domain's warning sink.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Formats accepted by Options.Format.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Options configures New.
type Options struct {
	Writer io.Writer
	Level  string
	Format string
}

// New builds a logger writing to opts.Writer (stderr when nil). The console
// format omits timestamps so lines read cleanly inside CI build logs.
func New(opts Options) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if opts.Level != "" {
		if err := level.UnmarshalText([]byte(strings.ToLower(opts.Level))); err != nil {
			return nil, fmt.Errorf("unknown log level %q: %w", opts.Level, err)
		}
	}

	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	var enc zapcore.Encoder
	switch opts.Format {
	case "", FormatConsole:
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = ""
		cfg.CallerKey = ""
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(cfg)
	case FormatJSON:
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	default:
		return nil, fmt.Errorf("unknown log format %q (valid: console, json)", opts.Format)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), level)
	return zap.New(core), nil
}

// ViolationsLogger implements domain.WarningLogger on top of zap.
type ViolationsLogger struct {
	logger *zap.Logger
}

// NewViolationsLogger wraps logger. A nil logger discards everything.
func NewViolationsLogger(logger *zap.Logger) *ViolationsLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ViolationsLogger{logger: logger}
}

// Warn writes msg at warning level.
func (l *ViolationsLogger) Warn(msg string) {
	l.logger.Warn(msg)
}

// Recorder is an in-memory domain.WarningLogger that optionally forwards to
// another one.
type Recorder struct {
	mu    sync.Mutex
	lines []string
	next  interface{ Warn(string) }
}

// NewRecorder creates a Recorder forwarding to next, which may be nil.
func NewRecorder(next interface{ Warn(string) }) *Recorder {
	return &Recorder{next: next}
}

// Warn records msg.
func (r *Recorder) Warn(msg string) {
	r.mu.Lock()
	r.lines = append(r.lines, msg)
	r.mu.Unlock()
	if r.next != nil {
		r.next.Warn(msg)
	}
}

// Lines returns a copy of the recorded messages.
func (r *Recorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lines...)
}
