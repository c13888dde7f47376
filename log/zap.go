// Package log provides a thin wrapper around zap.
// All application code logs through this package so that log level,
// format and filter rules can be configured in one place.
package log

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"moul.io/zapfilter"
)

type (
	Level  = zapcore.Level
	Field  = zap.Field
	Option = zap.Option
)

const (
	DebugLevel = zapcore.DebugLevel
	InfoLevel  = zapcore.InfoLevel
	WarnLevel  = zapcore.WarnLevel
	ErrorLevel = zapcore.ErrorLevel
	FatalLevel = zapcore.FatalLevel
)

// function aliases to the zap counterparts
var (
	Skip          = zap.Skip
	Bool          = zap.Bool
	String        = zap.String
	Int           = zap.Int
	Int32         = zap.Int32
	Int64         = zap.Int64
	Uint32        = zap.Uint32
	Float32       = zap.Float32
	Float64       = zap.Float64
	Time          = zap.Time
	Duration      = zap.Duration
	Any           = zap.Any
	ErrorField    = zap.Error
	WithCaller    = zap.WithCaller
	AddCallerSkip = zap.AddCallerSkip
	AddStacktrace = zap.AddStacktrace
)

type Logger struct {
	l     *zap.Logger
	level Level
}

func (l *Logger) Debug(msg string, fields ...Field) { l.l.Debug(msg, fields...) }
func (l *Logger) Info(msg string, fields ...Field)  { l.l.Info(msg, fields...) }
func (l *Logger) Warn(msg string, fields ...Field)  { l.l.Warn(msg, fields...) }
func (l *Logger) Error(msg string, fields ...Field) { l.l.Error(msg, fields...) }
func (l *Logger) Fatal(msg string, fields ...Field) { l.l.Fatal(msg, fields...) }

func (l *Logger) Named(name string) *Logger {
	return &Logger{l: l.l.Named(name), level: l.level}
}

func (l *Logger) DebugEnabled() bool {
	return l.level.Enabled(zapcore.DebugLevel)
}

func (l *Logger) Sync() error {
	return l.l.Sync()
}

// New creates a Logger with a JSON encoder (production style).
func New(writer io.Writer, level Level, opts ...Option) *Logger {
	return build(writer, level, prodEncoder(), opts...)
}

// DevLogger creates a Logger with a console encoder for local development.
func DevLogger(writer io.Writer, level Level, opts ...Option) *Logger {
	cfg := zap.NewDevelopmentEncoderConfig()
	enc := zapcore.NewConsoleEncoder(cfg)
	return build(writer, level, enc, opts...)
}

// NewWithFilters creates a JSON Logger whose output is restricted by
// zapfilter rules (e.g. "debug:simulation.* info:*").
func NewWithFilters(writer io.Writer, level Level, rules string, opts ...Option) *Logger {
	if writer == nil {
		panic("the writer is nil")
	}
	core := zapcore.NewCore(
		prodEncoder(),
		zapcore.AddSync(writer),
		level,
	)
	filtered := zapfilter.NewFilteringCore(core, zapfilter.MustParseRules(rules))
	return &Logger{l: zap.New(filtered, opts...), level: level}
}

func prodEncoder() zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapcore.NewJSONEncoder(cfg)
}

func build(writer io.Writer, level Level, enc zapcore.Encoder, opts ...Option) *Logger {
	if writer == nil {
		panic("the writer is nil")
	}
	core := zapcore.NewCore(
		enc,
		zapcore.AddSync(writer),
		level,
	)
	return &Logger{l: zap.New(core, opts...), level: level}
}

func ParseLevel(text string) (Level, error) {
	return zapcore.ParseLevel(text)
}

var std = New(os.Stderr, InfoLevel)

func Default() *Logger { return std }

// ResetDefault replaces the package-level default logger.
func ResetDefault(l *Logger) {
	std = l
}

func Debug(msg string, fields ...Field) { std.l.Debug(msg, fields...) }
func Info(msg string, fields ...Field)  { std.l.Info(msg, fields...) }
func Warn(msg string, fields ...Field)  { std.l.Warn(msg, fields...) }
func Error(msg string, fields ...Field) { std.l.Error(msg, fields...) }
func Fatal(msg string, fields ...Field) { std.l.Fatal(msg, fields...) }
