// Package logging builds the diagnostics logger used by the sink, the store
// and the CLI to report on themselves. Diagnostics go to stderr and must never
// be routed into the sink.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ANSI color codes
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	Red          = "\033[31m"
	Green        = "\033[32m"
	Yellow       = "\033[33m"
	Cyan         = "\033[36m"
	White        = "\033[37m"
	Gray         = "\033[90m"
	BrightRed    = "\033[91m"
	BrightYellow = "\033[93m"
	BrightBlue   = "\033[94m"
	BrightWhite  = "\033[97m"
)

// Component represents different parts of the system for color coding
type Component string

const (
	ComponentSink   Component = "SINK"
	ComponentStore  Component = "STORE"
	ComponentFacade Component = "FACADE"
	ComponentCLI    Component = "CLI"
)

func getComponentColor(component Component) string {
	switch component {
	case ComponentSink:
		return BrightBlue
	case ComponentStore:
		return Green
	case ComponentFacade:
		return Cyan
	case ComponentCLI:
		return Yellow
	default:
		return White
	}
}

func getLevelColor(level zapcore.Level) string {
	switch level {
	case zapcore.DebugLevel:
		return Gray
	case zapcore.InfoLevel:
		return BrightWhite
	case zapcore.WarnLevel:
		return BrightYellow
	case zapcore.ErrorLevel:
		return BrightRed
	case zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		return Red
	default:
		return White
	}
}

// Options configures a diagnostics logger.
type Options struct {
	Level  string    // debug, info, warn, error
	Format string    // console, json
	Colors bool      // only honoured by the console format
	Output io.Writer // defaults to os.Stderr
}

// ColoredLogger wraps zap.Logger with component-tagged, optionally colored output
type ColoredLogger struct {
	*zap.Logger
	enableColors bool
}

// coloredConsoleEncoder creates a compact console encoder: HH:MM:SS, single
// letter level, caller file without extension.
func coloredConsoleEncoder(enableColors bool) zapcore.Encoder {
	config := zap.NewDevelopmentEncoderConfig()

	config.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		timeStr := t.Format("15:04:05")
		if enableColors {
			enc.AppendString(Dim + timeStr + Reset)
		} else {
			enc.AppendString(timeStr)
		}
	}

	config.EncodeLevel = func(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		levelStr := "?"
		switch level {
		case zapcore.DebugLevel:
			levelStr = "D"
		case zapcore.InfoLevel:
			levelStr = "I"
		case zapcore.WarnLevel:
			levelStr = "W"
		case zapcore.ErrorLevel:
			levelStr = "E"
		}
		if enableColors {
			enc.AppendString(getLevelColor(level) + Bold + levelStr + Reset)
		} else {
			enc.AppendString(levelStr)
		}
	}

	config.EncodeCaller = func(caller zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
		file := caller.File
		if idx := strings.LastIndex(file, "/"); idx >= 0 {
			file = file[idx+1:]
		}
		file = strings.TrimSuffix(file, ".go")
		if enableColors {
			enc.AppendString(Dim + file + Reset)
		} else {
			enc.AppendString(file)
		}
	}

	return zapcore.NewConsoleEncoder(config)
}

// ParseLevel converts a level name to a zap level. Unknown names map to info.
func ParseLevel(s string) zapcore.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// New creates a diagnostics logger from opts.
func New(opts Options) (*ColoredLogger, error) {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	var encoder zapcore.Encoder
	colors := opts.Colors
	switch opts.Format {
	case "", "console":
		encoder = coloredConsoleEncoder(colors)
	case "json":
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		colors = false
	default:
		return nil, fmt.Errorf("unknown log format %q", opts.Format)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(out)), ParseLevel(opts.Level))
	return &ColoredLogger{
		Logger:       zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)),
		enableColors: colors,
	}, nil
}

// Wrap tags an existing zap logger, e.g. an observer in tests.
func Wrap(logger *zap.Logger) *ColoredLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ColoredLogger{Logger: logger}
}

// NewNop returns a logger that discards everything.
func NewNop() *ColoredLogger {
	return Wrap(zap.NewNop())
}

func (l *ColoredLogger) tag(component Component, msg string) string {
	if l.enableColors {
		return fmt.Sprintf("%s[%s]%s %s", getComponentColor(component), component, Reset, msg)
	}
	return fmt.Sprintf("[%s] %s", component, msg)
}

// Component-specific logging methods
func (l *ColoredLogger) ComponentInfo(component Component, msg string, fields ...zap.Field) {
	l.Info(l.tag(component, msg), fields...)
}

func (l *ColoredLogger) ComponentWarn(component Component, msg string, fields ...zap.Field) {
	l.Warn(l.tag(component, msg), fields...)
}

func (l *ColoredLogger) ComponentError(component Component, msg string, fields ...zap.Field) {
	l.Error(l.tag(component, msg), fields...)
}

func (l *ColoredLogger) ComponentDebug(component Component, msg string, fields ...zap.Field) {
	l.Debug(l.tag(component, msg), fields...)
}
