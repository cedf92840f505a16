package record

import (
	"fmt"
	"strings"

	apperrors "github.com/DeBrosOfficial/mongolog/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap/zapcore"
)

// Severity classifies the importance of a log event. Smaller values are more
// severe: Error > Warn > Info > Debug > Trace.
type Severity uint8

const (
	Error Severity = iota + 1
	Warn
	Info
	Debug
	Trace
)

// TraceLevel is the zap level used for Trace records. zap has no level below
// Debug, so trace logging goes through Logger.Log(TraceLevel, ...).
const TraceLevel = zapcore.DebugLevel - 1

var severityNames = map[Severity]string{
	Error: "ERROR",
	Warn:  "WARN",
	Info:  "INFO",
	Debug: "DEBUG",
	Trace: "TRACE",
}

// Severities lists every severity, most severe first.
func Severities() []Severity {
	return []Severity{Error, Warn, Info, Debug, Trace}
}

// Valid reports whether s is one of the fixed severities.
func (s Severity) Valid() bool {
	return s >= Error && s <= Trace
}

func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Severity(%d)", uint8(s))
}

// AtLeast reports whether s is at least as severe as min.
func (s Severity) AtLeast(min Severity) bool {
	return s.Valid() && s <= min
}

// ParseSeverity converts a case-insensitive name ("error", "warn", "warning",
// "info", "debug", "trace") into a Severity.
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "error":
		return Error, nil
	case "warn", "warning":
		return Warn, nil
	case "info":
		return Info, nil
	case "debug":
		return Debug, nil
	case "trace":
		return Trace, nil
	}
	return 0, apperrors.NewInvalidArgumentError("severity", fmt.Sprintf("unknown severity %q", name))
}

// MarshalBSONValue stores a severity as its name.
func (s Severity) MarshalBSONValue() (byte, []byte, error) {
	if !s.Valid() {
		return 0, nil, apperrors.NewInvalidArgumentError("severity", "cannot encode "+s.String())
	}
	typ, data, err := bson.MarshalValue(s.String())
	return byte(typ), data, err
}

// UnmarshalBSONValue decodes a stored name; unknown names are rejected.
func (s *Severity) UnmarshalBSONValue(typ byte, data []byte) error {
	var name string
	if err := bson.UnmarshalValue(bson.Type(typ), data, &name); err != nil {
		return err
	}
	parsed, err := ParseSeverity(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalText renders the name, so JSON carries "INFO" rather than a number.
func (s Severity) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, apperrors.NewInvalidArgumentError("severity", "cannot encode "+s.String())
	}
	return []byte(s.String()), nil
}

// UnmarshalText parses a severity name.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// FromZapLevel maps a zap level onto the severity set. DPanic, Panic and
// Fatal collapse into Error; anything below Debug is Trace.
func FromZapLevel(lvl zapcore.Level) Severity {
	switch {
	case lvl >= zapcore.ErrorLevel:
		return Error
	case lvl == zapcore.WarnLevel:
		return Warn
	case lvl == zapcore.InfoLevel:
		return Info
	case lvl == zapcore.DebugLevel:
		return Debug
	default:
		return Trace
	}
}

// ZapLevel returns the zap level a call site uses to log at s.
func (s Severity) ZapLevel() zapcore.Level {
	switch s {
	case Error:
		return zapcore.ErrorLevel
	case Warn:
		return zapcore.WarnLevel
	case Info:
		return zapcore.InfoLevel
	case Debug:
		return zapcore.DebugLevel
	default:
		return TraceLevel
	}
}
