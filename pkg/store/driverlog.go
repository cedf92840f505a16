package store

import (
	"strings"

	"github.com/DeBrosOfficial/mongolog/pkg/logging"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"
)

// driverLogSink routes the driver's own log messages to the diagnostics
// logger.
type driverLogSink struct {
	logger *logging.ColoredLogger
}

var _ options.LogSink = driverLogSink{}

// NewDriverLogSink returns an options.LogSink writing to logger.
func NewDriverLogSink(logger *logging.ColoredLogger) options.LogSink {
	return driverLogSink{logger: logger}
}

// Info logs a driver message. The driver uses level 1 for info and 2 for debug.
func (s driverLogSink) Info(level int, message string, keysAndValues ...any) {
	fields := append(kvFields(keysAndValues), zap.Int("driver_level", level))
	if level > int(options.LogLevelInfo) {
		s.logger.ComponentDebug(logging.ComponentStore, message, fields...)
		return
	}
	s.logger.ComponentInfo(logging.ComponentStore, message, fields...)
}

// Error logs a driver error.
func (s driverLogSink) Error(err error, message string, keysAndValues ...any) {
	s.logger.ComponentError(logging.ComponentStore, message, append(kvFields(keysAndValues), zap.Error(err))...)
}

func kvFields(kv []any) []zap.Field {
	fields := make([]zap.Field, 0, len(kv)/2+1)
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		fields = append(fields, zap.Any(key, kv[i+1]))
	}
	return fields
}

func driverLevel(name string) (options.LogLevel, bool) {
	switch strings.ToLower(name) {
	case "info":
		return options.LogLevelInfo, true
	case "debug":
		return options.LogLevelDebug, true
	default:
		return 0, false
	}
}
