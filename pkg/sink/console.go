package sink

import (
	"time"

	"github.com/DeBrosOfficial/mongolog/pkg/record"
)

// FormatLine renders the console mirror of one record:
//
//	[2024-03-09T14:30:05.123456789Z] billing - WARN - Warning 2
func FormatLine(t time.Time, source string, sev record.Severity, message string) string {
	return "[" + t.UTC().Format(time.RFC3339Nano) + "] " + source + " - " + sev.String() + " - " + message + "\n"
}

// writeConsole is best effort; a failing stream is counted and otherwise ignored.
func (s *Sink) writeConsole(t time.Time, source string, sev record.Severity, message string) {
	if _, err := s.console.Write([]byte(FormatLine(t, source, sev, message))); err != nil {
		s.stats.consoleErrors.Inc()
	}
}
