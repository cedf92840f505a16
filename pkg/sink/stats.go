package sink

import "go.uber.org/atomic"

type stats struct {
	accepted      atomic.Uint64
	persisted     atomic.Uint64
	failed        atomic.Uint64
	flushes       atomic.Uint64
	consoleErrors atomic.Uint64
}

// Stats is a snapshot of the sink's counters. Persisted and Failed count
// documents, not insert calls.
type Stats struct {
	Accepted      uint64
	Persisted     uint64
	Failed        uint64
	Flushes       uint64
	ConsoleErrors uint64
}

// Stats returns the current counters.
func (s *Sink) Stats() Stats {
	return Stats{
		Accepted:      s.stats.accepted.Load(),
		Persisted:     s.stats.persisted.Load(),
		Failed:        s.stats.failed.Load(),
		Flushes:       s.stats.flushes.Load(),
		ConsoleErrors: s.stats.consoleErrors.Load(),
	}
}
