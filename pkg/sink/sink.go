// Package sink turns accepted log events into persisted records.
//
// A Sink mirrors every accepted event to a local console stream and writes
// it to a document store collection. Emit is synchronous and safe for any
// number of concurrent callers; persistence failures are absorbed here and
// never reach the call site that produced the log line.
package sink

import (
	"context"
	"os"
	"sync"
	"time"

	apperrors "github.com/DeBrosOfficial/mongolog/pkg/errors"
	"github.com/DeBrosOfficial/mongolog/pkg/logging"
	"github.com/DeBrosOfficial/mongolog/pkg/record"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	opInsertOne  = "insert_one"
	opInsertMany = "insert_many"

	// DefaultBatchSize is the number of buffered records that triggers a
	// flush when Config.BatchSize is zero.
	DefaultBatchSize = 100

	// DefaultSource names records whose entry carries no source.
	DefaultSource = "app"
)

// Target is the persistence collaborator: one collection of a document store.
// Implementations must be safe for concurrent use.
type Target interface {
	InsertOne(ctx context.Context, rec record.Record) error
	InsertMany(ctx context.Context, recs []record.Record) error
}

// Entry is one accepted log statement as handed over by the facade.
type Entry struct {
	Severity record.Severity
	Source   string
	Message  string // already rendered
	Fields   map[string]any
}

// Config holds the settings of a Sink. The minimum severity is fixed for the
// life of the sink.
type Config struct {
	Minimum   record.Severity
	Buffered  bool
	BatchSize int // buffered mode only; 0 means DefaultBatchSize

	// WriteTimeout bounds how long Emit and Flush wait for one write; 0 waits
	// indefinitely. A write that times out is counted in Stats().Failed and
	// its context is cancelled, but the server may already hold it: it can
	// still commit, possibly after a later write from the same goroutine.
	WriteTimeout time.Duration

	DefaultSource string // used when an entry carries no source; "" means DefaultSource
	InstanceID    string // attached to every record as fields.instance

	Console zapcore.WriteSyncer // defaults to stdout
	Clock   func() time.Time    // defaults to time.Now
}

// Sink persists accepted log events to a Target.
type Sink struct {
	target        Target
	minimum       record.Severity
	buffered      bool
	batchSize     int
	writeTimeout  time.Duration
	defaultSource string
	instanceID    string
	console       zapcore.WriteSyncer
	now           func() time.Time
	logger        *logging.ColoredLogger

	mu      sync.Mutex // guards pending
	pending []record.Record
	flushMu sync.Mutex // held for the duration of one bulk insert

	stats stats
}

// New creates a Sink writing to target. logger receives the sink's own
// diagnostics and must not route back into this sink; nil discards them.
func New(target Target, cfg Config, logger *logging.ColoredLogger) (*Sink, error) {
	if target == nil {
		return nil, apperrors.NewConfigError("sink.target", "persistence target is required")
	}
	if !cfg.Minimum.Valid() {
		return nil, apperrors.NewConfigError("sink.min_level", "invalid minimum severity "+cfg.Minimum.String())
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	s := &Sink{
		target:        target,
		minimum:       cfg.Minimum,
		buffered:      cfg.Buffered,
		batchSize:     cfg.BatchSize,
		writeTimeout:  cfg.WriteTimeout,
		defaultSource: cfg.DefaultSource,
		instanceID:    cfg.InstanceID,
		console:       cfg.Console,
		now:           cfg.Clock,
		logger:        logger,
	}
	if s.batchSize <= 0 {
		s.batchSize = DefaultBatchSize
	}
	if s.defaultSource == "" {
		s.defaultSource = DefaultSource
	}
	if s.writeTimeout < 0 {
		s.writeTimeout = 0
	}
	if s.console == nil {
		s.console = zapcore.Lock(os.Stdout)
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s, nil
}

// Minimum returns the severity threshold fixed at construction.
func (s *Sink) Minimum() record.Severity {
	return s.minimum
}

// Buffered reports whether records are batched until Flush.
func (s *Sink) Buffered() bool {
	return s.buffered
}

// Accepts reports whether an event at sev would be processed.
func (s *Sink) Accepts(sev record.Severity) bool {
	return sev.AtLeast(s.minimum)
}

// Emit handles one log statement: the console line is written first, then the
// record is persisted (or buffered). Emit never fails and never panics on a
// failed write; in unbuffered mode it returns once the write has resolved.
func (s *Sink) Emit(e Entry) {
	if !s.Accepts(e.Severity) {
		return
	}
	s.stats.accepted.Inc()

	now := s.now()
	source := e.Source
	if source == "" {
		source = s.defaultSource
	}
	s.writeConsole(now, source, e.Severity, e.Message)

	rec := record.Build(e.Severity, source, e.Message, now)
	rec.Fields = record.SafeFields(s.fields(e.Fields))

	if s.buffered {
		s.enqueue(rec)
		return
	}
	s.persist(opInsertOne, 1, func(ctx context.Context) error {
		return s.target.InsertOne(ctx, rec)
	})
}

// Flush force-writes buffered records with a single bulk insert. The batch
// is discarded once the attempt resolves, whether it succeeded or not.
// Without buffering Flush does nothing.
func (s *Sink) Flush() {
	if !s.buffered {
		return
	}
	s.flushMu.Lock()
	defer s.flushMu.Unlock()
	s.flushPending()
}

// flushPending swaps the buffer out and bulk inserts it. flushMu must be held.
func (s *Sink) flushPending() {
	s.mu.Lock()
	batch := s.pending
	s.pending = nil
	s.mu.Unlock()

	if len(batch) == 0 {
		return
	}
	s.stats.flushes.Inc()
	s.persist(opInsertMany, len(batch), func(ctx context.Context) error {
		return s.target.InsertMany(ctx, batch)
	})
}

// Pending returns the number of buffered records not yet flushed.
func (s *Sink) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// enqueue buffers rec and, once the buffer holds a full batch, writes it from
// the calling goroutine. An emitter never waits for another goroutine's bulk
// insert: while one is in flight the records stay buffered, and the goroutine
// holding flushMu writes them too if they fill another batch meanwhile.
func (s *Sink) enqueue(rec record.Record) {
	s.mu.Lock()
	s.pending = append(s.pending, rec)
	full := len(s.pending) >= s.batchSize
	s.mu.Unlock()

	if !full || !s.flushMu.TryLock() {
		return
	}
	defer s.flushMu.Unlock()
	for full {
		s.flushPending()
		full = s.Pending() >= s.batchSize
	}
}

func (s *Sink) persist(op string, count int, write func(ctx context.Context) error) {
	err := blockOn(s.writeTimeout, write)
	if err == nil {
		s.stats.persisted.Add(uint64(count))
		return
	}
	s.stats.failed.Add(uint64(count))
	werr := apperrors.NewWriteError(op, count, err)
	s.logger.ComponentWarn(logging.ComponentSink, "log write dropped",
		zap.String("operation", op),
		zap.Int("documents", count),
		zap.String("code", werr.Code()),
		zap.Bool("timeout", apperrors.IsTimeout(err)),
		zap.Error(err),
	)
}

func (s *Sink) fields(in map[string]any) map[string]any {
	if s.instanceID == "" {
		return in
	}
	out := make(map[string]any, len(in)+1)
	for k, v := range in {
		out[k] = v
	}
	out["instance"] = s.instanceID
	return out
}
