// Package facade installs a Sink as the process-wide logging backend.
//
// Installation happens once per process. After Install, zap.L() and zap.S()
// route every accepted call site to the sink; a second Install fails and the
// first sink stays in place. There is no uninstall: the backend lives until
// the process exits.
package facade

import (
	"sync"

	apperrors "github.com/DeBrosOfficial/mongolog/pkg/errors"
	"github.com/DeBrosOfficial/mongolog/pkg/record"
	"github.com/DeBrosOfficial/mongolog/pkg/sink"
	"go.uber.org/zap"
)

// State is the registration state of the process.
type State int

const (
	Unregistered State = iota
	Registered
)

func (s State) String() string {
	if s == Registered {
		return "registered"
	}
	return "unregistered"
}

type registration struct {
	sink           *sink.Sink
	logger         *zap.Logger
	level          zap.AtomicLevel
	restoreGlobals func()
	restoreStdLog  func()
}

var (
	mu        sync.Mutex
	installed *registration
)

type options struct {
	name    string
	stdLog  bool
	zapOpts []zap.Option
}

// Option customizes Install.
type Option func(*options)

// WithName names the root logger; unnamed call sites use it as their source.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithStdLog also routes the standard library's log package into the sink,
// at Info.
func WithStdLog() Option {
	return func(o *options) { o.stdLog = true }
}

// WithZapOptions passes options to the root zap logger (hooks, caller
// annotation, ...).
func WithZapOptions(opts ...zap.Option) Option {
	return func(o *options) { o.zapOpts = append(o.zapOpts, opts...) }
}

// Install makes s the process-wide logging backend with the given facade
// level and returns the root logger. It succeeds exactly once per process;
// later calls return a RegistrationError wrapping ErrAlreadyRegistered.
func Install(s *sink.Sink, minimum record.Severity, opts ...Option) (*zap.Logger, error) {
	if s == nil {
		return nil, apperrors.NewConfigError("sink", "cannot install a nil sink")
	}
	if !minimum.Valid() {
		return nil, apperrors.NewConfigError("sink.min_level", "invalid facade level "+minimum.String())
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	mu.Lock()
	defer mu.Unlock()
	if installed != nil {
		return nil, apperrors.NewRegistrationError()
	}

	level := zap.NewAtomicLevelAt(minimum.ZapLevel())
	logger := zap.New(sink.NewCore(s, level), o.zapOpts...)
	if o.name != "" {
		logger = logger.Named(o.name)
	}

	reg := &registration{
		sink:           s,
		logger:         logger,
		level:          level,
		restoreGlobals: zap.ReplaceGlobals(logger),
	}
	if o.stdLog {
		reg.restoreStdLog = zap.RedirectStdLog(logger)
	}
	installed = reg
	return logger, nil
}

// CurrentState reports whether a backend has been installed.
func CurrentState() State {
	mu.Lock()
	defer mu.Unlock()
	if installed == nil {
		return Unregistered
	}
	return Registered
}

// Logger returns the installed root logger, or a no-op logger before Install.
func Logger() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	if installed == nil {
		return zap.NewNop()
	}
	return installed.logger
}

// SetLevel changes the facade level. The sink's own minimum is not affected,
// so records below it stay filtered whatever the facade level.
func SetLevel(sev record.Severity) error {
	if !sev.Valid() {
		return apperrors.NewConfigError("level", "invalid severity "+sev.String())
	}
	mu.Lock()
	defer mu.Unlock()
	if installed == nil {
		return apperrors.ErrNotRegistered
	}
	installed.level.SetLevel(sev.ZapLevel())
	return nil
}

// Level returns the current facade level.
func Level() (record.Severity, error) {
	mu.Lock()
	defer mu.Unlock()
	if installed == nil {
		return 0, apperrors.ErrNotRegistered
	}
	return record.FromZapLevel(installed.level.Level()), nil
}

// Flush syncs the installed logger, forcing buffered records out. It is a
// best-effort shutdown hook and a no-op before Install.
func Flush() {
	mu.Lock()
	reg := installed
	mu.Unlock()
	if reg != nil {
		_ = reg.logger.Sync()
	}
}
