package sink

import (
	"github.com/DeBrosOfficial/mongolog/pkg/record"
	"go.uber.org/zap/zapcore"
)

// Core binds a Sink to zap. Enabled is the pre-formatting filter: zap
// consults it before rendering a message, so rejected entries cost one
// comparison. Write hands accepted entries to Emit and never reports an
// error; Sync flushes the sink.
type Core struct {
	sink    *Sink
	enabler zapcore.LevelEnabler
	fields  []zapcore.Field
}

var _ zapcore.Core = (*Core)(nil)

// NewCore wraps s. enabler is the facade's own, mutable level; nil leaves
// filtering to the sink's minimum alone.
func NewCore(s *Sink, enabler zapcore.LevelEnabler) *Core {
	return &Core{sink: s, enabler: enabler}
}

func (c *Core) Enabled(lvl zapcore.Level) bool {
	if c.enabler != nil && !c.enabler.Enabled(lvl) {
		return false
	}
	return c.sink.Accepts(record.FromZapLevel(lvl))
}

func (c *Core) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	clone.fields = append(c.fields[:len(c.fields):len(c.fields)], fields...)
	return &clone
}

func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write maps the zap logger name onto the record source.
func (c *Core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	var attrs map[string]any
	if len(c.fields)+len(fields) > 0 {
		enc := zapcore.NewMapObjectEncoder()
		for _, f := range c.fields {
			f.AddTo(enc)
		}
		for _, f := range fields {
			f.AddTo(enc)
		}
		attrs = enc.Fields
	}

	c.sink.Emit(Entry{
		Severity: record.FromZapLevel(ent.Level),
		Source:   ent.LoggerName,
		Message:  ent.Message,
		Fields:   attrs,
	})
	return nil
}

func (c *Core) Sync() error {
	c.sink.Flush()
	return nil
}
