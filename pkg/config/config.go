package config

import (
	"time"

	"github.com/DeBrosOfficial/mongolog/pkg/record"
	"github.com/DeBrosOfficial/mongolog/pkg/sink"
	"github.com/DeBrosOfficial/mongolog/pkg/store"
	"github.com/google/uuid"
)

// AutoInstanceID asks for a fresh per-process instance id.
const AutoInstanceID = "auto"

// Config represents the configuration of a mongolog process
type Config struct {
	Mongo   MongoConfig   `yaml:"mongo"`
	Sink    SinkConfig    `yaml:"sink"`
	Logging LoggingConfig `yaml:"logging"`

	// DryRun swaps the document store for an in-memory collection.
	DryRun bool `yaml:"dry_run"`
}

// MongoConfig contains the document store connection settings
type MongoConfig struct {
	URI            string        `yaml:"uri"`             // overridden by MONGO_URL
	Database       string        `yaml:"database"`        // default: logger
	Collection     string        `yaml:"collection"`      // default: logs
	AppName        string        `yaml:"app_name"`        // reported to the server
	ConnectTimeout time.Duration `yaml:"connect_timeout"` // connect and first ping
	DriverLogLevel string        `yaml:"driver_log_level"` // "", info or debug
}

// SinkConfig contains the sink settings
type SinkConfig struct {
	MinLevel      string        `yaml:"min_level"`      // error, warn, info, debug, trace
	Buffered      bool          `yaml:"buffered"`       // batch records until flush
	BatchSize     int           `yaml:"batch_size"`     // buffered mode only
	WriteTimeout  time.Duration `yaml:"write_timeout"`  // 0 waits indefinitely
	DefaultSource string        `yaml:"default_source"` // source for unnamed loggers
	InstanceID    string        `yaml:"instance_id"`    // "auto" generates one
}

// LoggingConfig contains the diagnostics logger configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
	Colors bool   `yaml:"colors"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Mongo: MongoConfig{
			Database:       "logger",
			Collection:     "logs",
			AppName:        "mongolog",
			ConnectTimeout: 10 * time.Second,
		},
		Sink: SinkConfig{
			MinLevel:      "info",
			BatchSize:     sink.DefaultBatchSize,
			WriteTimeout:  10 * time.Second,
			DefaultSource: "app",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			Colors: true,
		},
	}
}

// MinSeverity parses sink.min_level.
func (c *Config) MinSeverity() (record.Severity, error) {
	return record.ParseSeverity(c.Sink.MinLevel)
}

// SinkOptions maps the sink section onto sink.Config. An "auto" instance id
// is resolved to a random UUID once and stored back into the config so every
// caller sees the same id.
func (c *Config) SinkOptions() (sink.Config, error) {
	minimum, err := c.MinSeverity()
	if err != nil {
		return sink.Config{}, err
	}
	if c.Sink.InstanceID == AutoInstanceID {
		c.Sink.InstanceID = uuid.NewString()
	}
	return sink.Config{
		Minimum:       minimum,
		Buffered:      c.Sink.Buffered,
		BatchSize:     c.Sink.BatchSize,
		WriteTimeout:  c.Sink.WriteTimeout,
		DefaultSource: c.Sink.DefaultSource,
		InstanceID:    c.Sink.InstanceID,
	}, nil
}

// ConnectOptions maps the mongo section onto store.ConnectOptions.
func (c *Config) ConnectOptions() store.ConnectOptions {
	return store.ConnectOptions{
		URI:            c.Mongo.URI,
		AppName:        c.Mongo.AppName,
		ConnectTimeout: c.Mongo.ConnectTimeout,
		DriverLogLevel: c.Mongo.DriverLogLevel,
	}
}
