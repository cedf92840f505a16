package config

import (
	"strings"
	"testing"
	"time"
)

// validConfig returns a valid config
func validConfig() *Config {
	cfg := DefaultConfig()
	cfg.Mongo.URI = "mongodb://localhost:27017"
	return cfg
}

func hasPath(errs []error, path string) bool {
	for _, err := range errs {
		if ve, ok := err.(ValidationError); ok && ve.Path == path {
			return true
		}
	}
	return false
}

func TestValidateDefaultsNeedURI(t *testing.T) {
	errs := DefaultConfig().Validate()
	if len(errs) != 1 || !hasPath(errs, "mongo.uri") {
		t.Fatalf("expected a single mongo.uri error, got %v", errs)
	}
	if !strings.Contains(errs[0].Error(), "MONGO_URL") {
		t.Errorf("expected hint to mention MONGO_URL, got %q", errs[0].Error())
	}
}

func TestValidateDryRunSkipsURI(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DryRun = true
	if errs := cfg.Validate(); len(errs) > 0 {
		t.Errorf("unexpected errors: %v", errs)
	}
}

func TestValidateMinLevel(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		shouldError bool
	}{
		{"error", "error", false},
		{"warn", "warn", false},
		{"info", "INFO", false},
		{"debug", "debug", false},
		{"trace", "trace", false},
		{"invalid", "verbose", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Sink.MinLevel = tt.level
			errs := cfg.Validate()
			if tt.shouldError && !hasPath(errs, "sink.min_level") {
				t.Errorf("expected sink.min_level error, got %v", errs)
			}
			if !tt.shouldError && len(errs) > 0 {
				t.Errorf("unexpected errors: %v", errs)
			}
		})
	}
}

func TestValidateSinkNumbers(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		path   string
	}{
		{"zero batch", func(c *Config) { c.Sink.BatchSize = 0 }, "sink.batch_size"},
		{"negative write timeout", func(c *Config) { c.Sink.WriteTimeout = -time.Second }, "sink.write_timeout"},
		{"empty source", func(c *Config) { c.Sink.DefaultSource = "" }, "sink.default_source"},
		{"zero connect timeout", func(c *Config) { c.Mongo.ConnectTimeout = 0 }, "mongo.connect_timeout"},
		{"bad database", func(c *Config) { c.Mongo.Database = "log.ger" }, "mongo.database"},
		{"bad collection", func(c *Config) { c.Mongo.Collection = "" }, "mongo.collection"},
		{"bad driver level", func(c *Config) { c.Mongo.DriverLogLevel = "trace" }, "mongo.driver_log_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			if errs := cfg.Validate(); !hasPath(errs, tt.path) {
				t.Errorf("expected %s error, got %v", tt.path, errs)
			}
		})
	}
}

func TestValidateZeroWriteTimeoutAllowed(t *testing.T) {
	cfg := validConfig()
	cfg.Sink.WriteTimeout = 0
	if errs := cfg.Validate(); len(errs) > 0 {
		t.Errorf("unexpected errors: %v", errs)
	}
}

func TestValidateLogging(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		format      string
		shouldError bool
	}{
		{"console info", "info", "console", false},
		{"json debug", "debug", "json", false},
		{"bad level", "verbose", "console", true},
		{"bad format", "info", "text", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Logging.Level = tt.level
			cfg.Logging.Format = tt.format
			errs := cfg.Validate()
			if tt.shouldError && len(errs) == 0 {
				t.Errorf("expected error, got none")
			}
			if !tt.shouldError && len(errs) > 0 {
				t.Errorf("unexpected errors: %v", errs)
			}
		})
	}
}

func TestValidateAggregatesErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sink.MinLevel = "loud"
	cfg.Sink.BatchSize = -1
	cfg.Logging.Format = "xml"

	errs := cfg.Validate()
	for _, path := range []string{"mongo.uri", "sink.min_level", "sink.batch_size", "logging.format"} {
		if !hasPath(errs, path) {
			t.Errorf("expected %s in %v", path, errs)
		}
	}
}
