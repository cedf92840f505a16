package config

import (
	"fmt"

	"github.com/DeBrosOfficial/mongolog/pkg/config/validate"
	"github.com/DeBrosOfficial/mongolog/pkg/record"
)

// ValidationError represents a single validation error with context.
type ValidationError struct {
	Path    string // e.g., "mongo.uri" or "sink.batch_size"
	Message string // e.g., "must not be empty"
	Hint    string // e.g., "set MONGO_URL or mongo.uri"
}

func (e ValidationError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: %s; %s", e.Path, e.Message, e.Hint)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Validate performs comprehensive validation of the entire config.
// It aggregates all errors and returns them, allowing the caller to print all issues at once.
func (c *Config) Validate() []error {
	var errs []error
	errs = append(errs, c.validateMongo()...)
	errs = append(errs, c.validateSink()...)
	errs = append(errs, c.validateLogging()...)
	return errs
}

func (c *Config) validateMongo() []error {
	var errs []error
	mc := c.Mongo

	// The memory target needs no connection string.
	if !c.DryRun {
		if err := validate.ValidateMongoURI(mc.URI); err != nil {
			errs = append(errs, ValidationError{
				Path:    "mongo.uri",
				Message: err.Error(),
				Hint:    "set MONGO_URL (environment or .env) or mongo.uri, e.g. mongodb://localhost:27017",
			})
		}
	}
	if err := validate.ValidateDatabaseName(mc.Database); err != nil {
		errs = append(errs, ValidationError{Path: "mongo.database", Message: err.Error()})
	}
	if err := validate.ValidateCollectionName(mc.Collection); err != nil {
		errs = append(errs, ValidationError{Path: "mongo.collection", Message: err.Error()})
	}
	if mc.ConnectTimeout <= 0 {
		errs = append(errs, ValidationError{
			Path:    "mongo.connect_timeout",
			Message: fmt.Sprintf("must be positive; got %s", mc.ConnectTimeout),
			Hint:    "e.g. 10s",
		})
	}
	if err := validate.ValidateOneOf(mc.DriverLogLevel, "", "info", "debug"); err != nil {
		errs = append(errs, ValidationError{
			Path:    "mongo.driver_log_level",
			Message: err.Error(),
			Hint:    "allowed values: info, debug, or empty to disable",
		})
	}
	return errs
}

func (c *Config) validateSink() []error {
	var errs []error
	sc := c.Sink

	if _, err := record.ParseSeverity(sc.MinLevel); err != nil {
		errs = append(errs, ValidationError{
			Path:    "sink.min_level",
			Message: fmt.Sprintf("invalid value %q", sc.MinLevel),
			Hint:    "allowed values: error, warn, info, debug, trace",
		})
	}
	if sc.BatchSize < 1 {
		errs = append(errs, ValidationError{
			Path:    "sink.batch_size",
			Message: fmt.Sprintf("must be >= 1; got %d", sc.BatchSize),
		})
	}
	if sc.WriteTimeout < 0 {
		errs = append(errs, ValidationError{
			Path:    "sink.write_timeout",
			Message: fmt.Sprintf("must not be negative; got %s", sc.WriteTimeout),
			Hint:    "use 0 to wait for writes indefinitely",
		})
	}
	if sc.DefaultSource == "" {
		errs = append(errs, ValidationError{
			Path:    "sink.default_source",
			Message: "must not be empty",
		})
	}
	return errs
}

func (c *Config) validateLogging() []error {
	var errs []error
	if err := validate.ValidateOneOf(c.Logging.Level, "debug", "info", "warn", "error"); err != nil {
		errs = append(errs, ValidationError{
			Path:    "logging.level",
			Message: err.Error(),
			Hint:    "allowed values: debug, info, warn, error",
		})
	}
	if err := validate.ValidateOneOf(c.Logging.Format, "json", "console"); err != nil {
		errs = append(errs, ValidationError{
			Path:    "logging.format",
			Message: err.Error(),
			Hint:    "allowed values: json, console",
		})
	}
	return errs
}
