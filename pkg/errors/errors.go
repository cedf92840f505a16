package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors for quick checks
var (
	// ErrAlreadyRegistered is returned when a second sink is installed as the
	// process-wide logging backend.
	ErrAlreadyRegistered = errors.New("logging backend already registered")

	// ErrNotRegistered is returned when the facade is used before Install.
	ErrNotRegistered = errors.New("logging backend not registered")

	// ErrTimeout is returned when a write does not resolve in time.
	ErrTimeout = errors.New("operation timeout")

	// ErrUnavailable is returned when the document store is unreachable.
	ErrUnavailable = errors.New("document store unavailable")
)

// Error is the base interface for all custom errors in the system.
type Error interface {
	error
	// Code returns the error code
	Code() string
	// Message returns the human-readable error message
	Message() string
	// Unwrap returns the underlying cause
	Unwrap() error
}

// BaseError provides a foundation for all typed errors.
type BaseError struct {
	code    string
	message string
	cause   error
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Code returns the error code.
func (e *BaseError) Code() string {
	return e.code
}

// Message returns the error message.
func (e *BaseError) Message() string {
	return e.message
}

// Unwrap returns the underlying cause.
func (e *BaseError) Unwrap() error {
	return e.cause
}

// ConfigError reports a missing or invalid configuration value.
type ConfigError struct {
	*BaseError
	Key string
}

// NewConfigError creates a new configuration error for key.
func NewConfigError(key, message string) *ConfigError {
	return &ConfigError{
		BaseError: &BaseError{
			code:    CodeConfig,
			message: message,
		},
		Key: key,
	}
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("config error: %s: %s", e.Key, e.message)
	}
	return fmt.Sprintf("config error: %s", e.message)
}

// InvalidArgumentError reports a caller-supplied value that cannot be used.
type InvalidArgumentError struct {
	*BaseError
	Field string
}

// NewInvalidArgumentError creates a new invalid argument error for field.
func NewInvalidArgumentError(field, message string) *InvalidArgumentError {
	return &InvalidArgumentError{
		BaseError: &BaseError{
			code:    CodeInvalidArgument,
			message: message,
		},
		Field: field,
	}
}

// RegistrationError reports a failed global sink registration.
type RegistrationError struct {
	*BaseError
}

// NewRegistrationError creates the error returned by a second registration.
func NewRegistrationError() *RegistrationError {
	return &RegistrationError{
		BaseError: &BaseError{
			code:    CodeAlreadyExists,
			message: "cannot install logging backend",
			cause:   ErrAlreadyRegistered,
		},
	}
}

// WriteError reports a persistence write that did not succeed.
type WriteError struct {
	*BaseError
	Operation string // insert_one, insert_many
	Documents int
}

// NewWriteError wraps a failed write of count documents.
func NewWriteError(operation string, count int, cause error) *WriteError {
	code := CodeWrite
	if IsTimeout(cause) {
		code = CodeDeadlineExceeded
	}
	return &WriteError{
		BaseError: &BaseError{
			code:    code,
			message: fmt.Sprintf("%s of %d document(s) failed", operation, count),
			cause:   cause,
		},
		Operation: operation,
		Documents: count,
	}
}

// UnavailableError reports a document store that cannot be reached.
type UnavailableError struct {
	*BaseError
	Endpoint string
}

// NewUnavailableError creates a new unavailable error. Endpoint must not
// carry credentials.
func NewUnavailableError(endpoint, message string, cause error) *UnavailableError {
	if message == "" {
		message = "document store unavailable"
	}
	return &UnavailableError{
		BaseError: &BaseError{
			code:    CodeUnavailable,
			message: message,
			cause:   cause,
		},
		Endpoint: endpoint,
	}
}

// Wrap wraps an error with additional context.
// If the error is already one of our custom types, it preserves the code.
// Otherwise the result is an internal error.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	code := CodeInternal
	if e, ok := err.(Error); ok {
		code = e.Code()
	}
	return &BaseError{
		code:    code,
		message: message,
		cause:   err,
	}
}
