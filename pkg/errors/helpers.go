package errors

import "errors"

// IsAlreadyRegistered checks if an error comes from a second registration.
func IsAlreadyRegistered(err error) bool {
	if err == nil {
		return false
	}

	var regErr *RegistrationError
	return errors.As(err, &regErr) || errors.Is(err, ErrAlreadyRegistered)
}

// IsConfig checks if an error is a configuration error.
func IsConfig(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsTimeout checks if an error indicates a timeout.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrTimeout) || GetErrorCode(err) == CodeDeadlineExceeded
}

// IsUnavailable checks if an error indicates an unreachable store.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}

	var unavailableErr *UnavailableError
	return errors.As(err, &unavailableErr) || errors.Is(err, ErrUnavailable)
}

// GetErrorCode extracts the error code from an error.
func GetErrorCode(err error) string {
	if err == nil {
		return CodeOK
	}

	var customErr Error
	if errors.As(err, &customErr) {
		return customErr.Code()
	}

	switch {
	case errors.Is(err, ErrAlreadyRegistered):
		return CodeAlreadyExists
	case errors.Is(err, ErrNotRegistered):
		return CodeFailedPrecondition
	case errors.Is(err, ErrTimeout):
		return CodeDeadlineExceeded
	case errors.Is(err, ErrUnavailable):
		return CodeUnavailable
	default:
		return CodeInternal
	}
}
