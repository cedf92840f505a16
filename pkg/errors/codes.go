package errors

// Error codes for categorizing failures of the sink, the facade and the store.
const (
	// CodeOK indicates success (not an error).
	CodeOK = "OK"

	// CodeInvalidArgument indicates a caller supplied an invalid value,
	// e.g. an unknown severity name.
	CodeInvalidArgument = "INVALID_ARGUMENT"

	// CodeAlreadyExists indicates a second global sink registration.
	CodeAlreadyExists = "ALREADY_EXISTS"

	// CodeFailedPrecondition indicates the process is not in the state an
	// operation requires.
	CodeFailedPrecondition = "FAILED_PRECONDITION"

	// CodeDeadlineExceeded indicates a write did not resolve in time.
	CodeDeadlineExceeded = "DEADLINE_EXCEEDED"

	// CodeUnavailable indicates the document store cannot be reached.
	CodeUnavailable = "UNAVAILABLE"

	// CodeInternal indicates internal errors.
	CodeInternal = "INTERNAL"

	// CodeConfig indicates missing or invalid configuration.
	CodeConfig = "CONFIG_ERROR"

	// CodeWrite indicates a persistence write was rejected or failed.
	CodeWrite = "WRITE_ERROR"
)

// IsStartup reports whether an error with the given code aborts process
// startup. Everything else is terminal at the call that produced it.
func IsStartup(code string) bool {
	switch code {
	case CodeConfig, CodeUnavailable, CodeAlreadyExists, CodeFailedPrecondition:
		return true
	default:
		return false
	}
}
