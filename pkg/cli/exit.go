package cli

import (
	apperrors "github.com/DeBrosOfficial/mongolog/pkg/errors"
)

// Process exit statuses.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
	ExitStartup = 3
)

// ExitCode maps the error returned by the command tree to a process status.
func ExitCode(err error) int {
	code := apperrors.GetErrorCode(err)
	switch {
	case err == nil:
		return ExitOK
	case apperrors.IsStartup(code):
		return ExitStartup
	case code == apperrors.CodeInvalidArgument:
		return ExitUsage
	default:
		return ExitFailure
	}
}
