package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, CodeOK},
		{"registration", NewRegistrationError(), CodeAlreadyExists},
		{"sentinel registration", fmt.Errorf("install: %w", ErrAlreadyRegistered), CodeAlreadyExists},
		{"not registered", ErrNotRegistered, CodeFailedPrecondition},
		{"timeout sentinel", ErrTimeout, CodeDeadlineExceeded},
		{"unavailable sentinel", ErrUnavailable, CodeUnavailable},
		{"write", NewWriteError("insert_one", 1, errors.New("x")), CodeWrite},
		{"plain", errors.New("x"), CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetErrorCode(tt.err); got != tt.want {
				t.Errorf("GetErrorCode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsStartup(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{CodeConfig, true},
		{CodeUnavailable, true},
		{CodeAlreadyExists, true},
		{CodeFailedPrecondition, true},
		{CodeInvalidArgument, false},
		{CodeWrite, false},
		{CodeDeadlineExceeded, false},
		{CodeInternal, false},
	}

	for _, tt := range tests {
		if got := IsStartup(tt.code); got != tt.want {
			t.Errorf("IsStartup(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestHelpersOnNil(t *testing.T) {
	if IsAlreadyRegistered(nil) || IsTimeout(nil) || IsUnavailable(nil) || IsConfig(nil) {
		t.Error("Expected helpers to report false for nil")
	}
}
