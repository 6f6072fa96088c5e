package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestProbeError_Error(t *testing.T) {
	tests := []struct {
		name    string
		err     *ProbeError
		wantMsg string
	}{
		{
			name:    "without cause",
			err:     New(ExitGeneralError, "something went wrong"),
			wantMsg: "something went wrong",
		},
		{
			name:    "with cause",
			err:     Wrap(ExitGeneralError, "operation failed", fmt.Errorf("underlying error")),
			wantMsg: "operation failed: underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestProbeError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := Wrap(ExitGeneralError, "wrapped", cause)

	if unwrapped := err.Unwrap(); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Without cause
	errNoCause := New(ExitGeneralError, "no cause")
	if unwrapped := errNoCause.Unwrap(); unwrapped != nil {
		t.Errorf("Unwrap() = %v, want nil", unwrapped)
	}
}

func TestProbeError_ExitCode(t *testing.T) {
	tests := []struct {
		code int
		name string
	}{
		{ExitSuccess, "success"},
		{ExitGeneralError, "general"},
		{ExitValidation, "validation"},
		{ExitTransport, "transport"},
		{ExitBadStatus, "bad status"},
		{ExitConfigError, "config error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, "test")
			if got := err.ExitCode(); got != tt.code {
				t.Errorf("ExitCode() = %d, want %d", got, tt.code)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	err := ValidationError("host is required")

	if err.Code != ExitValidation {
		t.Errorf("Code = %d, want %d", err.Code, ExitValidation)
	}

	if err.Message != "host is required" {
		t.Errorf("Message = %q, want %q", err.Message, "host is required")
	}
}

func TestValidationErrorf(t *testing.T) {
	err := ValidationErrorf("unsupported schema: %s", "ftp")

	if err.Code != ExitValidation {
		t.Errorf("Code = %d, want %d", err.Code, ExitValidation)
	}

	if err.Message != "unsupported schema: ftp" {
		t.Errorf("Message = %q, want %q", err.Message, "unsupported schema: ftp")
	}
}

func TestConfigError(t *testing.T) {
	cause := fmt.Errorf("invalid toml")
	err := ConfigError("failed to parse defaults", cause)

	if err.Code != ExitConfigError {
		t.Errorf("Code = %d, want %d", err.Code, ExitConfigError)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
}

func TestTargetSetNotFound(t *testing.T) {
	err := TargetSetNotFound("staging")

	if err.Code != ExitConfigError {
		t.Errorf("Code = %d, want %d", err.Code, ExitConfigError)
	}

	if err.Message != "target set not found: staging" {
		t.Errorf("Message = %q, want %q", err.Message, "target set not found: staging")
	}
}

// codedError is a standalone error carrying its own exit code, like the
// probe failure types.
type codedError struct {
	code int
}

func (e *codedError) Error() string { return "coded" }
func (e *codedError) ExitCode() int { return e.code }

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "ProbeError",
			err:      ValidationError("bad input"),
			wantCode: ExitValidation,
		},
		{
			name:     "wrapped ProbeError",
			err:      fmt.Errorf("outer: %w", TargetSetNotFound("test")),
			wantCode: ExitConfigError,
		},
		{
			name:     "ExitCoder implementation",
			err:      &codedError{code: ExitBadStatus},
			wantCode: ExitBadStatus,
		},
		{
			name:     "wrapped ExitCoder",
			err:      fmt.Errorf("instance web-1: %w", &codedError{code: ExitTransport}),
			wantCode: ExitTransport,
		},
		{
			name:     "regular error",
			err:      fmt.Errorf("some error"),
			wantCode: ExitGeneralError,
		},
		{
			name:     "nil error",
			err:      nil,
			wantCode: ExitGeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.wantCode {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.wantCode)
			}
		})
	}
}

func TestIs(t *testing.T) {
	target := fmt.Errorf("target error")
	wrapped := fmt.Errorf("wrapped: %w", target)

	if !Is(wrapped, target) {
		t.Error("Is() should return true for wrapped error")
	}

	other := fmt.Errorf("other error")
	if Is(wrapped, other) {
		t.Error("Is() should return false for different error")
	}
}

func TestAs(t *testing.T) {
	probeErr := ValidationError("test")
	wrapped := fmt.Errorf("wrapped: %w", probeErr)

	var target *ProbeError
	if !As(wrapped, &target) {
		t.Error("As() should return true for wrapped ProbeError")
	}

	if target.Code != ExitValidation {
		t.Errorf("target.Code = %d, want %d", target.Code, ExitValidation)
	}

	// Test with non-ProbeError
	regularErr := fmt.Errorf("regular error")
	if As(regularErr, &target) {
		t.Error("As() should return false for non-ProbeError")
	}
}

func TestErrorChaining(t *testing.T) {
	// Test that our errors work with standard error unwrapping
	root := fmt.Errorf("root cause")
	middle := Wrap(ExitConfigError, "config error", root)
	outer := fmt.Errorf("operation failed: %w", middle)

	// Should be able to find root cause
	if !errors.Is(outer, root) {
		t.Error("errors.Is should find root cause")
	}

	// Should be able to extract ProbeError
	var probeErr *ProbeError
	if !errors.As(outer, &probeErr) {
		t.Error("errors.As should find ProbeError")
	}

	if probeErr.Code != ExitConfigError {
		t.Errorf("Code = %d, want %d", probeErr.Code, ExitConfigError)
	}
}
