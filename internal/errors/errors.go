package errors

import (
	"errors"
	"fmt"
)

// Exit codes for probectl
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitValidation   = 2
	ExitTransport    = 3
	ExitBadStatus    = 4
	ExitConfigError  = 5
)

// ProbeError is the base error type for probectl
type ProbeError struct {
	Code    int
	Message string
	Cause   error
}

func (e *ProbeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ProbeError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *ProbeError) ExitCode() int {
	return e.Code
}

// ExitCoder is implemented by errors that carry their own process exit
// code. ProbeError implements it, as do the probe failure types.
type ExitCoder interface {
	error
	ExitCode() int
}

// New creates a new ProbeError
func New(code int, message string) *ProbeError {
	return &ProbeError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a ProbeError
func Wrap(code int, message string, cause error) *ProbeError {
	return &ProbeError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// ValidationError returns an error for malformed input
func ValidationError(message string) *ProbeError {
	return New(ExitValidation, message)
}

// ValidationErrorf returns a formatted error for malformed input
func ValidationErrorf(format string, args ...any) *ProbeError {
	return New(ExitValidation, fmt.Sprintf(format, args...))
}

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *ProbeError {
	return Wrap(ExitConfigError, message, cause)
}

// TargetSetNotFound returns an error for a missing target set
func TargetSetNotFound(name string) *ProbeError {
	return New(ExitConfigError, fmt.Sprintf("target set not found: %s", name))
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	if err == nil {
		return ExitGeneralError
	}
	var coder ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
