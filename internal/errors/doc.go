// Package errors provides typed errors with exit codes for probectl.
//
// # Error Types
//
// ProbeError is the base error type that wraps an error with an exit code:
//
//	type ProbeError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
// Defined exit codes for different error categories:
//
//	ExitSuccess      = 0  // Success
//	ExitGeneralError = 1  // General/unknown errors
//	ExitValidation   = 2  // Malformed arguments or request parameters
//	ExitTransport    = 3  // Request could not complete (DNS, connect, timeout)
//	ExitBadStatus    = 4  // Response received but outside the accepted codes
//	ExitConfigError  = 5  // Defaults or target-set file problems
//
// # Error Constructors
//
// Use the provided constructors for consistent error creation:
//
//	errors.ValidationError("host is required")
//	errors.ValidationErrorf("unsupported schema: %s", schema)
//	errors.ConfigError("failed to parse defaults", err)
//	errors.TargetSetNotFound("staging")
//
// Transport and status failures are created by the probe package; they
// implement ExitCoder so their codes survive the error chain.
//
// # Extracting Exit Codes
//
// Use GetExitCode to extract the exit code from an error chain:
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
