// Package logging provides logging utilities for probectl.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("probing instance", "url", url, "attempt", attempt)
//	logging.Warn("attempt failed", "url", url, "error", err)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Probing %s...", url)
//	logging.UserSuccess("GET %s returned %d", url, status)
//	logging.UserWarning("ok_codes ignored for service_up")
//	logging.UserError("Probe failed: %v", err)
//
// Output destinations:
//   - UserInfo, UserSuccess: stdout
//   - UserWarning, UserError: stderr
//
// # Status Indicators
//
// User functions prepend status indicators:
//   - ℹ (info)
//   - ✓ (success)
//   - ⚠ (warning)
//   - ✗ (error)
package logging
