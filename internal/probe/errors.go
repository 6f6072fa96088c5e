package probe

import (
	"fmt"

	"github.com/probectl/probectl/internal/errors"
)

// maxBodySnippet bounds how much response body is kept for diagnostics.
const maxBodySnippet = 4096

// TransportError reports an attempt that produced no response: DNS
// failure, connection refused, TLS failure, or timeout.
type TransportError struct {
	Method Method
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit code for transport failures.
func (e *TransportError) ExitCode() int {
	return errors.ExitTransport
}

// StatusError reports a response whose status code failed the success
// criteria. Body holds up to maxBodySnippet bytes of the response for
// diagnostics.
type StatusError struct {
	Method     Method
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s %s: unexpected status %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.URL, e.StatusCode)
}

// ExitCode returns the process exit code for status failures.
func (e *StatusError) ExitCode() int {
	return errors.ExitBadStatus
}
