package probe

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/probectl/probectl/internal/errors"
	"github.com/probectl/probectl/internal/logging"
)

// Executor performs a single probe attempt. It never retries; retry
// policy lives in the Poller.
type Executor struct{}

// NewExecutor returns an Executor.
func NewExecutor() *Executor {
	return &Executor{}
}

// Do executes one attempt of req and classifies the response. A nil
// return means the response satisfied the request's criteria. Failures
// are *TransportError or *StatusError; a malformed request returns a
// validation error without touching the network.
func (e *Executor) Do(ctx context.Context, req Request) error {
	req = req.WithDefaults()
	if err := req.Validate(); err != nil {
		return err
	}

	probeURL := req.URL()
	logging.Debug("probing",
		"method", req.Method,
		"url", probeURL,
		"criteria", req.Criteria.String(),
		"timeout", req.Timeout)

	var body io.Reader
	if req.Body != "" {
		body = strings.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, string(req.Method), sendURL(req), body)
	if err != nil {
		return errors.Wrap(errors.ExitValidation, "invalid probe URL "+probeURL, err)
	}
	if req.Body != "" {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	client := newClient(req)
	defer client.CloseIdleConnections()

	resp, err := client.Do(httpReq)
	if err != nil {
		// Strip the url.Error wrapper; method and URL are already part
		// of the failure.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return &TransportError{Method: req.Method, URL: probeURL, Err: err}
	}
	defer resp.Body.Close()

	if !req.Criteria.Matches(resp.StatusCode) {
		return &StatusError{
			Method:     req.Method,
			URL:        probeURL,
			StatusCode: resp.StatusCode,
			Body:       readBodySnippet(resp.Body),
		}
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	logging.Debug("probe ok", "method", req.Method, "url", probeURL, "status", resp.StatusCode)
	return nil
}

// sendURL returns the URL actually handed to the transport. The h2c
// schema travels as plain http; the dedicated transport upgrades it.
func sendURL(req Request) string {
	if req.Schema == SchemaH2C {
		r := req
		r.Schema = SchemaHTTP
		return r.URL()
	}
	return req.URL()
}

// readBodySnippet reads at most maxBodySnippet bytes of a response body
// for diagnostics.
func readBodySnippet(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, maxBodySnippet))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
