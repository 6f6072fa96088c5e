package probe

import (
	"fmt"
	"net"
	"net/http"
	"time"
)

// redirectLimit bounds how many redirects a single probe may follow.
const redirectLimit = 10

// newClient builds the http.Client for one attempt. The request timeout
// bounds dialing, the TLS handshake, the response header, and the total
// call. Keep-alives are off; a probe's socket must not outlive its
// attempt.
func newClient(req Request) *http.Client {
	var transport http.RoundTripper
	if req.Schema == SchemaH2C {
		transport = newH2CTransport(req.Timeout)
	} else {
		transport = newHTTPTransport(req.Timeout)
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   req.Timeout,
	}
	if req.Criteria.followRedirects() {
		client.CheckRedirect = followRedirects(redirectLimit)
	} else {
		client.CheckRedirect = noRedirects
	}
	return client
}

func newHTTPTransport(timeout time.Duration) *http.Transport {
	dialer := &net.Dialer{Timeout: timeout}
	return &http.Transport{
		DialContext:           dialer.DialContext,
		TLSHandshakeTimeout:   timeout,
		ResponseHeaderTimeout: timeout,
		DisableKeepAlives:     true,
		MaxIdleConns:          1,
	}
}

// followRedirects returns a redirect policy that follows up to limit
// redirects before failing the request.
func followRedirects(limit int) func(*http.Request, []*http.Request) error {
	return func(req *http.Request, via []*http.Request) error {
		if len(via) > limit {
			return fmt.Errorf("too many redirects (> %d)", limit)
		}
		return nil
	}
}

// noRedirects stops the client from following any redirect. The redirect
// response itself is handed back for classification.
func noRedirects(*http.Request, []*http.Request) error {
	return http.ErrUseLastResponse
}
