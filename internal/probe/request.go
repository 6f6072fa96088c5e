package probe

import (
	"fmt"
	"strings"
	"time"

	"github.com/probectl/probectl/internal/errors"
)

// Method is the HTTP method of a probe request.
type Method string

const (
	MethodGet  Method = "GET"
	MethodPost Method = "POST"
)

// Schema selects the transport protocol of a probe request.
type Schema string

const (
	SchemaHTTP  Schema = "http"
	SchemaHTTPS Schema = "https"
	// SchemaH2C probes over HTTP/2 without TLS.
	SchemaH2C Schema = "h2c"
)

// Default request parameters.
const (
	DefaultSchema  = SchemaHTTP
	DefaultPath    = "/"
	DefaultTimeout = 30 * time.Second
)

// Request describes a single probe. Host is the only required field;
// WithDefaults fills the rest.
type Request struct {
	Method   Method
	Schema   Schema
	Host     string
	Port     int
	Path     string
	Body     string
	Criteria Criteria
	Timeout  time.Duration
}

// WithDefaults returns a copy with unset fields replaced by defaults:
// method GET, schema http, path "/", timeout 30s.
func (r Request) WithDefaults() Request {
	if r.Method == "" {
		r.Method = MethodGet
	}
	if r.Schema == "" {
		r.Schema = DefaultSchema
	}
	if r.Path == "" {
		r.Path = DefaultPath
	}
	if r.Timeout <= 0 {
		r.Timeout = DefaultTimeout
	}
	return r
}

// Validate checks that the request can be executed.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Host) == "" {
		return errors.ValidationError("host is required")
	}
	switch r.Schema {
	case "", SchemaHTTP, SchemaHTTPS, SchemaH2C:
	default:
		return errors.ValidationErrorf("unsupported schema: %s", r.Schema)
	}
	switch r.Method {
	case "", MethodGet, MethodPost:
	default:
		return errors.ValidationErrorf("unsupported method: %s", r.Method)
	}
	if r.Port < 0 || r.Port > 65535 {
		return errors.ValidationErrorf("invalid port: %d", r.Port)
	}
	return nil
}

// URL returns the request URL in the form schema://host[:port]/path. The
// port appears only when set; the path always begins with exactly one
// slash.
func (r Request) URL() string {
	schema := r.Schema
	if schema == "" {
		schema = DefaultSchema
	}

	authority := r.Host
	if r.Port > 0 {
		authority = fmt.Sprintf("%s:%d", r.Host, r.Port)
	}

	path := r.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return fmt.Sprintf("%s://%s%s", schema, authority, path)
}
