package plugin

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/probectl/probectl/internal/errors"
	"github.com/probectl/probectl/internal/probe"
)

// serverArgs aims an argument map at a test server. The host carries the
// port so multiple servers can appear in one instance list.
func serverArgs(t *testing.T, server *httptest.Server) Args {
	t.Helper()

	u, err := url.Parse(server.URL)
	if err != nil {
		t.Fatalf("parse server URL: %v", err)
	}
	return Args{"host": u.Host}
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"get", "post", "get_ok", "service_up"} {
		action, err := Lookup(name)
		if err != nil {
			t.Errorf("Lookup(%q) error: %v", name, err)
		}
		if action == nil {
			t.Errorf("Lookup(%q) returned nil action", name)
		}
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("delete")
	if err == nil {
		t.Fatal("Lookup should fail for unknown action")
	}
	if code := errors.GetExitCode(err); code != errors.ExitValidation {
		t.Errorf("exit code = %d, want %d", code, errors.ExitValidation)
	}
}

func TestNames(t *testing.T) {
	want := []string{"get", "get_ok", "post", "service_up"}
	got := Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Names() = %v, want %v", got, want)
		}
	}
}

func TestGet_AgainstServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "ok")
	}))
	defer server.Close()

	if err := Get(context.Background(), serverArgs(t, server), nil); err != nil {
		t.Fatalf("Get() error: %v", err)
	}
}

func TestGet_FailFast(t *testing.T) {
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer bad.Close()

	var hits atomic.Int32
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer good.Close()

	badURL, _ := url.Parse(bad.URL)
	goodURL, _ := url.Parse(good.URL)
	instances := []string{badURL.Host, goodURL.Host}

	err := Get(context.Background(), Args{}, instances)
	if err == nil {
		t.Fatal("Get() should fail on the first instance")
	}

	var statusErr *probe.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("error = %v, want StatusError", err)
	}
	if hits.Load() != 0 {
		t.Errorf("second instance was probed %d times, want 0", hits.Load())
	}
}

func TestPost_SendsBody(t *testing.T) {
	var mu sync.Mutex
	var gotMethod, gotContentType, gotBody string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		gotBody = string(body)
		mu.Unlock()
	}))
	defer server.Close()

	args := serverArgs(t, server)
	args["data"] = `{"value":"1"}`

	if err := Post(context.Background(), args, nil); err != nil {
		t.Fatalf("Post() error: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if gotMethod != http.MethodPost {
		t.Errorf("method = %q, want %q", gotMethod, http.MethodPost)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q, want %q", gotContentType, "application/json")
	}
	if gotBody != `{"value":"1"}` {
		t.Errorf("body = %q, want %q", gotBody, `{"value":"1"}`)
	}
}

func TestServiceUp_IgnoresOkCodes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	// 404 fails ok_codes=200 but is inside the lenient band, so the
	// override must make this pass.
	args := serverArgs(t, server)
	args["ok_codes"] = "200"
	args["deadline"] = "1"

	if err := ServiceUp(context.Background(), args, nil); err != nil {
		t.Fatalf("ServiceUp() error: %v", err)
	}
}

func TestGetOK_RecoversWithinDeadline(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		io.WriteString(w, "ready")
	}))
	defer server.Close()

	args := serverArgs(t, server)
	args["deadline"] = "10"

	if err := GetOK(context.Background(), args, nil); err != nil {
		t.Fatalf("GetOK() error: %v", err)
	}
	if hits.Load() != 3 {
		t.Errorf("server was probed %d times, want 3", hits.Load())
	}
}

func TestGetOK_TimeoutActsAsDeadline(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := listener.Addr().String()
	listener.Close()

	args := Args{"host": addr, "timeout": "1"}

	start := time.Now()
	err = GetOK(context.Background(), args, nil)
	elapsed := time.Since(start)

	if err == nil {
		t.Fatal("GetOK() should fail against a closed port")
	}
	var transportErr *probe.TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("error = %v, want TransportError", err)
	}
	if elapsed > time.Second+probe.AttemptTimeout {
		t.Errorf("GetOK() took %v, want at most deadline plus one attempt", elapsed)
	}
}

func TestGetOK_BadSchemaFailsImmediately(t *testing.T) {
	args := Args{"host": "127.0.0.1", "schema": "ftp", "deadline": "5"}

	start := time.Now()
	err := GetOK(context.Background(), args, nil)
	elapsed := time.Since(start)

	if code := errors.GetExitCode(err); code != errors.ExitValidation {
		t.Fatalf("GetOK() = %v (exit %d), want a validation error", err, code)
	}
	if elapsed > time.Second {
		t.Errorf("GetOK() took %v, want a failure without polling", elapsed)
	}
}
