package plugin

import (
	"strconv"
	"strings"
	"time"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/probectl/probectl/internal/errors"
	"github.com/probectl/probectl/internal/logging"
	"github.com/probectl/probectl/internal/probe"
)

// Args is the flat argument mapping a host runtime passes to an action.
type Args map[string]string

// recognizedKeys are the argument keys an action understands. Anything
// else is ignored so callers can pass a superset.
var recognizedKeys = map[string]bool{
	"schema":   true,
	"host":     true,
	"port":     true,
	"path":     true,
	"data":     true,
	"ok_codes": true,
	"timeout":  true,
	"deadline": true,
}

// ParseArgs tokenizes a shell-quoted argument string into an argument map.
// Each token must have the form key=value; quoting is honored, so values
// may contain spaces and equals signs (data='{"value":"1"}').
func ParseArgs(raw string) (Args, error) {
	words, err := shellquote.Split(raw)
	if err != nil {
		return nil, errors.ValidationErrorf("malformed argument string: %v", err)
	}

	args := make(Args, len(words))
	for _, word := range words {
		key, value, found := strings.Cut(word, "=")
		if !found || key == "" {
			return nil, errors.ValidationErrorf("malformed argument %q (expected key=value)", word)
		}
		if !recognizedKeys[key] {
			logging.Debug("ignoring unrecognized argument", "key", key)
			continue
		}
		args[key] = value
	}
	return args, nil
}

// request builds a probe request for one host from the argument map.
func (a Args) request(host string, method probe.Method) (probe.Request, error) {
	req := probe.Request{
		Method: method,
		Schema: probe.Schema(a["schema"]),
		Host:   host,
		Path:   a["path"],
		Body:   a["data"],
	}

	if v := a["port"]; v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return probe.Request{}, errors.ValidationErrorf("invalid port %q", v)
		}
		req.Port = port
	}
	if v := a["ok_codes"]; v != "" {
		criteria, err := probe.ParseCodes(v)
		if err != nil {
			return probe.Request{}, err
		}
		req.Criteria = criteria
	}
	if v := a["timeout"]; v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return probe.Request{}, errors.ValidationErrorf("invalid timeout %q", v)
		}
		req.Timeout = time.Duration(seconds) * time.Second
	}

	return req, nil
}

// pollDeadline returns the overall deadline for polling actions. The
// timeout key doubles as the deadline when no explicit deadline is given,
// matching how orchestrators traditionally pass it.
func (a Args) pollDeadline() (time.Duration, error) {
	v := a["deadline"]
	if v == "" {
		v = a["timeout"]
	}
	if v == "" {
		return probe.DefaultDeadline, nil
	}

	seconds, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.ValidationErrorf("invalid deadline %q", v)
	}
	return time.Duration(seconds) * time.Second, nil
}

// resolveInstances picks the hosts to probe: an explicit instance list
// wins, then the host argument.
func resolveInstances(args Args, instances []string) ([]string, error) {
	if len(instances) > 0 {
		return instances, nil
	}
	if host := args["host"]; host != "" {
		return []string{host}, nil
	}
	return nil, errors.ValidationError("host is required (pass host=... or an instance list)")
}
