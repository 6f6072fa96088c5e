package plugin

import (
	"context"
	"sort"

	"github.com/probectl/probectl/internal/errors"
	"github.com/probectl/probectl/internal/logging"
	"github.com/probectl/probectl/internal/probe"
)

// Action runs one probe action against an instance list, fail-fast.
type Action func(ctx context.Context, args Args, instances []string) error

// actions maps host-runtime action names to implementations.
var actions = map[string]Action{
	"get":        Get,
	"post":       Post,
	"get_ok":     GetOK,
	"service_up": ServiceUp,
}

// Lookup returns the action registered under name.
func Lookup(name string) (Action, error) {
	action, ok := actions[name]
	if !ok {
		return nil, errors.ValidationErrorf("unknown action %q (expected one of: %v)", name, Names())
	}
	return action, nil
}

// Names returns the registered action names, sorted.
func Names() []string {
	names := make([]string, 0, len(actions))
	for name := range actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get probes each instance once with a GET request.
func Get(ctx context.Context, args Args, instances []string) error {
	return probeEach(ctx, args, instances, probe.MethodGet)
}

// Post probes each instance once with a POST request and optional body.
func Post(ctx context.Context, args Args, instances []string) error {
	return probeEach(ctx, args, instances, probe.MethodPost)
}

// GetOK polls each instance with GET requests until one passes the
// success criteria or the deadline elapses.
func GetOK(ctx context.Context, args Args, instances []string) error {
	return pollEach(ctx, args, instances, false)
}

// ServiceUp polls each instance until it answers with any status below
// 500. Redirects are not followed and ok_codes is ignored.
func ServiceUp(ctx context.Context, args Args, instances []string) error {
	return pollEach(ctx, args, instances, true)
}

func probeEach(ctx context.Context, args Args, instances []string, method probe.Method) error {
	hosts, err := resolveInstances(args, instances)
	if err != nil {
		return err
	}

	executor := probe.NewExecutor()
	for _, host := range hosts {
		req, err := args.request(host, method)
		if err != nil {
			return err
		}
		logging.Debug("probing instance", "host", host, "method", method)
		if err := executor.Do(ctx, req); err != nil {
			return err
		}
	}
	return nil
}

func pollEach(ctx context.Context, args Args, instances []string, serviceUp bool) error {
	hosts, err := resolveInstances(args, instances)
	if err != nil {
		return err
	}
	deadline, err := args.pollDeadline()
	if err != nil {
		return err
	}

	if serviceUp && args["ok_codes"] != "" {
		logging.Debug("service_up ignores ok_codes", "ok_codes", args["ok_codes"])
		delete(args, "ok_codes")
	}

	poller := probe.NewPoller(probe.NewExecutor())
	for _, host := range hosts {
		req, err := args.request(host, probe.MethodGet)
		if err != nil {
			return err
		}
		if serviceUp {
			req.Criteria = probe.ServiceUp()
		}
		logging.Debug("polling instance", "host", host, "deadline", deadline)
		if err := poller.Wait(ctx, req, deadline); err != nil {
			return err
		}
	}
	return nil
}
