package cmd

import (
	"context"
	"io/fs"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/probectl/probectl/internal/app"
	"github.com/probectl/probectl/internal/config"
	"github.com/probectl/probectl/internal/errors"
	"github.com/probectl/probectl/internal/probe"
	"github.com/probectl/probectl/internal/tui"
)

// paths returns the default paths configuration.
// This is a helper to reduce repetition in commands.
func paths() *config.Paths {
	return app.Default.Paths
}

// defaults returns the loaded probe defaults.
func defaults() *config.Defaults {
	return app.Default.Defaults
}

// probeOptions holds the flag values shared by the probe commands.
type probeOptions struct {
	schema   string
	hosts    []string
	targets  string
	port     int
	path     string
	data     string
	okCodes  string
	timeout  int
	deadline int
	progress bool
}

// addRequestFlags registers the flags every probe command accepts.
func addRequestFlags(cmd *cobra.Command, opts *probeOptions) {
	cmd.Flags().StringVar(&opts.schema, "schema", "", "URL schema: http, https, or h2c (default http)")
	cmd.Flags().StringArrayVarP(&opts.hosts, "host", "H", nil, "Host to probe (repeatable)")
	cmd.Flags().StringVarP(&opts.targets, "targets", "t", "", "Named target set, or path to a target set file")
	cmd.Flags().IntVarP(&opts.port, "port", "p", 0, "TCP port (default derived from schema)")
	cmd.Flags().StringVar(&opts.path, "path", "", "Request path (default /)")
	cmd.Flags().StringVar(&opts.okCodes, "ok-codes", "", "Comma-separated status codes that count as success")
	cmd.Flags().IntVar(&opts.timeout, "timeout", 0, "Per-request timeout in seconds (default 30)")
}

// addPollFlags registers the extra flags for the polling commands.
func addPollFlags(cmd *cobra.Command, opts *probeOptions) {
	cmd.Flags().IntVar(&opts.deadline, "deadline", 0, "Overall polling deadline in seconds (default 30)")
	cmd.Flags().BoolVar(&opts.progress, "progress", false, "Show a live progress display while polling")
}

// loadTargets loads a target set by name or by file path.
func loadTargets(nameOrPath string) (*config.TargetSet, error) {
	if strings.ContainsRune(nameOrPath, '/') || strings.HasSuffix(nameOrPath, ".toml") {
		set, err := config.LoadTargetSetFile(nameOrPath)
		if err != nil {
			return nil, errors.ConfigError("failed to load target set", err)
		}
		return set, nil
	}

	set, err := config.LoadTargetSet(paths().TargetsDir, nameOrPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.TargetSetNotFound(nameOrPath)
		}
		return nil, errors.ConfigError("failed to load target set", err)
	}
	return set, nil
}

// buildRequests resolves flags, target set, and defaults into one request
// per host. Flag values win over target set values, which win over the
// defaults file.
func buildRequests(cmd *cobra.Command, opts *probeOptions, method probe.Method) ([]probe.Request, error) {
	var set *config.TargetSet
	if opts.targets != "" {
		loaded, err := loadTargets(opts.targets)
		if err != nil {
			return nil, err
		}
		set = loaded
	}

	d := defaults()

	schema := d.Schema
	port := d.Port
	path := d.Path
	if set != nil {
		if set.Schema != "" {
			schema = set.Schema
		}
		if set.Port != 0 {
			port = set.Port
		}
		if set.Path != "" {
			path = set.Path
		}
	}
	if cmd.Flags().Changed("schema") {
		schema = opts.schema
	}
	if cmd.Flags().Changed("port") {
		port = opts.port
	}
	if cmd.Flags().Changed("path") {
		path = opts.path
	}

	timeout := time.Duration(d.Timeout) * time.Second
	if cmd.Flags().Changed("timeout") {
		timeout = time.Duration(opts.timeout) * time.Second
	}

	criteria := probe.DefaultOK()
	if opts.okCodes != "" {
		parsed, err := probe.ParseCodes(opts.okCodes)
		if err != nil {
			return nil, err
		}
		criteria = parsed
	}

	hosts := opts.hosts
	if len(hosts) == 0 && set != nil {
		hosts = set.Hosts()
	}
	if len(hosts) == 0 {
		return nil, errors.ValidationError("no hosts to probe (use --host or --targets)")
	}

	reqs := make([]probe.Request, len(hosts))
	for i, host := range hosts {
		reqs[i] = probe.Request{
			Method:   method,
			Schema:   probe.Schema(schema),
			Host:     host,
			Port:     port,
			Path:     path,
			Body:     opts.data,
			Criteria: criteria,
			Timeout:  timeout,
		}
	}
	return reqs, nil
}

// pollDeadline resolves the overall polling deadline from the flag or
// the defaults file.
func pollDeadline(cmd *cobra.Command, opts *probeOptions) time.Duration {
	if cmd.Flags().Changed("deadline") {
		return time.Duration(opts.deadline) * time.Second
	}
	if d := defaults().Deadline; d > 0 {
		return time.Duration(d) * time.Second
	}
	return probe.DefaultDeadline
}

// probeAll issues one request per host sequentially, stopping at the
// first failure.
func probeAll(ctx context.Context, reqs []probe.Request) error {
	executor := probe.NewExecutor()
	for _, req := range reqs {
		if err := executor.Do(ctx, req); err != nil {
			return err
		}
		logSuccess("%s ok", req.URL())
	}
	return nil
}

// pollAll polls each host sequentially until it passes or the deadline
// elapses, stopping at the first host that never comes up.
func pollAll(ctx context.Context, reqs []probe.Request, deadline time.Duration, progress bool) error {
	if progress {
		return pollAllProgress(ctx, reqs, deadline)
	}

	poller := probe.NewPoller(probe.NewExecutor())
	for _, req := range reqs {
		var last probe.Attempt
		poller.OnAttempt = func(a probe.Attempt) { last = a }
		if err := poller.Wait(ctx, req, deadline); err != nil {
			return err
		}
		if last.N > 1 {
			logSuccess("%s ok after %d attempts (%s)", req.URL(), last.N, last.Elapsed.Round(time.Millisecond))
		} else {
			logSuccess("%s ok", req.URL())
		}
	}
	return nil
}

// pollAllProgress runs the same loop behind a live progress display.
func pollAllProgress(ctx context.Context, reqs []probe.Request, deadline time.Duration) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	return tui.RunProgress(deadline, cancel, func(send func(tea.Msg)) error {
		poller := probe.NewPoller(probe.NewExecutor())
		poller.OnAttempt = func(a probe.Attempt) { send(tui.AttemptMsg(a)) }

		for i, req := range reqs {
			send(tui.TargetMsg{Index: i + 1, Total: len(reqs), URL: req.URL()})
			if err := poller.Wait(ctx, req, deadline); err != nil {
				return err
			}
		}
		return nil
	})
}
