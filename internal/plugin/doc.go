// Package plugin adapts the probe actions for host orchestration systems.
//
// Orchestrators invoke probes by action name with a flat key=value
// argument map and an optional instance list, rather than through
// individual command-line flags. This package provides that binding: it
// parses the argument string, builds probe requests from the map, and
// dispatches to the same executor and poller the commands use.
//
// # Actions
//
// Four actions are registered:
//   - get: one GET request per instance
//   - post: one POST request per instance, with optional JSON body
//   - get_ok: poll each instance with GET until it passes or the
//     deadline elapses
//   - service_up: like get_ok but any status below 500 passes and
//     redirects are not followed
//
// Usage:
//
//	action, err := plugin.Lookup("get_ok")
//	args, err := plugin.ParseArgs(`port=8080 path=/health ok_codes=200,204`)
//	err = action(ctx, args, []string{"10.0.0.1", "10.0.0.2"})
//
// # Argument Keys
//
// Recognized keys: schema, host, port, path, data, ok_codes, timeout,
// deadline. Unrecognized keys are ignored so a host runtime can pass its
// full property map unfiltered. For polling actions the timeout key
// doubles as the overall deadline when deadline is not given.
//
// # Batch Semantics
//
// Instances are probed sequentially in order. The first failure aborts
// the batch and becomes the action's result; there is no partial-success
// reporting.
package plugin
