// Package config provides configuration types and loading for probectl.
//
// # Configuration Files
//
// The package handles two types of configuration, both TOML:
//
//   - Defaults: Global probe defaults loaded from /etc/probectl/defaults.toml
//   - TargetSet: Named instance lists loaded from /etc/probectl/targets/*.toml
//
// The configuration directory can be moved with PROBECTL_CONFIG_DIR.
//
// # Defaults
//
// Defaults fill request parameters the caller leaves unset:
//
//	schema   = "https"
//	port     = 8443
//	path     = "/healthz"
//	timeout  = 10   # seconds
//	deadline = 60   # seconds
//
// A missing defaults.toml is fine; built-in fallbacks apply.
//
// # Target Sets
//
// A target set names the instances of one deployment plus optional
// request overrides that apply to all of them:
//
//	schema = "http"
//	port   = 8080
//	path   = "/status"
//
//	[[instances]]
//	name = "web-1"
//	host = "10.0.0.11"
//
//	[[instances]]
//	name = "web-2"
//	host = "10.0.0.12"
//
// An instance without a host is probed by its name. Set names are
// resolved strictly inside the targets directory.
//
// # Validation
//
// All configuration types implement Validate() to check for required fields
// and valid values. Loading functions automatically validate after parsing.
package config
