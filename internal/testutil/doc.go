// Package testutil provides test fixtures and utilities.
//
// This package contains embedded TOML fixtures and helper functions for
// loading valid and invalid configurations in unit tests, plus a TestEnv
// that gives command tests an isolated config tree.
//
// # Fixtures
//
// TOML fixtures are embedded using go:embed:
//
//	fixtures/valid_defaults.toml
//	fixtures/invalid_defaults.toml
//	fixtures/valid_target_set.toml
//
// # Loading Fixtures
//
// Helper functions load and parse fixtures into typed config objects:
//
//	defaults, err := testutil.ValidDefaults()
//	set, err := testutil.ValidTargetSet()
//	defaults, err := testutil.InvalidDefaults()
//
// # Raw Fixture Access
//
// For custom parsing or testing edge cases:
//
//	data, err := testutil.LoadFixture("valid_defaults.toml")
//
// # Test Environment
//
// NewTestEnv builds a temporary config tree and swaps the process-wide
// app context for its duration:
//
//	func TestProbeCommand(t *testing.T) {
//	    env := testutil.NewTestEnv(t)
//	    defer env.Cleanup()
//
//	    env.AddTargetSet("staging", testutil.DefaultTargetSet())
//	    // run commands against env.App
//	}
package testutil
