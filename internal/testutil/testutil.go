// Package testutil provides test utilities for command tests
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"

	"github.com/probectl/probectl/internal/app"
	"github.com/probectl/probectl/internal/config"
)

// TestEnv holds the test environment
type TestEnv struct {
	T        *testing.T
	TmpDir   string
	Paths    *config.Paths
	Defaults *config.Defaults
	App      *app.App
	cleanup  func()
}

// NewTestEnv creates a new test environment with an isolated config tree
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	tmpDir := t.TempDir()

	paths := &config.Paths{
		ConfigDir:  filepath.Join(tmpDir, "config"),
		TargetsDir: filepath.Join(tmpDir, "config", "targets"),
	}

	// Create directories
	for _, dir := range []string{paths.ConfigDir, paths.TargetsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create directory %s: %v", dir, err)
		}
	}

	defaults := &config.Defaults{}

	testApp := app.New(
		app.WithPaths(paths),
		app.WithDefaults(defaults),
	)

	// Save original default and set test app
	originalDefault := app.Default
	app.SetDefault(testApp)

	env := &TestEnv{
		T:        t,
		TmpDir:   tmpDir,
		Paths:    paths,
		Defaults: defaults,
		App:      testApp,
		cleanup: func() {
			app.SetDefault(originalDefault)
		},
	}

	return env
}

// Cleanup restores the original app default
func (e *TestEnv) Cleanup() {
	if e.cleanup != nil {
		e.cleanup()
	}
}

// SetDefaults writes a defaults file and updates the in-memory defaults
// the test app resolves against.
func (e *TestEnv) SetDefaults(defaults *config.Defaults) {
	e.T.Helper()

	data, err := toml.Marshal(defaults)
	if err != nil {
		e.T.Fatalf("Failed to marshal defaults: %v", err)
	}

	path := filepath.Join(e.Paths.ConfigDir, config.DefaultsFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		e.T.Fatalf("Failed to write defaults: %v", err)
	}

	*e.Defaults = *defaults
}

// AddTargetSet writes a target set to the test environment
func (e *TestEnv) AddTargetSet(name string, set *config.TargetSet) {
	e.T.Helper()

	data, err := toml.Marshal(set)
	if err != nil {
		e.T.Fatalf("Failed to marshal target set: %v", err)
	}

	path := filepath.Join(e.Paths.TargetsDir, name+".toml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		e.T.Fatalf("Failed to write target set: %v", err)
	}
}

// GetTargetSet loads a target set from the test environment
func (e *TestEnv) GetTargetSet(name string) *config.TargetSet {
	e.T.Helper()

	set, err := config.LoadTargetSet(e.Paths.TargetsDir, name)
	if err != nil {
		return nil
	}
	return set
}

// DefaultTargetSet returns a basic target set for testing
func DefaultTargetSet() *config.TargetSet {
	return &config.TargetSet{
		Name:   "test",
		Schema: "http",
		Port:   8080,
		Path:   "/health",
		Instances: []config.Instance{
			{Name: "web-1"},
			{Name: "web-2", Host: "10.0.0.2"},
		},
	}
}
