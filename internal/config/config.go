package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	securejoin "github.com/cyphar/filepath-securejoin"
)

// setNameRegex validates target set names.
// Names must start with a lowercase letter or digit, followed by lowercase letters, digits, underscores, or hyphens.
// Maximum length is 63 characters.
var setNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,62}$`)

// ValidateSetName checks if a target set name is valid.
// Valid names:
//   - Start with a lowercase letter or digit
//   - Contain only lowercase letters, digits, underscores, or hyphens
//   - Are between 1 and 63 characters long
//   - Do not contain path separators or special characters
func ValidateSetName(name string) error {
	if name == "" {
		return fmt.Errorf("target set name cannot be empty")
	}

	if !setNameRegex.MatchString(name) {
		return fmt.Errorf("invalid target set name %q: must start with a lowercase letter or digit, contain only lowercase letters, digits, underscores, or hyphens, and be at most 63 characters", name)
	}

	return nil
}

const (
	DefaultConfigDir = "/etc/probectl"
	DefaultsFile     = "defaults.toml"

	// EnvConfigDir overrides the configuration directory.
	EnvConfigDir = "PROBECTL_CONFIG_DIR"
)

var validSchemas = map[string]bool{"": true, "http": true, "https": true, "h2c": true}

// Defaults represents the global probe defaults from defaults.toml.
// Zero fields mean "no default configured"; the built-in fallbacks apply.
type Defaults struct {
	Schema   string `toml:"schema"`
	Port     int    `toml:"port"`
	Path     string `toml:"path"`
	Timeout  int    `toml:"timeout"`  // seconds
	Deadline int    `toml:"deadline"` // seconds
}

// Validate checks that the Defaults are usable.
func (d *Defaults) Validate() error {
	if !validSchemas[d.Schema] {
		return fmt.Errorf("invalid schema: %s (must be http, https, or h2c)", d.Schema)
	}
	if d.Port < 0 || d.Port > 65535 {
		return fmt.Errorf("invalid port: %d", d.Port)
	}
	if d.Timeout < 0 {
		return fmt.Errorf("timeout cannot be negative (got %d)", d.Timeout)
	}
	if d.Deadline < 0 {
		return fmt.Errorf("deadline cannot be negative (got %d)", d.Deadline)
	}
	return nil
}

// Instance represents one probe target within a target set.
type Instance struct {
	Name string `toml:"name"`
	Host string `toml:"host"`
}

// Resolve returns the host string to probe: Host when set, otherwise the
// instance name.
func (i Instance) Resolve() string {
	if i.Host != "" {
		return i.Host
	}
	return i.Name
}

// TargetSet represents a named list of instances plus optional request
// overrides that apply to every instance in the set.
type TargetSet struct {
	Name      string     `toml:"-"` // from the file name
	Schema    string     `toml:"schema"`
	Port      int        `toml:"port"`
	Path      string     `toml:"path"`
	Instances []Instance `toml:"instances"`
}

// Validate checks that the TargetSet is valid.
func (t *TargetSet) Validate() error {
	if len(t.Instances) == 0 {
		return fmt.Errorf("at least one instance is required")
	}
	for i, instance := range t.Instances {
		if instance.Resolve() == "" {
			return fmt.Errorf("instance %d: name or host is required", i+1)
		}
	}
	if !validSchemas[t.Schema] {
		return fmt.Errorf("invalid schema: %s (must be http, https, or h2c)", t.Schema)
	}
	if t.Port < 0 || t.Port > 65535 {
		return fmt.Errorf("invalid port: %d", t.Port)
	}
	return nil
}

// Hosts returns the resolved host strings of all instances, in order.
func (t *TargetSet) Hosts() []string {
	hosts := make([]string, len(t.Instances))
	for i, instance := range t.Instances {
		hosts[i] = instance.Resolve()
	}
	return hosts
}

// Paths holds the configured paths
type Paths struct {
	ConfigDir  string
	TargetsDir string
}

// DefaultPaths returns the default path configuration. The config
// directory can be moved with PROBECTL_CONFIG_DIR.
func DefaultPaths() *Paths {
	configDir := DefaultConfigDir
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		configDir = dir
	}
	return &Paths{
		ConfigDir:  configDir,
		TargetsDir: filepath.Join(configDir, "targets"),
	}
}

// LoadDefaults loads defaults.toml from the config directory. A missing
// file is not an error; it yields zero Defaults.
func LoadDefaults(configDir string) (*Defaults, error) {
	path := filepath.Join(configDir, DefaultsFile)

	var defaults Defaults
	if _, err := toml.DecodeFile(path, &defaults); err != nil {
		if os.IsNotExist(err) {
			return &Defaults{}, nil
		}
		return nil, fmt.Errorf("failed to parse %s: %w", DefaultsFile, err)
	}

	if err := defaults.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", DefaultsFile, err)
	}

	return &defaults, nil
}

// setPath resolves a target set name to a file path, confined to the
// targets directory so names like "../../etc/passwd" cannot escape it.
func setPath(targetsDir, name string) (string, error) {
	if err := ValidateSetName(name); err != nil {
		return "", err
	}
	return securejoin.SecureJoin(targetsDir, name+".toml")
}

// LoadTargetSet loads a named target set from the targets directory.
func LoadTargetSet(targetsDir, name string) (*TargetSet, error) {
	path, err := setPath(targetsDir, name)
	if err != nil {
		return nil, fmt.Errorf("invalid target set name: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read target set %s: %w", name, err)
	}

	set, err := parseTargetSet(name, data)
	if err != nil {
		return nil, err
	}
	return set, nil
}

// LoadTargetSetFile loads a target set directly from a TOML file path.
func LoadTargetSetFile(path string) (*TargetSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read target set file: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return parseTargetSet(name, data)
}

func parseTargetSet(name string, data []byte) (*TargetSet, error) {
	var set TargetSet
	if err := toml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to parse target set %s: %w", name, err)
	}
	set.Name = name

	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("invalid target set %s: %w", name, err)
	}
	return &set, nil
}

// ListTargetSets returns all valid target sets in the targets directory.
func ListTargetSets(targetsDir string) ([]*TargetSet, error) {
	entries, err := os.ReadDir(targetsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read targets directory: %w", err)
	}

	var sets []*TargetSet
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".toml" {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".toml")
		set, err := LoadTargetSet(targetsDir, name)
		if err != nil {
			continue // Skip invalid sets
		}
		sets = append(sets, set)
	}

	return sets, nil
}
