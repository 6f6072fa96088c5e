package testutil

import (
	"embed"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/probectl/probectl/internal/config"
)

//go:embed fixtures/*.toml
var fixturesFS embed.FS

// LoadFixture loads a TOML fixture file by name.
func LoadFixture(name string) ([]byte, error) {
	return fixturesFS.ReadFile("fixtures/" + name)
}

// LoadDefaultsFixture loads a defaults fixture.
func LoadDefaultsFixture(name string) (*config.Defaults, error) {
	data, err := LoadFixture(name)
	if err != nil {
		return nil, err
	}
	var defaults config.Defaults
	if err := toml.Unmarshal(data, &defaults); err != nil {
		return nil, err
	}
	return &defaults, nil
}

// LoadTargetSetFixture loads a target set fixture.
func LoadTargetSetFixture(name string) (*config.TargetSet, error) {
	data, err := LoadFixture(name)
	if err != nil {
		return nil, err
	}
	var set config.TargetSet
	if err := toml.Unmarshal(data, &set); err != nil {
		return nil, err
	}
	set.Name = strings.TrimSuffix(name, ".toml")
	return &set, nil
}

// ValidDefaults returns the valid defaults fixture.
func ValidDefaults() (*config.Defaults, error) {
	return LoadDefaultsFixture("valid_defaults.toml")
}

// InvalidDefaults returns the invalid defaults fixture.
func InvalidDefaults() (*config.Defaults, error) {
	return LoadDefaultsFixture("invalid_defaults.toml")
}

// ValidTargetSet returns the valid target set fixture.
func ValidTargetSet() (*config.TargetSet, error) {
	return LoadTargetSetFixture("valid_target_set.toml")
}
