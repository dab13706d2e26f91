// Package config loads typeasserts.yaml, the host configuration that names the
// checker plugins to activate.
//
// Example:
//
//	plugins: [asserttype]
//	host_version: go1.22
//	supported_versions: ">= 1.18"
//	targets:
//	  - example.com/testing/typetest.AssertType
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/funvibe/typeasserts/internal/asserttype"
)

// Config represents the top-level typeasserts.yaml configuration.
type Config struct {
	// Plugins lists the registry names of the plugins to activate, in
	// lookup order. Defaults to DefaultPlugins.
	Plugins []string `yaml:"plugins,omitempty"`

	// HostVersion overrides the host checker version passed to plugin
	// factories (e.g. "go1.22"). Defaults to the running toolchain version.
	HostVersion string `yaml:"host_version,omitempty"`

	// SupportedVersions is a semver constraint on the host language
	// version for the asserttype plugin (e.g. ">= 1.21").
	SupportedVersions string `yaml:"supported_versions,omitempty"`

	// Targets are extra fully-qualified functions with the shape of
	// typeasserts.AssertType that the asserttype plugin hooks.
	Targets []string `yaml:"targets,omitempty"`

	// Path is the file the config was read from; empty for Default().
	Path string `yaml:"-"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// LoadConfig reads and parses a typeasserts.yaml file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses typeasserts.yaml content from bytes.
// The path argument is used for error messages and recorded in Config.Path.
func ParseConfig(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	cfg.setDefaults()
	cfg.Path = path
	return &cfg, nil
}

// FindConfig searches for typeasserts.yaml starting from dir and walking up
// to parent directories.
// Returns the path to the config file, or empty string and nil error if not found.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		for _, name := range ConfigFileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", nil
		}
		dir = parent
	}
}

// Resolve loads the config at path, or the one found from dir when path is
// empty, or Default() when there is none.
func Resolve(path, dir string) (*Config, error) {
	if path == "" {
		found, err := FindConfig(dir)
		if err != nil {
			return nil, err
		}
		if found == "" {
			return Default(), nil
		}
		path = found
	}
	return LoadConfig(path)
}

// validate checks the configuration for semantic errors.
func (c *Config) validate(path string) error {
	seenPlugins := make(map[string]bool)
	for i, name := range c.Plugins {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%s: plugins[%d]: name is required", path, i)
		}
		if seenPlugins[name] {
			return fmt.Errorf("%s: plugins[%d]: plugin %q listed twice", path, i, name)
		}
		seenPlugins[name] = true
	}

	if c.HostVersion != "" && asserttype.LanguageVersion(c.HostVersion) == "" {
		return fmt.Errorf("%s: host_version %q must be a Go toolchain version like go1.22", path, c.HostVersion)
	}

	if c.SupportedVersions != "" {
		if _, err := semver.NewConstraint(c.SupportedVersions); err != nil {
			return fmt.Errorf("%s: supported_versions %q: %w", path, c.SupportedVersions, err)
		}
	}

	seenTargets := make(map[string]bool)
	for i, target := range c.Targets {
		if target == "" {
			return fmt.Errorf("%s: targets[%d]: name is required", path, i)
		}
		dot := strings.LastIndex(target, ".")
		if dot <= 0 || dot == len(target)-1 {
			return fmt.Errorf("%s: targets[%d]: %q is not a fully-qualified function name (want pkg/path.Func)",
				path, i, target)
		}
		if seenTargets[target] {
			return fmt.Errorf("%s: targets[%d]: %q listed twice", path, i, target)
		}
		seenTargets[target] = true
	}

	return nil
}

// setDefaults fills in default values for omitted fields.
func (c *Config) setDefaults() {
	if len(c.Plugins) == 0 {
		c.Plugins = append([]string(nil), DefaultPlugins...)
	}
}
