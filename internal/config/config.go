// Package config provides configuration management for sfkit.
// It layers a user-level YAML file, a project-local TOML file, and
// environment variables over sensible defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/Lastonedown86/salesforce-agent-kit/internal/util"
)

// Config represents the complete sfkit configuration.
type Config struct {
	// Pack configures where installable content comes from
	Pack PackConfig `yaml:"pack" toml:"pack"`

	// Project configures the consuming project's agent directory
	Project ProjectConfig `yaml:"project" toml:"project"`

	// Output configures display preferences
	Output OutputConfig `yaml:"output" toml:"output"`
}

// PackConfig holds content source settings.
type PackConfig struct {
	// Source overrides the content root. Empty means resolve next to the
	// executable, falling back to the embedded pack. Can use ~ for the
	// home directory.
	Source string `yaml:"source,omitempty" toml:"source,omitempty"`
}

// ProjectConfig holds settings for the consuming project.
type ProjectConfig struct {
	// Dir is the agent directory, resolved from the working directory.
	Dir string `yaml:"dir" toml:"dir"`
}

// OutputConfig holds display preferences.
type OutputConfig struct {
	// Color controls color output (auto, always, never)
	Color string `yaml:"color" toml:"color"`
	// Verbose enables verbose output
	Verbose bool `yaml:"verbose" toml:"verbose"`
}

// defaultProjectDir is where installed documents live inside a project.
const defaultProjectDir = ".agent"

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Project: ProjectConfig{
			Dir: defaultProjectDir,
		},
		Output: OutputConfig{
			Color:   "auto",
			Verbose: false,
		},
	}
}

// configFileName is the name of the user-level config file.
const configFileName = "config.yaml"

// ProjectFileName is the name of the project-local override file,
// looked up in the working directory.
const ProjectFileName = ".sfkit.toml"

// FilePath returns the path to the user-level config file.
func FilePath() string {
	return filepath.Join(util.ConfigPath(), configFileName)
}

// Load loads the configuration, layering the user config file, the
// project-local override, and environment variables over defaults.
// Missing files are fine; defaults fill the gaps.
func Load() (*Config, error) {
	cfg := Default()

	configPath := FilePath()
	// #nosec G304 - configPath is constructed from trusted config directory
	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %q: %w", configPath, err)
		}
	case !os.IsNotExist(err):
		return nil, err
	}

	if err := cfg.applyProjectFile(ProjectFileName); err != nil {
		return nil, err
	}

	cfg.applyEnvironment()
	cfg.normalize()
	return cfg, nil
}

// LoadFromPath loads configuration from a specific YAML file.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	// #nosec G304 - path is provided by caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", path, err)
	}

	cfg.applyEnvironment()
	cfg.normalize()
	return cfg, nil
}

// Save writes the configuration to the user-level config file.
func (c *Config) Save() error {
	return c.SaveToPath(FilePath())
}

// SaveToPath writes the configuration to a specific path.
func (c *Config) SaveToPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	// #nosec G306 - config file should be readable by user
	return os.WriteFile(path, data, 0o644)
}

// applyProjectFile layers a project-local TOML override over the
// current values. A missing file is not an error.
func (c *Config) applyProjectFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if _, err := toml.DecodeFile(path, c); err != nil {
		return fmt.Errorf("failed to parse %q: %w", path, err)
	}
	return nil
}

// applyEnvironment applies environment variable overrides.
// Environment variables follow the pattern SFKIT_<SECTION>_<KEY>.
func (c *Config) applyEnvironment() {
	if v := os.Getenv("SFKIT_PACK_SOURCE"); v != "" {
		c.Pack.Source = v
	}
	if v := os.Getenv("SFKIT_PROJECT_DIR"); v != "" {
		c.Project.Dir = v
	}
	if v := os.Getenv("SFKIT_OUTPUT_COLOR"); v != "" {
		c.Output.Color = v
	}
	if v := os.Getenv("SFKIT_OUTPUT_VERBOSE"); v != "" {
		c.Output.Verbose = parseBool(v)
	}
}

// normalize expands paths and fills fields a layered file may have
// blanked out.
func (c *Config) normalize() {
	c.Pack.Source = util.ExpandPath(c.Pack.Source)
	if c.Project.Dir == "" {
		c.Project.Dir = defaultProjectDir
	}
	if c.Output.Color == "" {
		c.Output.Color = "auto"
	}
}

// parseBool parses a boolean from common string representations.
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes" || s == "on"
}

// Exists returns true if a user-level config file exists.
func Exists() bool {
	_, err := os.Stat(FilePath())
	return err == nil
}
