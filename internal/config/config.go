// Package config provides configuration management for promptpack.
// It supports YAML configuration files, environment variables, and sensible defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/promptpack/promptpack/internal/convert"
	"github.com/promptpack/promptpack/internal/model"
	"github.com/promptpack/promptpack/internal/util"
)

// Config represents the complete promptpack configuration.
type Config struct {
	// Cache configures conversion result caching
	Cache CacheConfig `yaml:"cache"`

	// Install configures default install behavior
	Install InstallConfig `yaml:"install"`

	// Output configures display preferences
	Output OutputConfig `yaml:"output"`
}

// CacheConfig holds conversion cache settings.
type CacheConfig struct {
	// Enabled enables or disables result caching
	Enabled bool `yaml:"enabled"`
	// TTL is the time-to-live for cached conversion results
	TTL time.Duration `yaml:"ttl"`
	// Size is the maximum number of cached results
	Size int `yaml:"size"`
}

// InstallConfig holds install defaults.
type InstallConfig struct {
	// Scope is the default install scope (repo or user)
	Scope string `yaml:"scope"`
	// Targets are the formats rendered by install --all
	Targets []string `yaml:"targets"`
}

// OutputConfig holds display preferences.
type OutputConfig struct {
	// Format is the default output format (table, json)
	Format string `yaml:"format"`
	// Color controls color output (auto, always, never)
	Color string `yaml:"color"`
	// Verbose enables verbose output
	Verbose bool `yaml:"verbose"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Cache: CacheConfig{
			Enabled: true,
			TTL:     convert.DefaultTTL,
			Size:    convert.DefaultCacheSize,
		},
		Install: InstallConfig{
			Scope: "repo",
			Targets: []string{
				string(model.Cursor),
				string(model.ClaudeAgent),
				string(model.Copilot),
				string(model.AgentsMD),
			},
		},
		Output: OutputConfig{
			Format:  "table",
			Color:   "auto",
			Verbose: false,
		},
	}
}

// configFileName is the name of the config file.
const configFileName = "config.yaml"

// FilePath returns the path to the config file.
func FilePath() string {
	return filepath.Join(util.ConfigPath(), configFileName)
}

// Load loads the configuration from file, merging with defaults.
// If the config file doesn't exist, returns default configuration.
func Load() (*Config, error) {
	cfg := Default()

	configPath := FilePath()
	// #nosec G304 - configPath is constructed from trusted config directory
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvironment()
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	cfg.applyEnvironment()

	return cfg, nil
}

// LoadFromPath loads configuration from a specific path.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	// #nosec G304 - path is provided by caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	cfg.applyEnvironment()
	return cfg, nil
}

// Save writes the configuration to the config file.
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

// applyEnvironment applies environment variable overrides.
// Environment variables follow the pattern PROMPTPACK_<SECTION>_<KEY>.
func (c *Config) applyEnvironment() {
	// Cache settings
	if v := os.Getenv("PROMPTPACK_CACHE_ENABLED"); v != "" {
		c.Cache.Enabled = parseBool(v)
	}
	if v := os.Getenv("PROMPTPACK_CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Cache.TTL = d
		}
	}
	if v := os.Getenv("PROMPTPACK_CACHE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Cache.Size = n
		}
	}

	// Install settings
	if v := os.Getenv("PROMPTPACK_INSTALL_SCOPE"); v != "" {
		c.Install.Scope = v
	}
	if v := os.Getenv("PROMPTPACK_INSTALL_TARGETS"); v != "" {
		c.Install.Targets = splitList(v)
	}

	// Output settings
	if v := os.Getenv("PROMPTPACK_OUTPUT_FORMAT"); v != "" {
		c.Output.Format = v
	}
	if v := os.Getenv("PROMPTPACK_OUTPUT_COLOR"); v != "" {
		c.Output.Color = v
	}
	if v := os.Getenv("PROMPTPACK_OUTPUT_VERBOSE"); v != "" {
		c.Output.Verbose = parseBool(v)
	}
}

// parseBool parses a boolean from common string representations.
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes" || s == "on"
}

// splitList splits a comma-separated list into individual values.
// Empty segments are filtered out.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

// GetScope returns the install scope from config, validating it.
func (c *Config) GetScope() string {
	switch c.Install.Scope {
	case "repo", "user":
		return c.Install.Scope
	}
	return "repo"
}

// TargetFormats parses the configured install targets. Unknown format
// names are an error rather than a silent skip.
func (c *Config) TargetFormats() ([]model.FormatID, error) {
	ids := make([]model.FormatID, 0, len(c.Install.Targets))
	for _, name := range c.Install.Targets {
		id, err := model.ParseFormatID(name)
		if err != nil {
			return nil, fmt.Errorf("invalid install target %q: %w", name, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ConvertOptions translates the cache settings into orchestrator
// options. A disabled cache gets the shortest possible TTL.
func (c *Config) ConvertOptions() convert.Options {
	opts := convert.Options{
		TTL:       c.Cache.TTL,
		CacheSize: c.Cache.Size,
	}
	if !c.Cache.Enabled {
		opts.TTL = time.Nanosecond
		opts.CacheSize = 1
	}
	return opts
}

// Exists returns true if a config file exists.
func Exists() bool {
	_, err := os.Stat(FilePath())
	return err == nil
}
