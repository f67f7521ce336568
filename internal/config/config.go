// Package config loads humantime defaults from a YAML file and the
// environment.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jparise/humantime/internal/timeparse"
	"gopkg.in/yaml.v3"
)

const (
	// PathEnv overrides the default config file location.
	PathEnv  = "HUMANTIME_CONFIG"
	colorEnv = "HUMANTIME_COLOR"
	jobsEnv  = "HUMANTIME_JOBS"

	maxJobs = 100
)

// Config holds defaults for command-line flags. Zero values mean "not set".
type Config struct {
	Color string             `yaml:"color"`
	Jobs  int                `yaml:"jobs"`
	Min   *timeparse.Elapsed `yaml:"min"`
	Max   *timeparse.Elapsed `yaml:"max"`
}

// DefaultPath returns $HUMANTIME_CONFIG, or config.yml in the user's
// humantime config directory.
func DefaultPath() (string, error) {
	if path := os.Getenv(PathEnv); path != "" {
		return path, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "humantime", "config.yml"), nil
}

// Load reads the config file at path and applies environment overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDefault is like Load for DefaultPath, except that a missing file
// yields an empty config.
func LoadDefault() (*Config, error) {
	path, err := DefaultPath()
	if err == nil {
		cfg, err := Load(path)
		if err == nil || !errors.Is(err, fs.ErrNotExist) {
			return cfg, err
		}
	}

	cfg := &Config{}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes and validates a YAML config document. Unknown keys are
// rejected.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every set field holds a usable value.
func (c *Config) Validate() error {
	switch c.Color {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color %q: must be one of auto, always, or never", c.Color)
	}

	if c.Jobs < 0 || c.Jobs > maxJobs {
		return fmt.Errorf("jobs must be between 1 and %d, got %d", maxJobs, c.Jobs)
	}

	if c.Min != nil && c.Max != nil && c.Min.Compare(*c.Max) > 0 {
		return fmt.Errorf("min (%v) cannot be greater than max (%v)", c.Min, c.Max)
	}

	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(colorEnv); ok && v != "" {
		c.Color = strings.ToLower(strings.TrimSpace(v))
	}

	if v, ok := lookup(jobsEnv); ok && v != "" {
		jobs, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", jobsEnv, v, err)
		}
		c.Jobs = jobs
	}

	if err := c.Validate(); err != nil {
		return fmt.Errorf("environment: %w", err)
	}
	return nil
}
