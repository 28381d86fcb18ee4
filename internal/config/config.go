package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/stcorp/muninn-geoms/pkg/geoms"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

const ConfigFileName = "geoms.yaml"

// Environment variables overriding the config file.
const (
	EnvReader          = "GEOMS_READER"
	EnvFormat          = "GEOMS_FORMAT"
	EnvLogFormat       = "GEOMS_LOG_FORMAT"
	EnvMetricsTextfile = "GEOMS_METRICS_TEXTFILE"
)

// Accepted values for Format and LogFormat.
var (
	OutputFormats = []string{"text", "json", "yaml"}
	LogFormats    = []string{"console", "json"}
)

// Config holds the settings shared by all muninn-geoms commands.
type Config struct {
	Reader          string `yaml:"reader"`
	Format          string `yaml:"format"`
	LogFormat       string `yaml:"log_format"`
	MetricsTextfile string `yaml:"metrics_textfile,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Reader:    "auto",
		Format:    "text",
		LogFormat: "console",
	}
}

// Load reads geoms.yaml from dir on top of the defaults.
func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields with the GEOMS_* variables found by lookup.
// Pass os.LookupEnv in production.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	for name, field := range map[string]*string{
		EnvReader:          &c.Reader,
		EnvFormat:          &c.Format,
		EnvLogFormat:       &c.LogFormat,
		EnvMetricsTextfile: &c.MetricsTextfile,
	} {
		if v, ok := lookup(name); ok && v != "" {
			*field = v
		}
	}
}

// Validate checks enumerated settings. Reader names are checked when the
// reader is constructed. All problems are reported together.
func (c *Config) Validate() error {
	var errs []error
	if c.Reader == "" {
		errs = append(errs, errors.New("reader must not be empty"))
	}
	if !contains(OutputFormats, c.Format) {
		errs = append(errs, fmt.Errorf("format %q is not one of %s", c.Format, strings.Join(OutputFormats, ", ")))
	}
	if !contains(LogFormats, c.LogFormat) {
		errs = append(errs, fmt.Errorf("log_format %q is not one of %s", c.LogFormat, strings.Join(LogFormats, ", ")))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", geoms.ErrInvalidConfig, errors.Join(errs...))
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
