// Package config loads the declarative startup configuration from
// solkit.yaml: disabled tools, the invocation log location, telemetry, and
// the price monitor schedule.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	projectConfigName = "solkit.yaml"
	homeConfigName    = "config.yaml"
)

// File is the full configuration shape.
type File struct {
	// DisabledTools lists tool names excluded from registration.
	DisabledTools []string `yaml:"disabled_tools,omitempty"`
	// Store configures the invocation log.
	Store StoreConfig `yaml:"store,omitempty"`
	// Telemetry configures trace export.
	Telemetry TelemetryConfig `yaml:"telemetry,omitempty"`
	// Monitor configures the recurring price poller.
	Monitor MonitorConfig `yaml:"monitor,omitempty"`
}

// StoreConfig locates the SQLite invocation log.
type StoreConfig struct {
	// Path is the database file; empty uses the default under ~/.solkit.
	Path string `yaml:"path,omitempty"`
}

// TelemetryConfig configures the OTLP trace exporter.
type TelemetryConfig struct {
	Enabled     bool    `yaml:"enabled,omitempty"`
	ServiceName string  `yaml:"service_name,omitempty"`
	Endpoint    string  `yaml:"endpoint,omitempty"`
	Insecure    bool    `yaml:"insecure,omitempty"`
	SampleRate  float64 `yaml:"sample_rate,omitempty"`
}

// MonitorConfig configures the recurring price poller.
type MonitorConfig struct {
	// Schedule is a standard 5-field cron expression, evaluated in UTC.
	Schedule string `yaml:"schedule,omitempty"`
	// Mints lists the token mint addresses to poll.
	Mints []string `yaml:"mints,omitempty"`
}

// Disabled reports whether name appears in the disabled-tool list.
func (f File) Disabled(name string) bool {
	for _, disabled := range f.DisabledTools {
		if disabled == name {
			return true
		}
	}
	return false
}

// DiscoverPath resolves the config location with first-match semantics:
// the explicit path when given, then ./solkit.yaml, then
// ~/.solkit/config.yaml.
func DiscoverPath(explicitPath string) (string, bool, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", false, fmt.Errorf("resolve working directory: %w", err)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", false, fmt.Errorf("resolve user home: %w", err)
	}
	return DiscoverPathFrom(explicitPath, cwd, homeDir)
}

// DiscoverPathFrom is a testable variant of DiscoverPath.
func DiscoverPathFrom(explicitPath, cwd, homeDir string) (string, bool, error) {
	candidates := make([]string, 0, 2)
	if clean := strings.TrimSpace(explicitPath); clean != "" {
		candidates = append(candidates, filepath.Clean(clean))
	} else {
		candidates = append(candidates, filepath.Join(cwd, projectConfigName))
		candidates = append(candidates, filepath.Join(homeDir, ".solkit", homeConfigName))
	}

	for i, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, true, nil
		}
		if errors.Is(err, os.ErrNotExist) {
			// An explicit path that does not exist is an error, not a miss.
			if i == 0 && strings.TrimSpace(explicitPath) != "" {
				return "", false, fmt.Errorf("config file %q not found", candidate)
			}
			continue
		}
		if err != nil {
			return "", false, fmt.Errorf("checking config path %q: %w", candidate, err)
		}
	}
	return "", false, nil
}

// Load reads and parses the config file at path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("reading config %q: %w", path, err)
	}
	var cfg File
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return File{}, fmt.Errorf("parsing config %q: %w", path, err)
	}
	return cfg, nil
}

// LoadDiscovered resolves the config location and loads it. A miss returns
// the zero config without error.
func LoadDiscovered(explicitPath string) (File, error) {
	path, found, err := DiscoverPath(explicitPath)
	if err != nil {
		return File{}, err
	}
	if !found {
		return File{}, nil
	}
	return Load(path)
}
