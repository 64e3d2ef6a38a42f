package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// LoadEnv reads configuration from the process environment.
func LoadEnv() (*Config, error) {
	return parseEnv(env.Options{})
}

// LoadEnvFrom reads configuration from the given variables instead of the
// process environment.
func LoadEnvFrom(vars map[string]string) (*Config, error) {
	return parseEnv(env.Options{Environment: vars})
}

func parseEnv(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return &cfg, nil
}

// LoadFile reads and parses a YAML configuration file.
func LoadFile(path string) (*Config, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	return &cfg, nil
}

// Load builds a configuration from the environment, overlaid with the YAML
// file at path when path is non-empty. Defaults are not applied.
func Load(path string) (*Config, error) {
	cfg, err := LoadEnv()
	if err != nil {
		return nil, err
	}

	if path == "" {
		return cfg, nil
	}

	fileCfg, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	cfg.Merge(*fileCfg)

	return cfg, nil
}
