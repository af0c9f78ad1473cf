package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Environment variables read by Load.
const (
	EnvConfigPath = "FITNESS_CONFIG"
	envPrefix     = "FITNESS_"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if FITNESS_CONFIG is set
//  3. env (prefix FITNESS_)
//
// A file that lists packages replaces the default batch entirely.
func Load(_ context.Context) (*Config, error) {
	cfg := *New()
	defaults := cfg.Packages
	cfg.Packages = nil

	k := koanf.New(".")

	if path := os.Getenv(EnvConfigPath); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: file %s: %w", ErrLoadConfig, path, err)
		}
	}

	// FITNESS_LOG_LEVEL -> log_level. Keys stay flat to match the koanf tags.
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, strings.ToLower(envPrefix))
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %w", ErrLoadConfig, err)
	}

	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if len(cfg.Packages) == 0 {
		cfg.Packages = defaults
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	for i, p := range c.Packages {
		if strings.TrimSpace(p.Type) == "" {
			return fmt.Errorf("%w: packages[%d]: type must not be empty", ErrInvalidConfig, i)
		}
	}
	return nil
}
