// Package config defines process configuration and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Loading functions accept context.Context as the first parameter.
// - Load errors are wrapped with this package's sentinel errors.
package config

import (
	"github.com/okian/fittrack/internal/domain/training"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// MetricsSummary logs the collected metrics when the batch finishes.
	MetricsSummary bool `koanf:"metrics_summary"`

	// Packages is the sensor batch to process, in order.
	Packages []Package `koanf:"packages"`
}

// Package is one sensor batch entry as written in the config file.
type Package struct {
	// Type is the activity code: RUN, WLK or SWM.
	Type string `koanf:"type"`

	// Data holds the positional sensor values for the code.
	Data []float64 `koanf:"data"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		MetricsSummary: false,
		Packages:       DefaultPackages(),
	}
}

// DefaultPackages is the built-in sensor batch.
func DefaultPackages() []Package {
	return []Package{
		{Type: training.CodeSwimming, Data: []float64{720, 1, 80, 25, 40}},
		{Type: training.CodeRunning, Data: []float64{15000, 1, 75}},
		{Type: training.CodeSportsWalking, Data: []float64{9000, 1, 75, 180}},
	}
}

// TrainingPackages converts the configured batch to domain packages.
func (c *Config) TrainingPackages() []training.Package {
	out := make([]training.Package, len(c.Packages))
	for i, p := range c.Packages {
		out[i] = training.Package{Code: p.Type, Data: p.Data}
	}
	return out
}
