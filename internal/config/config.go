// Package config loads the host settings of the brickfall binary.
package config

import (
	"errors"
	"fmt"

	"go.uber.org/zap/zapcore"
)

// Config holds everything the host needs besides the fixed gameplay rules.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Simulation SimulationConfig `yaml:"simulation"`
	Logging    LoggingConfig    `yaml:"logging"`
	Scores     ScoresConfig     `yaml:"scores"`
	Debug      DebugConfig      `yaml:"debug"`
}

type WindowConfig struct {
	Title string  `yaml:"title"`
	Scale float64 `yaml:"scale"`
}

type SimulationConfig struct {
	TicksPerSecond int    `yaml:"ticks_per_second"`
	StepsPerUpdate int    `yaml:"steps_per_update"`
	Seed           uint64 `yaml:"seed"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "console" or "json"
}

type ScoresConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

type DebugConfig struct {
	UI bool `yaml:"ui"`
}

// Default returns the built-in configuration, matching the embedded YAML.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title: "Brickfall",
			Scale: 1,
		},
		Simulation: SimulationConfig{
			TicksPerSecond: 60,
			StepsPerUpdate: 40,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Scores: ScoresConfig{
			Enabled: true,
			Path:    "~/.brickfall/scores.db",
		},
	}
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Scale <= 0 {
		errs = append(errs, fmt.Errorf("window.scale must be positive, got %v", c.Window.Scale))
	}
	if c.Simulation.TicksPerSecond <= 0 {
		errs = append(errs, fmt.Errorf("simulation.ticks_per_second must be positive, got %d", c.Simulation.TicksPerSecond))
	}
	if c.Simulation.StepsPerUpdate <= 0 {
		errs = append(errs, fmt.Errorf("simulation.steps_per_update must be positive, got %d", c.Simulation.StepsPerUpdate))
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging.level: %w", err))
	}
	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		errs = append(errs, fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format))
	}
	if c.Scores.Enabled && c.Scores.Path == "" {
		errs = append(errs, errors.New("scores.path is required when scores are enabled"))
	}
	return errors.Join(errs...)
}
