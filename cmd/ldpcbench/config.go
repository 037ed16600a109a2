package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config drives a single ldpcbench run.
type Config struct {
	Run     RunConfig     `yaml:"run"`
	Channel ChannelConfig `yaml:"channel"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// RunConfig controls how many trials the bench performs and how hard each
// decode tries before giving up.
type RunConfig struct {
	Trials     int    `yaml:"trials"`     // number of random codewords to decode (default: 1000)
	Iterations int    `yaml:"iterations"` // belief-propagation iterations per trial (default: 25)
	Seed       int    `yaml:"seed"`       // PRNG seed, for reproducible runs (default: 1)
	Domain     string `yaml:"domain"`     // "prob" or "llr" (default: "llr")
}

// ChannelConfig configures the synthetic AWGN channel trials are drawn
// through.
type ChannelConfig struct {
	EbN0dBMin  float64 `yaml:"ebn0_db_min"`  // sweep start (default: -2)
	EbN0dBMax  float64 `yaml:"ebn0_db_max"`  // sweep end (default: 4)
	EbN0dBStep float64 `yaml:"ebn0_db_step"` // sweep step (default: 0.5)
}

// MetricsConfig controls the Prometheus push gateway ldpcbench reports
// through.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	PushURL string `yaml:"push_url"`
	JobName string `yaml:"job_name"`
}

// DefaultConfig returns the configuration ldpcbench uses when no file is
// given on the command line.
func DefaultConfig() Config {
	return Config{
		Run: RunConfig{
			Trials:     1000,
			Iterations: 25,
			Seed:       1,
			Domain:     "llr",
		},
		Channel: ChannelConfig{
			EbN0dBMin:  -2,
			EbN0dBMax:  4,
			EbN0dBStep: 0.5,
		},
		Metrics: MetricsConfig{
			Enabled: false,
			JobName: "ldpcbench",
		},
	}
}

// LoadConfig loads configuration from a YAML file, starting from
// DefaultConfig so an omitted section keeps its default values.
func LoadConfig(filename string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if config.Run.Domain != "prob" && config.Run.Domain != "llr" {
		return nil, fmt.Errorf("run.domain must be %q or %q, got %q", "prob", "llr", config.Run.Domain)
	}

	return &config, nil
}
