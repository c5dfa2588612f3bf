package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/fiscalia-dev/spedparse/internal/sped"
)

const dateFormat = "2006-01-02"

// Config represents the spedparse.yaml parse policy.
type Config struct {
	// FallbackDate (YYYY-MM-DD) is substituted for unparseable date fields.
	// The choice leaks into any period-based computation downstream, so it
	// is policy, not a constant.
	FallbackDate string `yaml:"fallback_date"`
	// BatchSize bounds the fallback tokenizer's scan batches, in lines.
	BatchSize int `yaml:"batch_size"`
}

// Load reads a spedparse.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the stock parse policy.
func Default() *Config {
	return &Config{
		FallbackDate: "2024-01-01",
		BatchSize:    sped.DefaultBatchSize,
	}
}

// Options converts the config into engine options.
func (c *Config) Options() (sped.Options, error) {
	opts := sped.DefaultOptions()
	if c.FallbackDate != "" {
		d, err := time.Parse(dateFormat, c.FallbackDate)
		if err != nil {
			return sped.Options{}, fmt.Errorf("parsing fallback_date %q: %w", c.FallbackDate, err)
		}
		opts.FallbackDate = d
	}
	if c.BatchSize > 0 {
		opts.BatchSize = c.BatchSize
	}
	return opts, nil
}
