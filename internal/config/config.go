package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"letternet/internal/dataset"
)

// Config captures the runtime knobs for a training run.
type Config struct {
	Dataset     string          `yaml:"dataset"`
	Classes     int             `yaml:"classes"`
	Hidden      []int           `yaml:"hidden"`
	Epochs      int             `yaml:"epochs"`
	Seed        int64           `yaml:"seed"`
	Shuffle     bool            `yaml:"shuffle"`
	LogEvery    int             `yaml:"log_every"`
	LogLevel    string          `yaml:"log_level"`
	MetricsAddr string          `yaml:"metrics_addr"`
	Probes      []dataset.Glyph `yaml:"probes"`
}

// Overrides captures CLI supplied values.
type Overrides struct {
	Dataset     string
	Classes     int
	Epochs      int
	Seed        int64
	Shuffle     bool
	LogEvery    int
	LogLevel    string
	MetricsAddr string
}

// Default returns the configuration of the original letter classifier:
// four letters, two hidden layers of 20 and 10 neurons, 1000 epochs.
func Default() *Config {
	return &Config{
		Classes:  4,
		Hidden:   []int{20, 10},
		Epochs:   1000,
		Seed:     1,
		LogEvery: 100,
		LogLevel: zerolog.InfoLevel.String(),
	}
}

// Load reads a Config from YAML on top of Default and validates it.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "open config")
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyOverrides updates cfg using any non-zero override.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.Dataset != "" {
		c.Dataset = o.Dataset
	}
	if o.Classes > 0 {
		c.Classes = o.Classes
	}
	if o.Epochs > 0 {
		c.Epochs = o.Epochs
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
	if o.Shuffle {
		c.Shuffle = true
	}
	if o.LogEvery > 0 {
		c.LogEvery = o.LogEvery
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	if o.MetricsAddr != "" {
		c.MetricsAddr = o.MetricsAddr
	}
}

// Validate verifies the config is runnable.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Dataset == "" {
		switch c.Classes {
		case 4, 6, 8:
		default:
			return fmt.Errorf("classes must be 4, 6 or 8 for the built-in letters (got %d)", c.Classes)
		}
	}
	for i, h := range c.Hidden {
		if h <= 0 {
			return fmt.Errorf("hidden[%d] must be > 0 (got %d)", i, h)
		}
	}
	if c.Epochs <= 0 {
		return fmt.Errorf("epochs must be > 0 (got %d)", c.Epochs)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log_level")
	}
	if c.LogEvery <= 0 {
		c.LogEvery = 100
	}
	return nil
}

// Level returns the configured log level.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
