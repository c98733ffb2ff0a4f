package config

import (
	"fmt"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"QuoteBoard/pkg/util"
)

type Config struct {
	Environment string `yaml:"environment" default:"development" validate:"oneof=development production"`

	Logging struct {
		Level  string `yaml:"level" default:"info" validate:"oneof=trace debug info warn error fatal panic"`
		Format string `yaml:"format" default:"json" validate:"oneof=json console"`
		// The TUI owns the terminal, so logs default to a file.
		Output string `yaml:"output" default:"quoteboard.log"`
	} `yaml:"logging"`

	Metrics struct {
		Enabled         bool          `yaml:"enabled" default:"false"`
		Host            string        `yaml:"host" default:"127.0.0.1"`
		Port            int           `yaml:"port" default:"9187" validate:"gte=0,lte=65535"`
		ReadTimeout     time.Duration `yaml:"read_timeout" default:"10s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" default:"10s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"5s"`
	} `yaml:"metrics"`

	Source struct {
		LatencyMin  time.Duration `yaml:"latency_min" default:"300ms" validate:"gte=0"`
		LatencyMax  time.Duration `yaml:"latency_max" default:"900ms" validate:"gtefield=LatencyMin"`
		FailureRate float64       `yaml:"failure_rate" default:"0.1" validate:"gte=0,lte=1"`
	} `yaml:"source"`
}

// Load reads and parses a YAML configuration file, applies struct defaults
// and validates the result. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	var c Config

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("METRICS_PORT"); v != "" {
		c.Metrics.Port = util.ParseIntDefault(v, c.Metrics.Port)
	}
	if v := os.Getenv("FAILURE_RATE"); v != "" {
		c.Source.FailureRate = util.ParseFloatDefault(v, c.Source.FailureRate)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}
