// Package config reads pipeline settings from YAML.
package config

import (
	"errors"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexozer/upperenv"
	"github.com/alexozer/upperenv/internal"
	"github.com/alexozer/upperenv/scene"
)

type Config struct {
	BufferSize float64
	Tolerance  float64
	Suffix     string
	Debug      bool
}

func Default() Config {
	return Config{
		BufferSize: internal.BufferSize,
		Tolerance:  internal.Tolerance,
		Suffix:     scene.DefaultSuffix,
	}
}

// Option overrides a setting after the file has been read.
type Option func(*Config)

func WithSuffix(suffix string) Option {
	return func(c *Config) { c.Suffix = suffix }
}

func WithDebug(debug bool) Option {
	return func(c *Config) { c.Debug = c.Debug || debug }
}

func WithTolerance(tol float64) Option {
	return func(c *Config) { c.Tolerance = tol }
}

type yamlConfig struct {
	Envelope struct {
		BufferSize *float64 `yaml:"buffer_size"`
	} `yaml:"envelope"`
	Cleanup struct {
		Tolerance *float64 `yaml:"tolerance"`
	} `yaml:"cleanup"`
	Output struct {
		Suffix *string `yaml:"suffix"`
	} `yaml:"output"`
	Debug bool `yaml:"debug"`
}

// Load reads the YAML file at path over the defaults, then applies opts. An
// empty path skips the file.
func Load(path string, opts ...Option) (Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, &upperenv.OpError{
				Op:   "config.load",
				Kind: upperenv.KindNotFound,
				Path: path,
				Err:  err,
			}
		}

		var dto yamlConfig
		if err := yaml.Unmarshal(b, &dto); err != nil {
			return Config{}, &upperenv.OpError{
				Op:   "config.load",
				Kind: upperenv.KindInvalidConfig,
				Path: path,
				Err:  err,
			}
		}
		mapConfig(&cfg, dto)
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, &upperenv.OpError{
			Op:   "config.load",
			Kind: upperenv.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return cfg, nil
}

func mapConfig(cfg *Config, dto yamlConfig) {
	if dto.Envelope.BufferSize != nil {
		cfg.BufferSize = *dto.Envelope.BufferSize
	}
	if dto.Cleanup.Tolerance != nil {
		cfg.Tolerance = *dto.Cleanup.Tolerance
	}
	if dto.Output.Suffix != nil {
		cfg.Suffix = *dto.Output.Suffix
	}
	cfg.Debug = dto.Debug
}

func (c Config) validate() error {
	if c.BufferSize < 0 {
		return errors.New("envelope.buffer_size must not be negative")
	}
	if c.Tolerance <= 0 {
		return errors.New("cleanup.tolerance must be positive")
	}
	return nil
}

// Options converts the settings into pipeline options logging to log.
func (c Config) Options(log *slog.Logger) upperenv.Options {
	return upperenv.Options{
		BufferSize: c.BufferSize,
		Tolerance:  c.Tolerance,
		Logger:     log,
	}
}
