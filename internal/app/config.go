package app

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
	"github.com/specialistvlad/psetforge/internal/render"
)

// EnvPrefix prefixes every environment variable read into a Config.
const EnvPrefix = "PSETFORGE_"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Paths   []string `env:"PATHS" envSeparator:","` // hcl files or directories
	Records []string `env:"RECORDS" envSeparator:","`
	Format  string   `env:"FORMAT"`

	Diff      bool `env:"DIFF"`
	NoBuiltin bool `env:"NO_BUILTIN"`

	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`
}

// DefaultConfig returns the settings used when neither a flag nor the
// environment provides one.
func DefaultConfig() Config {
	return Config{
		Format:    render.FormatHCL,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// NewConfig layers explicit settings over the process environment over the
// defaults, then validates the result.
func NewConfig(explicit Config) (*Config, error) {
	return newConfigBuilder().
		with(explicit).
		withEnv(nil).
		with(DefaultConfig()).
		build()
}

// NewConfigFromEnv is NewConfig with the environment given as a map.
func NewConfigFromEnv(explicit Config, environ map[string]string) (*Config, error) {
	if environ == nil {
		environ = map[string]string{}
	}
	return newConfigBuilder().
		with(explicit).
		withEnv(environ).
		with(DefaultConfig()).
		build()
}

// configBuilder merges layers in order: a setting from an earlier layer is
// never replaced by a later one.
type configBuilder struct {
	layers []Config
	err    error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{layers: make([]Config, 0, 3)}
}

func (b *configBuilder) with(cfg Config) *configBuilder {
	b.layers = append(b.layers, cfg)
	return b
}

// withEnv reads the environment layer. A nil environ means the process
// environment.
func (b *configBuilder) withEnv(environ map[string]string) *configBuilder {
	var cfg Config
	opts := env.Options{Prefix: EnvPrefix, Environment: environ}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error reading environment: %w", err))
		return b
	}
	return b.with(cfg)
}

func (b *configBuilder) build() (*Config, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error building config: %w", b.err)
	}

	cfg := new(Config)
	for _, layer := range b.layers {
		if err := mergo.Merge(cfg, layer); err != nil {
			return nil, fmt.Errorf("error merging config: %w", err)
		}
	}

	cfg.Format = strings.ToLower(cfg.Format)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	var errs []error
	if !slices.Contains(render.Formats, c.Format) {
		errs = append(errs, fmt.Errorf("invalid format %q: must be one of %s", c.Format, strings.Join(render.Formats, ", ")))
	}
	if _, ok := parseLevel(c.LogLevel); !ok {
		errs = append(errs, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", c.LogLevel))
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", c.LogFormat))
	}
	for _, name := range c.Records {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, errors.New("record names cannot be empty"))
			break
		}
	}
	return errors.Join(errs...)
}
