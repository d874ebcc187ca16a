// Package config provides configuration management for the lenso CLI.
//
// Configuration is resolved in order of increasing priority: built-in
// defaults, an optional YAML file, then LENSO_ environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/syssam/lenso/compiler/gen"
)

// EnvPrefix is the prefix of the environment variables read by Load.
const EnvPrefix = "LENSO_"

// Default values.
const (
	DefaultConfigFile     = "lenso.yaml"
	DefaultLogLevel       = "warn"
	DefaultResolveImports = true
)

// Config holds the CLI configuration.
type Config struct {
	// Package is the package name of the generated file.
	Package string `koanf:"package"`
	// Header is the comment written at the top of the generated file.
	Header string `koanf:"header"`
	// ResolveImports adds imports for qualified property types.
	ResolveImports bool `koanf:"resolve_imports"`
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `koanf:"log_level"`
	// ConfigFile is the YAML file the configuration was read from, if any.
	ConfigFile string `koanf:"-"`
}

// Load loads the configuration. The YAML file is taken from LENSO_CONFIG,
// or lenso.yaml in the working directory if it exists.
//
// Environment variables map to keys by dropping the prefix and lower-casing:
// LENSO_RESOLVE_IMPORTS -> resolve_imports.
func Load() (*Config, error) {
	k := koanf.New(".")

	// 1. Load defaults
	if err := k.Load(confmap.Provider(map[string]any{
		"package":         gen.DefaultPackage,
		"header":          gen.DefaultHeader,
		"resolve_imports": DefaultResolveImports,
		"log_level":       DefaultLogLevel,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Load the config file
	path, explicit := os.LookupEnv(EnvPrefix + "CONFIG")
	if !explicit {
		path = DefaultConfigFile
	}
	var used string
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
		used = path
	} else if explicit {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	// 3. Load environment variables (LENSO_ prefix)
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.ConfigFile = used
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values that are not checked by the generator
// options.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the configured log level.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: want debug, info, warn or error", c.LogLevel)
	}
	return level, nil
}

// Options returns the generator options of the configuration.
func (c *Config) Options() []gen.Option {
	return []gen.Option{
		gen.WithHeader(c.Header),
		gen.WithPackage(c.Package),
		gen.WithImportResolution(c.ResolveImports),
	}
}
