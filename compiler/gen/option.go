package gen

import (
	"errors"
	"go/token"
)

// Default values used when no option overrides them.
const (
	// DefaultHeader is the comment placed above the package clause.
	DefaultHeader = "// Code generated by lenso. DO NOT EDIT."
	// DefaultPackage is the package name of the generated file.
	DefaultPackage = "models"
)

// Config holds the configuration of a generation run.
type Config struct {
	// Header is written verbatim at the top of the generated file.
	Header string
	// Package is the package name used in the package clause.
	Package string
	// ResolveImports runs the generated document through goimports so
	// qualified property types (e.g. time.Time) get their imports.
	ResolveImports bool
}

// Option configures code generation.
type Option func(*Config) error

// WithHeader sets the file header comment.
func WithHeader(header string) Option {
	return func(c *Config) error {
		if header == "" {
			return NewConfigError("Header", nil, "header cannot be empty")
		}
		c.Header = header
		return nil
	}
}

// WithPackage sets the package name of the generated file.
// For example: "models".
func WithPackage(pkg string) Option {
	return func(c *Config) error {
		if pkg == "" {
			return NewConfigError("Package", nil, "package cannot be empty")
		}
		if !token.IsIdentifier(pkg) || pkg == "_" {
			return NewConfigError("Package", pkg, "not a valid Go package name")
		}
		c.Package = pkg
		return nil
	}
}

// WithImportResolution enables or disables the goimports pass over the
// generated document.
func WithImportResolution(enabled bool) Option {
	return func(c *Config) error {
		c.ResolveImports = enabled
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config with the defaults and the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{
		Header:  DefaultHeader,
		Package: DefaultPackage,
	}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
